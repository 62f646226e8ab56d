// internal/transform/declmap.go
package transform

import (
	"github.com/folioengine/folio/api/decl"
	"github.com/folioengine/folio/internal/errdefs"
)

// Map-shaped declarations arrive from the template loader and from hosts
// that build layouts dynamically. The converters here lift them into the
// typed contract so the builders only deal with one shape.

func gridFromMap(m map[string]any) (*decl.Grid, error) {
	lines, err := linesFromAny(mapAt(m, "lines"))
	if err != nil {
		return nil, err
	}
	align, err := stringField(m, "align")
	if err != nil {
		return nil, err
	}
	return &decl.Grid{
		Columns:      mapAt(m, "columns"),
		Rows:         mapAt(m, "rows"),
		Gutter:       mapAt(m, "gutter"),
		ColumnGutter: mapAt(m, "column-gutter", "column_gutter"),
		RowGutter:    mapAt(m, "row-gutter", "row_gutter"),
		Align:        align,
		Fill:         mapAt(m, "fill"),
		Stroke:       mapAt(m, "stroke"),
		Inset:        mapAt(m, "inset"),
		Children:     listAt(m, "children"),
		Lines:        lines,
	}, nil
}

func tableFromMap(m map[string]any) (*decl.Table, error) {
	g, err := gridFromMap(m)
	if err != nil {
		return nil, err
	}
	headers, err := headersFromAny(mapAt(m, "headers"))
	if err != nil {
		return nil, err
	}
	footers, err := footersFromAny(mapAt(m, "footers"))
	if err != nil {
		return nil, err
	}
	return &decl.Table{
		Columns:      g.Columns,
		Rows:         g.Rows,
		Gutter:       g.Gutter,
		ColumnGutter: g.ColumnGutter,
		RowGutter:    g.RowGutter,
		Align:        g.Align,
		Fill:         g.Fill,
		Stroke:       g.Stroke,
		Inset:        g.Inset,
		Children:     g.Children,
		Lines:        g.Lines,
		Headers:      headers,
		Footers:      footers,
	}, nil
}

func stackFromMap(m map[string]any) (*decl.Stack, error) {
	direction, err := stringField(m, "direction")
	if err != nil {
		return nil, err
	}
	return &decl.Stack{
		Direction: direction,
		Spacing:   mapAt(m, "spacing"),
		Children:  listAt(m, "children"),
	}, nil
}

// rowDecl lifts a row-shaped child into the typed declaration.
func rowDecl(child any) (*decl.Row, error) {
	switch r := child.(type) {
	case *decl.Row:
		return r, nil
	case decl.Row:
		return &r, nil
	case map[string]any:
		align, err := stringField(r, "align")
		if err != nil {
			return nil, err
		}
		return &decl.Row{
			Height: mapAt(r, "height"),
			Fill:   mapAt(r, "fill"),
			Stroke: mapAt(r, "stroke"),
			Align:  align,
			Inset:  mapAt(r, "inset"),
			Cells:  listAt(r, "cells"),
		}, nil
	default:
		return nil, errdefs.NewUnknownElementTypeError(child)
	}
}

func cellFromMap(m map[string]any) (*decl.Cell, error) {
	col, err := optIntField(m, "col", "x")
	if err != nil {
		return nil, err
	}
	row, err := optIntField(m, "row", "y")
	if err != nil {
		return nil, err
	}
	colspan, err := intField(m, 0, "colspan")
	if err != nil {
		return nil, err
	}
	rowspan, err := intField(m, 0, "rowspan")
	if err != nil {
		return nil, err
	}
	align, err := stringField(m, "align")
	if err != nil {
		return nil, err
	}
	return &decl.Cell{
		Col:     col,
		Row:     row,
		Colspan: colspan,
		Rowspan: rowspan,
		Align:   align,
		Fill:    mapAt(m, "fill"),
		Stroke:  mapAt(m, "stroke"),
		Inset:   mapAt(m, "inset"),
		Content: listAt(m, "content"),
	}, nil
}

func labelFromMap(m map[string]any) (*decl.Label, error) {
	text, ok := m["text"].(string)
	if !ok {
		return nil, errdefs.NewInvalidPropertyError("text", m["text"], "a string")
	}
	align, err := stringField(m, "align")
	if err != nil {
		return nil, err
	}
	return &decl.Label{
		Text:  text,
		Align: align,
		Style: styleMapAt(m),
	}, nil
}

func fieldFromMap(m map[string]any) (*decl.Field, error) {
	source, ok := m["source"].(string)
	if !ok {
		return nil, errdefs.NewInvalidPropertyError("source", m["source"], "a string")
	}
	format, err := stringField(m, "format")
	if err != nil {
		return nil, err
	}
	digits, err := optIntField(m, "digits")
	if err != nil {
		return nil, err
	}
	align, err := stringField(m, "align")
	if err != nil {
		return nil, err
	}
	return &decl.Field{
		Source: source,
		Format: format,
		Digits: digits,
		Align:  align,
		Style:  styleMapAt(m),
	}, nil
}

func linesFromAny(raw any) ([]*decl.Line, error) {
	if raw == nil {
		return nil, nil
	}
	switch entries := raw.(type) {
	case []*decl.Line:
		return entries, nil
	case []any:
		lines := make([]*decl.Line, 0, len(entries))
		for _, entry := range entries {
			line, err := lineFromAny(entry)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
		return lines, nil
	default:
		return nil, errdefs.NewInvalidPropertyError("lines", raw, "a list of line declarations")
	}
}

func lineFromAny(entry any) (*decl.Line, error) {
	switch l := entry.(type) {
	case *decl.Line:
		return l, nil
	case decl.Line:
		return &l, nil
	case map[string]any:
		orientation, err := stringField(l, "orientation")
		if err != nil {
			return nil, err
		}
		position, err := intField(l, 0, "position")
		if err != nil {
			return nil, err
		}
		stroke, err := stringField(l, "stroke")
		if err != nil {
			return nil, err
		}
		start, err := optIntField(l, "start")
		if err != nil {
			return nil, err
		}
		end, err := optIntField(l, "end")
		if err != nil {
			return nil, err
		}
		return &decl.Line{
			Orientation: orientation,
			Position:    position,
			Stroke:      stroke,
			Start:       start,
			End:         end,
		}, nil
	default:
		return nil, errdefs.NewInvalidPropertyError("lines", entry, "a line declaration")
	}
}

func headersFromAny(raw any) ([]*decl.HeaderGroup, error) {
	if raw == nil {
		return nil, nil
	}
	switch entries := raw.(type) {
	case []*decl.HeaderGroup:
		return entries, nil
	case []any:
		headers := make([]*decl.HeaderGroup, 0, len(entries))
		for _, entry := range entries {
			switch h := entry.(type) {
			case *decl.HeaderGroup:
				headers = append(headers, h)
			case decl.HeaderGroup:
				headers = append(headers, &h)
			case map[string]any:
				level, err := intField(h, 0, "level")
				if err != nil {
					return nil, err
				}
				headers = append(headers, &decl.HeaderGroup{
					Repeat: boolAt(h, "repeat"),
					Level:  level,
					Rows:   listAt(h, "rows"),
				})
			default:
				return nil, errdefs.NewInvalidPropertyError("headers", entry, "a header group declaration")
			}
		}
		return headers, nil
	default:
		return nil, errdefs.NewInvalidPropertyError("headers", raw, "a list of header groups")
	}
}

func footersFromAny(raw any) ([]*decl.FooterGroup, error) {
	if raw == nil {
		return nil, nil
	}
	switch entries := raw.(type) {
	case []*decl.FooterGroup:
		return entries, nil
	case []any:
		footers := make([]*decl.FooterGroup, 0, len(entries))
		for _, entry := range entries {
			switch f := entry.(type) {
			case *decl.FooterGroup:
				footers = append(footers, f)
			case decl.FooterGroup:
				footers = append(footers, &f)
			case map[string]any:
				footers = append(footers, &decl.FooterGroup{
					Repeat: boolAt(f, "repeat"),
					Rows:   listAt(f, "rows"),
				})
			default:
				return nil, errdefs.NewInvalidPropertyError("footers", entry, "a footer group declaration")
			}
		}
		return footers, nil
	default:
		return nil, errdefs.NewInvalidPropertyError("footers", raw, "a list of footer groups")
	}
}

// -- Field Coercion Helpers --

// mapAt returns the first present key's value, nil when none is set.
func mapAt(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := m[key]; ok {
			return value
		}
	}
	return nil
}

// listAt returns a list-valued field, wrapping a lone value into a
// single-element list so declarations may omit the brackets.
func listAt(m map[string]any, key string) []any {
	value, ok := m[key]
	if !ok || value == nil {
		return nil
	}
	if list, ok := value.([]any); ok {
		return list
	}
	return []any{value}
}

func boolAt(m map[string]any, key string) bool {
	value, _ := m[key].(bool)
	return value
}

func styleMapAt(m map[string]any) map[string]any {
	style, _ := m["style"].(map[string]any)
	return style
}

// stringField returns a string-valued field, failing when the value is
// present with another type.
func stringField(m map[string]any, keys ...string) (string, error) {
	value := mapAt(m, keys...)
	if value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", errdefs.NewInvalidPropertyError(keys[0], value, "a string")
	}
	return s, nil
}

// intField returns an integer-valued field, tolerating the float64 form
// JSON decoding produces. Absent fields yield the fallback.
func intField(m map[string]any, fallback int, keys ...string) (int, error) {
	value := mapAt(m, keys...)
	if value == nil {
		return fallback, nil
	}
	n, ok := toInt(value)
	if !ok {
		return 0, errdefs.NewInvalidPropertyError(keys[0], value, "an integer")
	}
	return n, nil
}

// optIntField distinguishes "absent" from "zero" for coordinate fields.
func optIntField(m map[string]any, keys ...string) (*int, error) {
	value := mapAt(m, keys...)
	if value == nil {
		return nil, nil
	}
	n, ok := toInt(value)
	if !ok {
		return nil, errdefs.NewInvalidPropertyError(keys[0], value, "an integer")
	}
	return &n, nil
}

func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}
