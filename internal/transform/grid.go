// internal/transform/grid.go
package transform

import (
	"strings"

	"github.com/folioengine/folio/api/decl"
	"github.com/folioengine/folio/internal/errdefs"
	"github.com/folioengine/folio/internal/layout"
	"github.com/folioengine/folio/internal/props"
)

// buildGridNode is the shared builder behind grids and tables. Columns are
// required because the positioning engine needs a finite track count; rows
// are optional since row count is unbounded.
func (p *Pipeline) buildGridNode(g *decl.Grid, kind layout.Kind) (*layout.Node, error) {
	node := layout.NewNode(kind)

	if g.Columns == nil {
		return nil, errdefs.NewMissingRequiredError(kind.String(), "columns")
	}
	columns, err := normalizeTracks(g.Columns)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, errdefs.NewInvalidPropertyError("columns", g.Columns, "at least one track")
	}
	node.Props.Set(layout.PropColumns, columns)

	if g.Rows != nil {
		rows, err := normalizeTracks(g.Rows)
		if err != nil {
			return nil, err
		}
		node.Props.Set(layout.PropRows, rows)
	}

	node.Props.Set(layout.PropGutter, g.Gutter)
	node.Props.Set(layout.PropColumnGutter, g.ColumnGutter)
	node.Props.Set(layout.PropRowGutter, g.RowGutter)
	node.Props.Set(layout.PropInset, g.Inset)
	node.Props.Set(layout.PropStroke, g.Stroke)
	if err := setAlign(node.Props, g.Align); err != nil {
		return nil, err
	}
	if err := setPaint(node.Props, g.Fill); err != nil {
		return nil, err
	}

	if err := p.buildChildren(node, g.Children); err != nil {
		return nil, err
	}

	for _, l := range g.Lines {
		line, err := buildLine(l)
		if err != nil {
			return nil, err
		}
		node.Lines = append(node.Lines, line)
	}
	return node, nil
}

// buildTable reuses the grid builder, then applies the table's default
// border styling and attaches header/footer groups.
func (p *Pipeline) buildTable(t *decl.Table) (*layout.Node, error) {
	shared := decl.Grid{
		Columns:      t.Columns,
		Rows:         t.Rows,
		Gutter:       t.Gutter,
		ColumnGutter: t.ColumnGutter,
		RowGutter:    t.RowGutter,
		Align:        t.Align,
		Fill:         t.Fill,
		Stroke:       t.Stroke,
		Inset:        t.Inset,
		Children:     t.Children,
		Lines:        t.Lines,
	}
	node, err := p.buildGridNode(&shared, layout.Table)
	if err != nil {
		return nil, err
	}

	if !node.Props.Has(layout.PropStroke) {
		node.Props.Set(layout.PropStroke, "1pt")
	}
	if !node.Props.Has(layout.PropInset) {
		node.Props.Set(layout.PropInset, "5pt")
	}

	for _, h := range t.Headers {
		rows, err := p.groupRows("header", h.Rows)
		if err != nil {
			return nil, err
		}
		node.Headers = append(node.Headers, &layout.Header{
			Repeat: h.Repeat,
			Level:  h.Level,
			Rows:   rows,
		})
	}
	for _, f := range t.Footers {
		rows, err := p.groupRows("footer", f.Rows)
		if err != nil {
			return nil, err
		}
		node.Footers = append(node.Footers, &layout.Footer{
			Repeat: f.Repeat,
			Rows:   rows,
		})
	}
	return node, nil
}

// buildChildren populates either the node's flat cell list or its row list.
// A child list without row declarations stays flat so cells flow freely
// across row boundaries; once any row appears the node is row-structured and
// contiguous runs of bare children group into synthetic rows.
func (p *Pipeline) buildChildren(node *layout.Node, children []any) error {
	rowStructured := false
	for _, child := range children {
		if isRowShaped(child) {
			rowStructured = true
			break
		}
	}

	if !rowStructured {
		for _, child := range children {
			cell, err := p.buildCellChild(node.Kind.String(), child)
			if err != nil {
				return err
			}
			node.Cells = append(node.Cells, cell)
		}
		return nil
	}

	rows, err := p.groupRows(node.Kind.String(), children)
	if err != nil {
		return err
	}
	node.Rows = rows
	return nil
}

// groupRows builds an ordered row list from a mixed child list: explicit row
// declarations keep their place, and each contiguous run of bare children
// becomes one synthetic row.
func (p *Pipeline) groupRows(outer string, children []any) ([]*layout.Row, error) {
	var rows []*layout.Row
	var pending []*layout.Cell

	flush := func() {
		if len(pending) == 0 {
			return
		}
		row := layout.NewRow(len(rows))
		row.Cells = pending
		rows = append(rows, row)
		pending = nil
	}

	for _, child := range children {
		if isRowShaped(child) {
			flush()
			r, err := rowDecl(child)
			if err != nil {
				return nil, err
			}
			row, err := p.buildRow(r, len(rows))
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
			continue
		}
		cell, err := p.buildCellChild(outer, child)
		if err != nil {
			return nil, err
		}
		pending = append(pending, cell)
	}
	flush()
	return rows, nil
}

// isRowShaped reports whether a child is a row declaration in either the
// typed or the map form.
func isRowShaped(child any) bool {
	switch c := child.(type) {
	case *decl.Row, decl.Row:
		return true
	case map[string]any:
		_, ok := c["cells"]
		return ok
	default:
		return false
	}
}

// normalizeTracks expands an integer count into that many "auto" tracks and
// validates an explicit list entry by entry, passing the raw entries through
// unchanged. A space-separated string is split into its tokens.
func normalizeTracks(raw any) ([]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case int:
		return autoTracks(v, raw)
	case int64:
		return autoTracks(int(v), raw)
	case float64:
		if v != float64(int(v)) {
			return nil, errdefs.NewInvalidTrackSizeError(raw)
		}
		return autoTracks(int(v), raw)
	case string:
		tokens := strings.Fields(v)
		if len(tokens) == 0 {
			return nil, errdefs.NewInvalidTrackSizeError(raw)
		}
		tracks := make([]any, 0, len(tokens))
		for _, token := range tokens {
			if err := props.ValidateTrackSize(token); err != nil {
				return nil, err
			}
			tracks = append(tracks, token)
		}
		return tracks, nil
	case []string:
		tracks := make([]any, 0, len(v))
		for _, entry := range v {
			if err := props.ValidateTrackSize(entry); err != nil {
				return nil, err
			}
			tracks = append(tracks, entry)
		}
		return tracks, nil
	case []any:
		for _, entry := range v {
			if err := props.ValidateTrackSize(entry); err != nil {
				return nil, err
			}
		}
		return v, nil
	default:
		return nil, errdefs.NewInvalidTrackSizeError(raw)
	}
}

func autoTracks(count int, raw any) ([]any, error) {
	if count < 1 {
		return nil, errdefs.NewInvalidPropertyError("tracks", raw, "a positive count")
	}
	tracks := make([]any, count)
	for i := range tracks {
		tracks[i] = "auto"
	}
	return tracks, nil
}

// buildLine validates a separator declaration. Orientation defaults to
// horizontal, matching the common case of rules between rows.
func buildLine(l *decl.Line) (*layout.Line, error) {
	orientation := layout.Horizontal
	switch strings.ToLower(strings.TrimSpace(l.Orientation)) {
	case "", "horizontal":
	case "vertical":
		orientation = layout.Vertical
	default:
		return nil, errdefs.NewInvalidPropertyError("orientation", l.Orientation, `"horizontal" or "vertical"`)
	}
	if l.Position < 0 {
		return nil, errdefs.NewInvalidPropertyError("position", l.Position, "a non-negative track index")
	}

	line := &layout.Line{
		Orientation: orientation,
		Position:    l.Position,
		Stroke:      l.Stroke,
	}
	if l.Start != nil {
		start := *l.Start
		line.Start = &start
	}
	if l.End != nil {
		end := *l.End
		line.End = &end
	}
	return line, nil
}

// setAlign validates and stores an alignment keyword, skipping the empty
// string so absent stays absent.
func setAlign(m layout.PropertyMap, align string) error {
	if align == "" {
		return nil
	}
	if err := props.ValidateAlignment(align); err != nil {
		return err
	}
	m.Set(layout.PropAlign, align)
	return nil
}

// setPaint stores a fill value, validating string colors up front. Computed
// values and structured paints pass through for the resolver to handle.
func setPaint(m layout.PropertyMap, fill any) error {
	if fill == nil {
		return nil
	}
	if color, ok := fill.(string); ok {
		if err := props.ValidateColor(color); err != nil {
			return err
		}
	}
	m.Set(layout.PropFill, fill)
	return nil
}
