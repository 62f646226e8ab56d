// internal/transform/cell.go
package transform

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/folioengine/folio/api/decl"
	"github.com/folioengine/folio/internal/errdefs"
	"github.com/folioengine/folio/internal/layout"
	"github.com/folioengine/folio/internal/length"
	"github.com/folioengine/folio/internal/props"
)

// cellKeys are the map keys that mark a child as a cell declaration rather
// than a bare leaf element.
var cellKeys = []string{"content", "col", "row", "x", "y", "colspan", "rowspan"}

func isCellShaped(m map[string]any) bool {
	for _, key := range cellKeys {
		if _, ok := m[key]; ok {
			return true
		}
	}
	return false
}

// buildCellChild turns one non-row child into a cell: cell declarations are
// built directly, bare leaf elements and nested layouts are auto-wrapped
// into a single-content flow cell. outer names the containing kind for
// nesting diagnostics.
func (p *Pipeline) buildCellChild(outer string, child any) (*layout.Cell, error) {
	switch c := child.(type) {
	case *decl.Cell:
		return p.buildCell(c)
	case decl.Cell:
		return p.buildCell(&c)
	case map[string]any:
		if _, nested := c["kind"]; !nested && isCellShaped(c) {
			typed, err := cellFromMap(c)
			if err != nil {
				return nil, err
			}
			return p.buildCell(typed)
		}
	}
	return p.wrapLeaf(outer, child)
}

// wrapLeaf builds a flow cell around a single leaf element.
func (p *Pipeline) wrapLeaf(outer string, element any) (*layout.Cell, error) {
	content, err := p.buildContent(outer, element)
	if err != nil {
		return nil, err
	}
	cell := layout.NewCell()
	cell.Content = append(cell.Content, content)
	return cell, nil
}

// buildCell resolves the cell's position, span, properties, and content.
// Coordinates must come in pairs; a lone col or row is rejected rather than
// guessed at.
func (p *Pipeline) buildCell(c *decl.Cell) (*layout.Cell, error) {
	cell := layout.NewCell()

	switch {
	case c.Col != nil && c.Row != nil:
		cell.Position = layout.ExplicitPosition(*c.Col, *c.Row)
	case c.Col != nil:
		return nil, errdefs.NewMissingRequiredError("cell", "row")
	case c.Row != nil:
		return nil, errdefs.NewMissingRequiredError("cell", "col")
	}

	span, err := spanOf(c.Colspan, c.Rowspan)
	if err != nil {
		return nil, err
	}
	cell.Span = span

	if err := setAlign(cell.Props, c.Align); err != nil {
		return nil, err
	}
	if err := setPaint(cell.Props, c.Fill); err != nil {
		return nil, err
	}
	cell.Props.Set(layout.PropStroke, c.Stroke)
	cell.Props.Set(layout.PropInset, c.Inset)

	for _, raw := range c.Content {
		content, err := p.buildContent("cell", raw)
		if err != nil {
			return nil, err
		}
		cell.Content = append(cell.Content, content)
	}
	return cell, nil
}

// spanOf applies the 1x1 default and rejects non-positive spans.
func spanOf(colspan, rowspan int) (layout.Span, error) {
	if colspan == 0 {
		colspan = 1
	}
	if rowspan == 0 {
		rowspan = 1
	}
	if colspan < 1 {
		return layout.Span{}, errdefs.NewInvalidPropertyError("colspan", colspan, "a positive integer")
	}
	if rowspan < 1 {
		return layout.Span{}, errdefs.NewInvalidPropertyError("rowspan", rowspan, "a positive integer")
	}
	return layout.Span{Cols: colspan, Rows: rowspan}, nil
}

// buildRow carries the caller-supplied index and transforms the row's cell
// declarations. A row inside a row is disallowed.
func (p *Pipeline) buildRow(r *decl.Row, index int) (*layout.Row, error) {
	row := layout.NewRow(index)

	row.Props.Set(layout.PropHeight, r.Height)
	if err := setAlign(row.Props, r.Align); err != nil {
		return nil, err
	}
	if err := setPaint(row.Props, r.Fill); err != nil {
		return nil, err
	}
	row.Props.Set(layout.PropStroke, r.Stroke)
	row.Props.Set(layout.PropInset, r.Inset)

	for _, child := range r.Cells {
		if isRowShaped(child) {
			return nil, errdefs.NewInvalidNestingError("row", "row")
		}
		cell, err := p.buildCellChild("row", child)
		if err != nil {
			return nil, err
		}
		row.Cells = append(row.Cells, cell)
	}
	return row, nil
}

// buildContent turns a raw leaf element into a Content variant: label-shaped
// input becomes a Label, field-shaped input a Field, and a nested container
// declaration is transformed recursively and wrapped.
func (p *Pipeline) buildContent(outer string, raw any) (layout.Content, error) {
	switch v := raw.(type) {
	case *decl.Label:
		return p.buildLabel(v)
	case decl.Label:
		return p.buildLabel(&v)
	case *decl.Field:
		return p.buildField(v)
	case decl.Field:
		return p.buildField(&v)
	case decl.Layout:
		return p.nest(v)
	case *decl.Row, decl.Row:
		return nil, errdefs.NewInvalidNestingError(outer, "row")
	case *decl.Cell, decl.Cell:
		return nil, errdefs.NewInvalidNestingError(outer, "cell")
	case map[string]any:
		if _, ok := v["cells"]; ok {
			return nil, errdefs.NewInvalidNestingError(outer, "row")
		}
		if _, ok := v["kind"]; ok {
			return p.nest(v)
		}
		if isCellShaped(v) {
			return nil, errdefs.NewInvalidNestingError(outer, "cell")
		}
		if _, ok := v["text"]; ok {
			l, err := labelFromMap(v)
			if err != nil {
				return nil, err
			}
			return p.buildLabel(l)
		}
		if _, ok := v["source"]; ok {
			f, err := fieldFromMap(v)
			if err != nil {
				return nil, err
			}
			return p.buildField(f)
		}
		return nil, errdefs.NewUnknownElementTypeError(raw)
	default:
		return nil, errdefs.NewUnknownElementTypeError(raw)
	}
}

// nest transforms a nested container declaration into wrapped content. Only
// the structural build runs here; the owning pipeline's post-passes walk
// into nested nodes themselves.
func (p *Pipeline) nest(declaration any) (layout.Content, error) {
	node, err := p.build(declaration)
	if err != nil {
		return nil, err
	}
	return &layout.Nested{Node: node}, nil
}

func (p *Pipeline) buildLabel(l *decl.Label) (layout.Content, error) {
	style, err := p.buildStyle(l.Style, l.Align)
	if err != nil {
		return nil, err
	}
	return &layout.Label{Text: l.Text, Style: style}, nil
}

func (p *Pipeline) buildField(f *decl.Field) (layout.Content, error) {
	style, err := p.buildStyle(f.Style, f.Align)
	if err != nil {
		return nil, err
	}
	field := &layout.Field{
		Source: f.Source,
		Format: f.Format,
		Style:  style,
	}
	if f.Digits != nil {
		digits := *f.Digits
		field.Digits = &digits
	}
	return field, nil
}

// buildStyle assembles a style only when the element carries at least one
// style-relevant attribute; otherwise it stays nil rather than an empty
// object. An explicit style align wins over the element's align shorthand.
func (p *Pipeline) buildStyle(m map[string]any, alignShorthand string) (*layout.Style, error) {
	style := layout.Style{}

	if m != nil {
		weight := mapAt(m, "font-weight", "font_weight")
		switch w := weight.(type) {
		case nil:
		case string:
			style.FontWeight = w
		case int, int64, float64:
			style.FontWeight = fmt.Sprint(w)
		default:
			return nil, errdefs.NewInvalidPropertyError("font-weight", weight, "a string or number")
		}

		family, err := stringField(m, "font-family", "font_family")
		if err != nil {
			return nil, err
		}
		style.FontFamily = family

		color, err := stringField(m, "color")
		if err != nil {
			return nil, err
		}
		if color != "" {
			if err := props.ValidateColor(color); err != nil {
				return nil, err
			}
			style.Color = color
		}

		align, err := stringField(m, "align")
		if err != nil {
			return nil, err
		}
		if align != "" {
			if err := props.ValidateAlignment(align); err != nil {
				return nil, err
			}
			style.Align = align
		}

		valign, err := stringField(m, "valign")
		if err != nil {
			return nil, err
		}
		if valign != "" {
			if err := props.ValidateAlignment(valign); err != nil {
				return nil, err
			}
			style.VAlign = valign
		}

		if size := mapAt(m, "font-size", "font_size"); size != nil {
			parsed, err := length.Parse(size)
			if err != nil {
				p.logger.Warn("Leaving unparsable font size unset", zap.Any("value", size))
			} else {
				style.FontSize = &parsed
			}
		}
	}

	if alignShorthand != "" && style.Align == "" {
		if err := props.ValidateAlignment(alignShorthand); err != nil {
			return nil, err
		}
		style.Align = alignShorthand
	}

	if style.IsZero() {
		return nil, nil
	}
	return &style, nil
}
