// internal/inspect/inspect.go
package inspect

import (
	"github.com/folioengine/folio/internal/layout"
	"github.com/folioengine/folio/internal/length"
	"github.com/folioengine/folio/internal/props"
)

// Package inspect renders the transformer's IR as JSON for the CLI and for
// debugging. The IR carries no serialization tags of its own; these views
// define the output shape and keep it stable while the IR evolves.
// Pointers are used for optional fields. Required fields use value types.

// computedPlaceholder stands in for property values that are still
// functions, which happens when a dynamic property survives a skipped
// resolution pass or sits on an unpositioned cell.
const computedPlaceholder = "(computed)"

// Document is the top level view when a template declares multiple bands.
type Document struct {
	Bands []*BandView `json:"bands"`
}

// BandView pairs a band name with its transformed layout.
type BandView struct {
	Name   string    `json:"name,omitempty"`
	Layout *NodeView `json:"layout"`
}

// NodeView mirrors layout.Node. At most one of Rows or Cells is populated,
// matching the IR invariant.
type NodeView struct {
	Kind    string         `json:"kind"`
	Props   map[string]any `json:"props,omitempty"`
	Rows    []*RowView     `json:"rows,omitempty"`
	Cells   []*CellView    `json:"cells,omitempty"`
	Lines   []*LineView    `json:"lines,omitempty"`
	Headers []*GroupView   `json:"headers,omitempty"`
	Footers []*GroupView   `json:"footers,omitempty"`
}

// RowView mirrors layout.Row.
type RowView struct {
	Index int            `json:"index"`
	Props map[string]any `json:"props,omitempty"`
	Cells []*CellView    `json:"cells"`
}

// CellView mirrors layout.Cell. Span is omitted for the default 1x1.
type CellView struct {
	Position PositionView   `json:"position"`
	Span     *SpanView      `json:"span,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
	Content  []*ContentView `json:"content,omitempty"`
}

// PositionView carries a cell's coordinates and how they were determined.
// Col and Row are omitted while the position is unset.
type PositionView struct {
	State string `json:"state"`
	Col   *int   `json:"col,omitempty"`
	Row   *int   `json:"row,omitempty"`
}

// SpanView is the rectangle a cell occupies.
type SpanView struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// ContentView is the discriminated view of cell content; Kind selects which
// of the remaining fields are meaningful.
type ContentView struct {
	Kind   string     `json:"kind"`
	Text   string     `json:"text,omitempty"`
	Source string     `json:"source,omitempty"`
	Format string     `json:"format,omitempty"`
	Digits *int       `json:"digits,omitempty"`
	Style  *StyleView `json:"style,omitempty"`
	Layout *NodeView  `json:"layout,omitempty"`
}

// StyleView mirrors layout.Style with lengths rendered in declaration
// syntax.
type StyleView struct {
	FontSize   string `json:"font-size,omitempty"`
	FontWeight string `json:"font-weight,omitempty"`
	FontFamily string `json:"font-family,omitempty"`
	Color      string `json:"color,omitempty"`
	Align      string `json:"align,omitempty"`
	VAlign     string `json:"valign,omitempty"`
}

// LineView mirrors layout.Line.
type LineView struct {
	Orientation string `json:"orientation"`
	Position    int    `json:"position"`
	Stroke      string `json:"stroke,omitempty"`
	Start       *int   `json:"start,omitempty"`
	End         *int   `json:"end,omitempty"`
}

// GroupView mirrors layout.Header and layout.Footer; footers always report
// level zero.
type GroupView struct {
	Repeat bool       `json:"repeat"`
	Level  int        `json:"level,omitempty"`
	Rows   []*RowView `json:"rows"`
}

// Snapshot converts an IR tree into its serializable view. The view holds
// no references into the node, so later mutation of either side is safe.
func Snapshot(node *layout.Node) *NodeView {
	if node == nil {
		return nil
	}
	view := &NodeView{
		Kind:  node.Kind.String(),
		Props: propsView(node.Props),
	}
	for _, row := range node.Rows {
		view.Rows = append(view.Rows, rowView(row))
	}
	for _, cell := range node.Cells {
		view.Cells = append(view.Cells, cellView(cell))
	}
	for _, line := range node.Lines {
		view.Lines = append(view.Lines, lineView(line))
	}
	for _, header := range node.Headers {
		view.Headers = append(view.Headers, groupView(header.Repeat, header.Level, header.Rows))
	}
	for _, footer := range node.Footers {
		view.Footers = append(view.Footers, groupView(footer.Repeat, 0, footer.Rows))
	}
	return view
}

func rowView(row *layout.Row) *RowView {
	view := &RowView{
		Index: row.Index,
		Props: propsView(row.Props),
		Cells: []*CellView{},
	}
	for _, cell := range row.Cells {
		view.Cells = append(view.Cells, cellView(cell))
	}
	return view
}

func cellView(cell *layout.Cell) *CellView {
	view := &CellView{
		Position: positionView(cell.Position),
		Props:    propsView(cell.Props),
	}
	if !cell.Span.IsDefault() {
		view.Span = &SpanView{Cols: cell.Span.Cols, Rows: cell.Span.Rows}
	}
	for _, content := range cell.Content {
		view.Content = append(view.Content, contentView(content))
	}
	return view
}

func positionView(p layout.Position) PositionView {
	switch p.State {
	case layout.PositionExplicit:
		return PositionView{State: "explicit", Col: pInt(p.Col), Row: pInt(p.Row)}
	case layout.PositionResolved:
		return PositionView{State: "resolved", Col: pInt(p.Col), Row: pInt(p.Row)}
	default:
		return PositionView{State: "unset"}
	}
}

func contentView(content layout.Content) *ContentView {
	view := &ContentView{Kind: content.Kind().String()}
	switch c := content.(type) {
	case *layout.Label:
		view.Text = c.Text
		view.Style = styleView(c.Style)
	case *layout.Field:
		view.Source = c.Source
		view.Format = c.Format
		if c.Digits != nil {
			view.Digits = pInt(*c.Digits)
		}
		view.Style = styleView(c.Style)
	case *layout.Nested:
		view.Layout = Snapshot(c.Node)
	}
	return view
}

func styleView(s *layout.Style) *StyleView {
	if s == nil || s.IsZero() {
		return nil
	}
	view := &StyleView{
		FontWeight: s.FontWeight,
		FontFamily: s.FontFamily,
		Color:      s.Color,
		Align:      s.Align,
		VAlign:     s.VAlign,
	}
	if s.FontSize != nil {
		view.FontSize = s.FontSize.String()
	}
	return view
}

func lineView(line *layout.Line) *LineView {
	view := &LineView{
		Orientation: line.Orientation.String(),
		Position:    line.Position,
		Stroke:      line.Stroke,
	}
	if line.Start != nil {
		view.Start = pInt(*line.Start)
	}
	if line.End != nil {
		view.End = pInt(*line.End)
	}
	return view
}

func groupView(repeat bool, level int, rows []*layout.Row) *GroupView {
	view := &GroupView{
		Repeat: repeat,
		Level:  level,
		Rows:   []*RowView{},
	}
	for _, row := range rows {
		view.Rows = append(view.Rows, rowView(row))
	}
	return view
}

// propsView renders a property map for output: parsed lengths print in
// declaration syntax and computed values collapse to a placeholder.
func propsView(m layout.PropertyMap) map[string]any {
	if len(m) == 0 {
		return nil
	}
	view := make(map[string]any, len(m))
	for key, value := range m {
		view[string(key)] = propValue(value)
	}
	return view
}

func propValue(value any) any {
	switch v := value.(type) {
	case length.Value:
		return v.String()
	case []any:
		rendered := make([]any, len(v))
		for i, item := range v {
			rendered[i] = propValue(item)
		}
		return rendered
	default:
		if props.IsDynamic(value) {
			return computedPlaceholder
		}
		return value
	}
}

func pInt(n int) *int { return &n }
