// api/decl/decl.go
package decl

// Package decl is the declaration contract between upstream producers (DSL
// front ends, the template loader, host applications) and the transformer.
// Declarations are consumed structurally: heterogeneous child lists hold
// typed values from this package or kind-tagged maps interchangeably.

// Layout is the closed union of container declarations.
type Layout interface {
	isLayout()
}

// -- Container Declarations --

// Grid declares a fixed-track container. Columns is either an int (that
// many "auto" tracks) or a list of track specifications. Children may mix
// Row declarations, Cell declarations, and bare leaf elements.
type Grid struct {
	Columns      any     `json:"columns,omitempty"`
	Rows         any     `json:"rows,omitempty"`
	Gutter       any     `json:"gutter,omitempty"`
	ColumnGutter any     `json:"column-gutter,omitempty"`
	RowGutter    any     `json:"row-gutter,omitempty"`
	Align        string  `json:"align,omitempty"`
	Fill         any     `json:"fill,omitempty"`
	Stroke       any     `json:"stroke,omitempty"`
	Inset        any     `json:"inset,omitempty"`
	Children     []any   `json:"children,omitempty"`
	Lines        []*Line `json:"lines,omitempty"`
}

func (*Grid) isLayout() {}

// Table declares a grid variant with repeatable header/footer row groups
// and default border styling.
type Table struct {
	Columns      any            `json:"columns,omitempty"`
	Rows         any            `json:"rows,omitempty"`
	Gutter       any            `json:"gutter,omitempty"`
	ColumnGutter any            `json:"column-gutter,omitempty"`
	RowGutter    any            `json:"row-gutter,omitempty"`
	Align        string         `json:"align,omitempty"`
	Fill         any            `json:"fill,omitempty"`
	Stroke       any            `json:"stroke,omitempty"`
	Inset        any            `json:"inset,omitempty"`
	Children     []any          `json:"children,omitempty"`
	Lines        []*Line        `json:"lines,omitempty"`
	Headers      []*HeaderGroup `json:"headers,omitempty"`
	Footers      []*FooterGroup `json:"footers,omitempty"`
}

func (*Table) isLayout() {}

// Stack declares a single-axis flow container. Direction is one of ttb,
// btt, ltr, rtl and defaults to ttb.
type Stack struct {
	Direction string `json:"direction,omitempty"`
	Spacing   any    `json:"spacing,omitempty"`
	Children  []any  `json:"children,omitempty"`
}

func (*Stack) isLayout() {}

// -- Structural Declarations --

// Row groups cells explicitly. Cells may hold Cell declarations or bare
// leaf elements, which the transformer wraps.
type Row struct {
	Height any    `json:"height,omitempty"`
	Fill   any    `json:"fill,omitempty"`
	Stroke any    `json:"stroke,omitempty"`
	Align  string `json:"align,omitempty"`
	Inset  any    `json:"inset,omitempty"`
	Cells  []any  `json:"cells,omitempty"`
}

// Cell declares one positioned unit. Col and Row are nil for flow cells;
// spans of 0 default to 1.
type Cell struct {
	Col     *int   `json:"col,omitempty"`
	Row     *int   `json:"row,omitempty"`
	Colspan int    `json:"colspan,omitempty"`
	Rowspan int    `json:"rowspan,omitempty"`
	Align   string `json:"align,omitempty"`
	Fill    any    `json:"fill,omitempty"`
	Stroke  any    `json:"stroke,omitempty"`
	Inset   any    `json:"inset,omitempty"`
	Content []any  `json:"content,omitempty"`
}

// Line declares a separator along a track boundary.
type Line struct {
	Orientation string `json:"orientation,omitempty"`
	Position    int    `json:"position"`
	Stroke      string `json:"stroke,omitempty"`
	Start       *int   `json:"start,omitempty"`
	End         *int   `json:"end,omitempty"`
}

// HeaderGroup declares a repeatable table header band. Level supports
// multi-level group headers.
type HeaderGroup struct {
	Repeat bool  `json:"repeat,omitempty"`
	Level  int   `json:"level,omitempty"`
	Rows   []any `json:"rows,omitempty"`
}

// FooterGroup declares a repeatable table footer band.
type FooterGroup struct {
	Repeat bool  `json:"repeat,omitempty"`
	Rows   []any `json:"rows,omitempty"`
}

// -- Leaf Elements --

// Label declares literal text. Align is a shorthand mapped onto the
// style's text alignment.
type Label struct {
	Text  string         `json:"text"`
	Align string         `json:"align,omitempty"`
	Style map[string]any `json:"style,omitempty"`
}

// Field declares a data binding. Format and Digits are rendering hints
// carried through to the IR untouched.
type Field struct {
	Source string         `json:"source"`
	Format string         `json:"format,omitempty"`
	Digits *int           `json:"digits,omitempty"`
	Align  string         `json:"align,omitempty"`
	Style  map[string]any `json:"style,omitempty"`
}

// -- Band Integration --

// Band is the host structure a report band hands to the engine. Layout is
// the primary field; Grid and Table are the legacy spellings older hosts
// still emit. Each may hold a typed declaration or a kind-tagged map.
type Band struct {
	Name   string `json:"name,omitempty"`
	Layout any    `json:"layout,omitempty"`
	Grid   any    `json:"grid,omitempty"`
	Table  any    `json:"table,omitempty"`
}
