// internal/layout/cell.go
package layout

import "fmt"

// PositionState tracks how a cell's coordinates came to be. The zero value
// is Unset, so a freshly built cell flows by default.
type PositionState int

const (
	// PositionUnset means no coordinates were declared; the positioning
	// engine assigns them.
	PositionUnset PositionState = iota
	// PositionExplicit means the declaration pinned the coordinates. An
	// explicitly declared (0,0) is explicit, not flow.
	PositionExplicit
	// PositionResolved means the positioning engine has claimed the
	// coordinates, whether declared or flowed.
	PositionResolved
)

// Position is a cell's (column, row) coordinate pair together with its
// resolution state.
type Position struct {
	Col   int
	Row   int
	State PositionState
}

// UnsetPosition returns the flow sentinel.
func UnsetPosition() Position {
	return Position{}
}

// ExplicitPosition returns a caller-pinned position.
func ExplicitPosition(col, row int) Position {
	return Position{Col: col, Row: row, State: PositionExplicit}
}

// ResolvedPosition returns a position claimed by the positioning engine.
func ResolvedPosition(col, row int) Position {
	return Position{Col: col, Row: row, State: PositionResolved}
}

// IsUnset reports whether the position awaits flow placement.
func (p Position) IsUnset() bool { return p.State == PositionUnset }

// IsExplicit reports whether the position was pinned by the declaration.
func (p Position) IsExplicit() bool { return p.State == PositionExplicit }

// IsResolved reports whether the positioning engine has claimed the position.
func (p Position) IsResolved() bool { return p.State == PositionResolved }

// String renders the position for diagnostics.
func (p Position) String() string {
	if p.IsUnset() {
		return "unset"
	}
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Span is the (column-count, row-count) rectangle a cell occupies starting
// at its position.
type Span struct {
	Cols int
	Rows int
}

// DefaultSpan returns the 1x1 span.
func DefaultSpan() Span {
	return Span{Cols: 1, Rows: 1}
}

// IsDefault reports whether the span covers a single coordinate.
func (s Span) IsDefault() bool {
	return s.Cols == 1 && s.Rows == 1
}

// Cell is the positioned unit of the IR. Post-positioning, the occupied
// rectangles of distinct cells within one container never overlap and never
// reach the container's column count.
type Cell struct {
	Position Position
	Span     Span
	Props    PropertyMap
	Content  []Content
}

// NewCell creates an unpositioned cell with the default 1x1 span and a
// fresh property map.
func NewCell() *Cell {
	return &Cell{
		Span:  DefaultSpan(),
		Props: PropertyMap{},
	}
}
