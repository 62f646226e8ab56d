// internal/layout/node.go
package layout

// Package layout holds the intermediate representation produced by the
// transformer: positioned container trees with resolved property maps, ready
// for a downstream renderer. Nothing here parses source text or serializes
// itself; the IR is an in-memory contract.

// Kind tags the container variant of a Node.
type Kind int

const (
	// Grid is a fixed-track container positioned by the flow algorithm.
	Grid Kind = iota
	// Table is a grid variant carrying repeatable header/footer row groups
	// and default border styling.
	Table
	// Stack is a single-axis flow container.
	Stack
)

// String returns the declaration-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case Grid:
		return "grid"
	case Table:
		return "table"
	case Stack:
		return "stack"
	default:
		return "unknown"
	}
}

// Node is one container in the IR tree. At most one of Rows or Cells is
// populated: grids and tables use Rows when the declaration had row
// structure and Cells otherwise, stacks always use Cells.
type Node struct {
	Kind    Kind
	Props   PropertyMap
	Rows    []*Row
	Cells   []*Cell
	Lines   []*Line
	Headers []*Header
	Footers []*Footer
}

// NewNode creates an empty container of the given kind with a fresh
// property map.
func NewNode(kind Kind) *Node {
	return &Node{
		Kind:  kind,
		Props: PropertyMap{},
	}
}

// HasRowStructure reports whether the node's children are grouped into rows.
func (n *Node) HasRowStructure() bool {
	return len(n.Rows) > 0
}

// DirectCells returns the node's cells in document order, flattening row
// structure when present. The returned slice shares the underlying cells.
func (n *Node) DirectCells() []*Cell {
	if !n.HasRowStructure() {
		return n.Cells
	}
	var cells []*Cell
	for _, row := range n.Rows {
		cells = append(cells, row.Cells...)
	}
	return cells
}

// Row is an ordered group of cells at a fixed row index within its container.
type Row struct {
	Index int
	Props PropertyMap
	Cells []*Cell
}

// NewRow creates an empty row at the given index.
func NewRow(index int) *Row {
	return &Row{
		Index: index,
		Props: PropertyMap{},
	}
}

// Orientation distinguishes horizontal from vertical separator lines.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the declaration-facing name of the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Line is a separator drawn along a track boundary. Start and End, when
// set, bound its extent in the crossing axis.
type Line struct {
	Orientation Orientation
	Position    int
	Stroke      string
	Start       *int
	End         *int
}

// Header is a repeatable table row group rendered before the body. Level
// supports multi-level group headers. Built once per transformation and
// never mutated afterwards.
type Header struct {
	Repeat bool
	Level  int
	Rows   []*Row
}

// Footer is a repeatable table row group rendered after the body.
type Footer struct {
	Repeat bool
	Rows   []*Row
}
