// internal/transform/stack.go
package transform

import (
	"strings"

	"github.com/folioengine/folio/api/decl"
	"github.com/folioengine/folio/internal/errdefs"
	"github.com/folioengine/folio/internal/layout"
)

// stackDirections are the accepted flow directions: top-to-bottom,
// bottom-to-top, left-to-right, right-to-left.
var stackDirections = map[string]bool{
	"ttb": true,
	"btt": true,
	"ltr": true,
	"rtl": true,
}

// buildStack transforms a single-axis flow container. Every child becomes a
// cell; nested containers become a cell holding the transformed child. Rows
// have no meaning on a single axis and are rejected.
func (p *Pipeline) buildStack(s *decl.Stack) (*layout.Node, error) {
	node := layout.NewNode(layout.Stack)

	direction := strings.ToLower(strings.TrimSpace(s.Direction))
	if direction == "" {
		direction = "ttb"
	}
	if !stackDirections[direction] {
		return nil, errdefs.NewInvalidPropertyError("direction", s.Direction, `one of "ttb", "btt", "ltr", "rtl"`)
	}
	node.Props.Set(layout.PropDirection, direction)
	node.Props.Set(layout.PropSpacing, s.Spacing)

	for _, child := range s.Children {
		if isRowShaped(child) {
			return nil, errdefs.NewInvalidNestingError("stack", "row")
		}
		cell, err := p.buildCellChild("stack", child)
		if err != nil {
			return nil, err
		}
		node.Cells = append(node.Cells, cell)
	}
	return node, nil
}

// isHorizontal reports whether a stack flows along the column axis.
func isHorizontal(direction string) bool {
	return direction == "ltr" || direction == "rtl"
}
