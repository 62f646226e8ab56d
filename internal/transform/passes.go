// internal/transform/passes.go
package transform

import (
	"github.com/folioengine/folio/internal/errdefs"
	"github.com/folioengine/folio/internal/layout"
	"github.com/folioengine/folio/internal/position"
	"github.com/folioengine/folio/internal/props"
)

// positionNode assigns coordinates throughout the tree: row-aware
// positioning when the container has row structure (so rowspans carry
// across rows), flat flow otherwise. Header and footer groups are bands
// that repeat independently of the body, so each gets its own occupancy.
func (p *Pipeline) positionNode(node *layout.Node) error {
	columns, err := columnCount(node)
	if err != nil {
		return err
	}

	if node.HasRowStructure() {
		if err := position.Rows(node.Rows, columns); err != nil {
			return err
		}
	} else if len(node.Cells) > 0 {
		if err := position.Cells(node.Cells, columns); err != nil {
			return err
		}
	}

	for _, header := range node.Headers {
		if err := position.Rows(header.Rows, columns); err != nil {
			return err
		}
	}
	for _, footer := range node.Footers {
		if err := position.Rows(footer.Rows, columns); err != nil {
			return err
		}
	}

	for _, cell := range allCells(node) {
		for _, content := range cell.Content {
			if nested, ok := content.(*layout.Nested); ok {
				if err := p.positionNode(nested.Node); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// columnCount derives the positioning width of a container. Grids and
// tables use their declared track count. A vertical stack is one column
// wide; a horizontal stack is one row tall, so its width is its cell count.
func columnCount(node *layout.Node) (int, error) {
	if node.Kind == layout.Stack {
		direction, _ := node.Props.Lookup(layout.PropDirection, "ttb").(string)
		if !isHorizontal(direction) {
			return 1, nil
		}
		cells := len(node.Cells)
		if cells < 1 {
			cells = 1
		}
		return cells, nil
	}

	tracks, ok := node.Props.Lookup(layout.PropColumns, nil).([]any)
	if !ok || len(tracks) == 0 {
		return 0, errdefs.NewMissingRequiredError(node.Kind.String(), "columns")
	}
	return len(tracks), nil
}

// allCells flattens the node's body, header, and footer cells in document
// order into a fresh slice.
func allCells(node *layout.Node) []*layout.Cell {
	cells := append([]*layout.Cell(nil), node.DirectCells()...)
	for _, header := range node.Headers {
		for _, row := range header.Rows {
			cells = append(cells, row.Cells...)
		}
	}
	for _, footer := range node.Footers {
		for _, row := range footer.Rows {
			cells = append(cells, row.Cells...)
		}
	}
	return cells
}

// resolveNode pushes the property cascade down the tree so every cell's
// final map reflects full inheritance, normalizes length-bearing values,
// and evaluates computed values once a cell's coordinates are known.
// Nested layouts cascade independently; a parent's properties stop at the
// cell that wraps the nested node.
func (p *Pipeline) resolveNode(node *layout.Node) {
	node.Props = props.ResolveAll(node.Props)

	for _, row := range node.Rows {
		p.resolveRow(node.Props, row)
	}
	for _, cell := range node.Cells {
		p.resolveCell(node.Props, nil, cell)
	}
	for _, header := range node.Headers {
		for _, row := range header.Rows {
			p.resolveRow(node.Props, row)
		}
	}
	for _, footer := range node.Footers {
		for _, row := range footer.Rows {
			p.resolveRow(node.Props, row)
		}
	}
}

func (p *Pipeline) resolveRow(containerProps layout.PropertyMap, row *layout.Row) {
	row.Props = props.ResolveAll(row.Props)
	for _, cell := range row.Cells {
		p.resolveCell(containerProps, row.Props, cell)
	}
}

// resolveCell merges the three-level cascade into the cell's map. Computed
// values are evaluated against the cell's coordinates when it has any;
// unpositioned cells keep their computed values for a later pass.
func (p *Pipeline) resolveCell(containerProps, rowProps layout.PropertyMap, cell *layout.Cell) {
	resolved := props.ResolveChain(cell.Props, rowProps, containerProps, nil)
	if !cell.Position.IsUnset() {
		ctx := props.Context{Col: cell.Position.Col, Row: cell.Position.Row}
		resolved = props.EvaluateAll(resolved, ctx)
	}
	cell.Props = props.ResolveAll(resolved)

	for _, content := range cell.Content {
		if nested, ok := content.(*layout.Nested); ok {
			p.resolveNode(nested.Node)
		}
	}
}
