// internal/position/position.go
package position

import (
	"github.com/folioengine/folio/internal/errdefs"
	"github.com/folioengine/folio/internal/layout"
)

// Package position assigns integer grid coordinates to cells. Explicit cells
// land exactly where declared or fail fast; flow cells fill row-major around
// them. Placement is all-or-nothing per call: on error no cell is modified.

// Coord is a bare (column, row) pair.
type Coord struct {
	Col int
	Row int
}

// occupancy records every claimed coordinate and the kind of cell claiming
// it, for conflict diagnostics.
type occupancy map[Coord]errdefs.ConflictKind

type solver struct {
	occ     occupancy
	columns int
}

type assignment struct {
	cell *layout.Cell
	at   Coord
}

// Occupied returns the full rectangle of coordinates covered by a
// position+span pair, row-major from the top-left.
func Occupied(pos layout.Position, span layout.Span) []Coord {
	return rect(Coord{Col: pos.Col, Row: pos.Row}, span)
}

func rect(at Coord, span layout.Span) []Coord {
	coords := make([]Coord, 0, span.Cols*span.Rows)
	for r := 0; r < span.Rows; r++ {
		for c := 0; c < span.Cols; c++ {
			coords = append(coords, Coord{Col: at.Col + c, Row: at.Row + r})
		}
	}
	return coords
}

// ValidateSpan is the standalone overflow check: the span must stay within
// the container's columns. Row spans are unbounded because row count is.
func ValidateSpan(pos layout.Position, span layout.Span, columns int) error {
	if pos.Col+span.Cols-1 >= columns {
		return errdefs.NewSpanOverflowError(pos.Col, pos.Row, span.Cols, span.Rows, columns)
	}
	return nil
}

// Cells positions every cell against a columns-wide container: cells with
// declared coordinates are validated and claimed where they stand, unset
// cells flow row-major into the remaining slots. Input order is preserved.
// On success every position is marked resolved; on the first conflict or
// overflow the cells are left untouched and the error describes the failing
// placement.
func Cells(cells []*layout.Cell, columns int) error {
	s := &solver{occ: occupancy{}, columns: columns}
	assignments := make([]assignment, 0, len(cells))
	cursor := Coord{}

	for _, cell := range cells {
		if cell.Position.IsUnset() {
			slot, err := s.flowSlot(cursor, cell.Span, false)
			if err != nil {
				return err
			}
			s.claim(slot, cell.Span)
			assignments = append(assignments, assignment{cell: cell, at: slot})
			cursor = Coord{Col: slot.Col + cell.Span.Cols, Row: slot.Row}
			continue
		}

		at := Coord{Col: cell.Position.Col, Row: cell.Position.Row}
		if err := s.pin(at, cell.Span); err != nil {
			return err
		}
		assignments = append(assignments, assignment{cell: cell, at: at})
	}

	apply(assignments)
	return nil
}

// Rows positions each row's cells in row order against a shared occupancy
// set, so a rowspan claimed in an earlier row still occupies coordinates in
// later rows and their flow cursors skip it. A flow cell that cannot be
// placed anywhere within its own row fails with a grid gap error.
func Rows(rows []*layout.Row, columns int) error {
	s := &solver{occ: occupancy{}, columns: columns}
	var assignments []assignment

	for _, row := range rows {
		cursor := Coord{Col: 0, Row: row.Index}
		for _, cell := range row.Cells {
			if cell.Position.IsUnset() {
				slot, err := s.flowSlot(cursor, cell.Span, true)
				if err != nil {
					return err
				}
				s.claim(slot, cell.Span)
				assignments = append(assignments, assignment{cell: cell, at: slot})
				cursor = Coord{Col: slot.Col + cell.Span.Cols, Row: slot.Row}
				continue
			}

			at := Coord{Col: cell.Position.Col, Row: cell.Position.Row}
			if err := s.pin(at, cell.Span); err != nil {
				return err
			}
			assignments = append(assignments, assignment{cell: cell, at: at})
		}
	}

	apply(assignments)
	return nil
}

func apply(assignments []assignment) {
	for _, a := range assignments {
		a.cell.Position = layout.ResolvedPosition(a.at.Col, a.at.Row)
	}
}

// pin validates and claims a declared position: bounds first, then span
// overflow, then occupancy.
func (s *solver) pin(at Coord, span layout.Span) error {
	if at.Col < 0 || at.Row < 0 || at.Col >= s.columns {
		return errdefs.NewInvalidPositionError(at.Col, at.Row, s.columns)
	}
	if at.Col+span.Cols-1 >= s.columns {
		return errdefs.NewSpanOverflowError(at.Col, at.Row, span.Cols, span.Rows, s.columns)
	}
	for _, coord := range rect(at, span) {
		if kind, taken := s.occ[coord]; taken {
			return errdefs.NewPositionConflictError(coord.Col, coord.Row, kind)
		}
	}
	s.claim(at, span)
	return nil
}

// flowSlot scans row-major from the cursor for the first slot whose full
// span rectangle is unclaimed and fits within the columns. When rowLocked is
// set the scan never leaves the cursor's row; otherwise it wraps to column 0
// of the next row and keeps going.
func (s *solver) flowSlot(cursor Coord, span layout.Span, rowLocked bool) (Coord, error) {
	if span.Cols > s.columns {
		return Coord{}, errdefs.NewSpanOverflowError(cursor.Col, cursor.Row, span.Cols, span.Rows, s.columns)
	}
	for row := cursor.Row; ; row++ {
		startCol := 0
		if row == cursor.Row {
			startCol = cursor.Col
		}
		for col := startCol; col+span.Cols <= s.columns; col++ {
			if s.free(Coord{Col: col, Row: row}, span) {
				return Coord{Col: col, Row: row}, nil
			}
		}
		if rowLocked {
			return Coord{}, errdefs.NewGridGapError(cursor.Col, cursor.Row)
		}
	}
}

func (s *solver) free(at Coord, span layout.Span) bool {
	for _, coord := range rect(at, span) {
		if _, taken := s.occ[coord]; taken {
			return false
		}
	}
	return true
}

func (s *solver) claim(at Coord, span layout.Span) {
	kind := errdefs.ConflictSingleCell
	if !span.IsDefault() {
		kind = errdefs.ConflictSpanningCell
	}
	for _, coord := range rect(at, span) {
		s.occ[coord] = kind
	}
}
