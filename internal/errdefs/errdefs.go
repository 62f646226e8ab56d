// internal/errdefs/errdefs.go
package errdefs

import "fmt"

// This package defines the closed set of typed errors shared by the layout
// packages. Typed errors let callers classify failures with errors.As instead
// of string matching, and keep every diagnostic carrying the offending data.

// ConflictKind describes what an explicitly placed cell collided with.
type ConflictKind string

const (
	// ConflictSingleCell means the claimed coordinate belongs to a 1x1 cell.
	ConflictSingleCell ConflictKind = "single cell"
	// ConflictSpanningCell means the claimed coordinate belongs to a cell
	// spanning multiple columns or rows.
	ConflictSpanningCell ConflictKind = "spanning cell"
)

// InvalidPropertyError reports a declaration property whose value fails
// validation against an enumerated set or a described constraint.
type InvalidPropertyError struct {
	Property string
	Value    any
	Expected string
}

func (e *InvalidPropertyError) Error() string {
	return fmt.Sprintf("invalid value %v for property %q, expected %s", e.Value, e.Property, e.Expected)
}

// NewInvalidPropertyError creates a new InvalidPropertyError.
func NewInvalidPropertyError(property string, value any, expected string) *InvalidPropertyError {
	return &InvalidPropertyError{Property: property, Value: value, Expected: expected}
}

// InvalidNestingError reports a disallowed containment, such as a cell
// declared directly inside another cell's content.
type InvalidNestingError struct {
	Outer string
	Inner string
}

func (e *InvalidNestingError) Error() string {
	return fmt.Sprintf("a %s cannot contain a %s", e.Outer, e.Inner)
}

// NewInvalidNestingError creates a new InvalidNestingError.
func NewInvalidNestingError(outer, inner string) *InvalidNestingError {
	return &InvalidNestingError{Outer: outer, Inner: inner}
}

// MissingRequiredError reports a container declaration missing a field it
// cannot be transformed without.
type MissingRequiredError struct {
	Container string
	Field     string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("%s declaration is missing required field %q", e.Container, e.Field)
}

// NewMissingRequiredError creates a new MissingRequiredError.
func NewMissingRequiredError(container, field string) *MissingRequiredError {
	return &MissingRequiredError{Container: container, Field: field}
}

// PositionConflictError reports a cell whose occupied rectangle overlaps a
// coordinate already claimed by an earlier cell. Col and Row identify the
// first colliding coordinate.
type PositionConflictError struct {
	Col  int
	Row  int
	Kind ConflictKind
}

func (e *PositionConflictError) Error() string {
	return fmt.Sprintf("position (%d,%d) is already occupied by a %s", e.Col, e.Row, e.Kind)
}

// NewPositionConflictError creates a new PositionConflictError.
func NewPositionConflictError(col, row int, kind ConflictKind) *PositionConflictError {
	return &PositionConflictError{Col: col, Row: row, Kind: kind}
}

// SpanOverflowError reports a cell whose column span extends past the
// container's column count.
type SpanOverflowError struct {
	Col     int
	Row     int
	Colspan int
	Rowspan int
	Columns int
}

func (e *SpanOverflowError) Error() string {
	return fmt.Sprintf("cell at (%d,%d) with span %dx%d overflows a %d-column container",
		e.Col, e.Row, e.Colspan, e.Rowspan, e.Columns)
}

// NewSpanOverflowError creates a new SpanOverflowError.
func NewSpanOverflowError(col, row, colspan, rowspan, columns int) *SpanOverflowError {
	return &SpanOverflowError{Col: col, Row: row, Colspan: colspan, Rowspan: rowspan, Columns: columns}
}

// InvalidPositionError reports an explicit position outside the container's
// bounds (negative, or a column at or past the column count).
type InvalidPositionError struct {
	Col     int
	Row     int
	Columns int
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("position (%d,%d) is outside the container bounds (columns: %d)", e.Col, e.Row, e.Columns)
}

// NewInvalidPositionError creates a new InvalidPositionError.
func NewInvalidPositionError(col, row, columns int) *InvalidPositionError {
	return &InvalidPositionError{Col: col, Row: row, Columns: columns}
}

// GridGapError reports a flow cell that could not be placed anywhere within
// its own row because every remaining slot was claimed.
type GridGapError struct {
	Col int
	Row int
}

func (e *GridGapError) Error() string {
	return fmt.Sprintf("no free slot in row %d at or after column %d", e.Row, e.Col)
}

// NewGridGapError creates a new GridGapError.
func NewGridGapError(col, row int) *GridGapError {
	return &GridGapError{Col: col, Row: row}
}

// InvalidTrackSizeError reports a column/row track specification that is
// neither "auto" nor a parsable length.
type InvalidTrackSizeError struct {
	Raw any
}

func (e *InvalidTrackSizeError) Error() string {
	return fmt.Sprintf("invalid track size %q", fmt.Sprint(e.Raw))
}

// NewInvalidTrackSizeError creates a new InvalidTrackSizeError.
func NewInvalidTrackSizeError(raw any) *InvalidTrackSizeError {
	return &InvalidTrackSizeError{Raw: raw}
}

// InvalidColorError reports a color value in none of the accepted forms.
type InvalidColorError struct {
	Raw string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Raw)
}

// NewInvalidColorError creates a new InvalidColorError.
func NewInvalidColorError(raw string) *InvalidColorError {
	return &InvalidColorError{Raw: raw}
}

// InvalidAlignmentError reports an alignment keyword outside the accepted set.
type InvalidAlignmentError struct {
	Raw string
}

func (e *InvalidAlignmentError) Error() string {
	return fmt.Sprintf("invalid alignment %q", e.Raw)
}

// NewInvalidAlignmentError creates a new InvalidAlignmentError.
func NewInvalidAlignmentError(raw string) *InvalidAlignmentError {
	return &InvalidAlignmentError{Raw: raw}
}

// InvalidLengthError reports a dimension string that could not be parsed.
// Raw carries the caller's original input, not a cleaned-up token.
type InvalidLengthError struct {
	Raw any
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length %q", fmt.Sprint(e.Raw))
}

// NewInvalidLengthError creates a new InvalidLengthError.
func NewInvalidLengthError(raw any) *InvalidLengthError {
	return &InvalidLengthError{Raw: raw}
}

// UnknownElementTypeError reports a leaf element that is neither label-shaped,
// field-shaped, nor a nested layout.
type UnknownElementTypeError struct {
	Raw any
}

func (e *UnknownElementTypeError) Error() string {
	return fmt.Sprintf("unknown element type: %v", e.Raw)
}

// NewUnknownElementTypeError creates a new UnknownElementTypeError.
func NewUnknownElementTypeError(raw any) *UnknownElementTypeError {
	return &UnknownElementTypeError{Raw: raw}
}

// UnsupportedLayoutTypeError reports a declaration whose kind is not one of
// the supported container kinds.
type UnsupportedLayoutTypeError struct {
	Kind any
}

func (e *UnsupportedLayoutTypeError) Error() string {
	return fmt.Sprintf("unsupported layout type: %v", e.Kind)
}

// NewUnsupportedLayoutTypeError creates a new UnsupportedLayoutTypeError.
func NewUnsupportedLayoutTypeError(kind any) *UnsupportedLayoutTypeError {
	return &UnsupportedLayoutTypeError{Kind: kind}
}

// NoLayoutInBandError reports a band structure with no layout under the
// primary field or either legacy field.
type NoLayoutInBandError struct {
	Band any
}

func (e *NoLayoutInBandError) Error() string {
	return fmt.Sprintf("band has no layout declaration: %v", e.Band)
}

// NewNoLayoutInBandError creates a new NoLayoutInBandError.
func NewNoLayoutInBandError(band any) *NoLayoutInBandError {
	return &NoLayoutInBandError{Band: band}
}

// LocatedError prefixes an error with the source file and line the failing
// declaration came from, when the caller knows it.
type LocatedError struct {
	File string
	Line int
	Err  error
}

func (e *LocatedError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Err.Error())
}

// Unwrap provides the underlying error for use with errors.Is/As.
func (e *LocatedError) Unwrap() error {
	return e.Err
}

// WithLocation wraps err with a source file and line. A nil err stays nil.
func WithLocation(err error, file string, line int) error {
	if err == nil {
		return nil
	}
	return &LocatedError{File: file, Line: line, Err: err}
}

// Format renders any error as a single human-readable line. Taxonomy errors
// already format themselves; anything foreign is labelled as unexpected.
func Format(err error) string {
	if err == nil {
		return ""
	}
	switch err.(type) {
	case *InvalidPropertyError, *InvalidNestingError, *MissingRequiredError,
		*PositionConflictError, *SpanOverflowError, *InvalidPositionError,
		*GridGapError, *InvalidTrackSizeError, *InvalidColorError,
		*InvalidAlignmentError, *InvalidLengthError, *UnknownElementTypeError,
		*UnsupportedLayoutTypeError, *NoLayoutInBandError, *LocatedError:
		return err.Error()
	default:
		return fmt.Sprintf("unexpected error: %v", err)
	}
}
