// internal/layout/style.go
package layout

import "github.com/folioengine/folio/internal/length"

// Style is an optional-everything bag of presentation attributes. Empty
// strings and nil pointers mean "absent"; renderers fall back to their own
// defaults for absent fields.
type Style struct {
	FontSize   *length.Value
	FontWeight string
	FontFamily string
	Color      string
	Align      string
	VAlign     string
}

// IsZero reports whether every field is absent.
func (s Style) IsZero() bool {
	return s.FontSize == nil &&
		s.FontWeight == "" &&
		s.FontFamily == "" &&
		s.Color == "" &&
		s.Align == "" &&
		s.VAlign == ""
}

// Merge returns a new style where other's non-absent fields override the
// receiver's.
func (s Style) Merge(other Style) Style {
	merged := s
	if other.FontSize != nil {
		size := *other.FontSize
		merged.FontSize = &size
	}
	if other.FontWeight != "" {
		merged.FontWeight = other.FontWeight
	}
	if other.FontFamily != "" {
		merged.FontFamily = other.FontFamily
	}
	if other.Color != "" {
		merged.Color = other.Color
	}
	if other.Align != "" {
		merged.Align = other.Align
	}
	if other.VAlign != "" {
		merged.VAlign = other.VAlign
	}
	return merged
}
