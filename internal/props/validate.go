// internal/props/validate.go
package props

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/folioengine/folio/internal/errdefs"
	"github.com/folioengine/folio/internal/length"
)

// The validators below are pure predicates over declaration-level property
// values. They run independently of the pipeline so DSL front ends can
// reject bad values before transformation begins.

var alignments = map[string]bool{
	"left":    true,
	"center":  true,
	"right":   true,
	"justify": true,
	"top":     true,
	"middle":  true,
	"bottom":  true,
}

// ValidateAlignment checks raw against the accepted alignment keywords.
func ValidateAlignment(raw string) error {
	if alignments[strings.ToLower(strings.TrimSpace(raw))] {
		return nil
	}
	return errdefs.NewInvalidAlignmentError(raw)
}

var namedColors = map[string]bool{
	"black":       true,
	"white":       true,
	"red":         true,
	"green":       true,
	"blue":        true,
	"gray":        true,
	"transparent": true,
}

var rgbRegex = regexp.MustCompile(`^rgba?\((.*)\)$`)

// ValidateColor accepts named colors, hex colors (#rgb, #rgba, #rrggbb,
// #rrggbbaa) and rgb()/rgba() functional notation.
func ValidateColor(raw string) error {
	value := strings.ToLower(strings.TrimSpace(raw))

	if namedColors[value] {
		return nil
	}
	if strings.HasPrefix(value, "#") {
		if validHexColor(strings.TrimPrefix(value, "#")) {
			return nil
		}
		return errdefs.NewInvalidColorError(raw)
	}
	if matches := rgbRegex.FindStringSubmatch(value); matches != nil {
		if validRGBComponents(matches[1]) {
			return nil
		}
	}
	return errdefs.NewInvalidColorError(raw)
}

func validHexColor(hex string) bool {
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		isDigit := c >= '0' && c <= '9'
		isLower := c >= 'a' && c <= 'f'
		if !isDigit && !isLower {
			return false
		}
	}
	return true
}

func validRGBComponents(inner string) bool {
	parts := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	var components []string
	for _, p := range parts {
		if p != "" {
			components = append(components, p)
		}
	}
	if len(components) < 3 || len(components) > 4 {
		return false
	}
	for _, component := range components {
		value, err := strconv.ParseFloat(strings.TrimSuffix(component, "%"), 64)
		if err != nil {
			return false
		}
		// Alpha may be a 0..1 fraction; channels run 0..255.
		if value < 0 || value > 255 {
			return false
		}
	}
	return true
}

// ValidateTrackSize checks one column/row track specification: "auto" or any
// parsable length ("100pt", "1fr", "25%", ...).
func ValidateTrackSize(raw any) error {
	if _, err := length.Parse(raw); err != nil {
		return errdefs.NewInvalidTrackSizeError(raw)
	}
	return nil
}
