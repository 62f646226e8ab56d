// internal/length/length.go
package length

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/folioengine/folio/internal/errdefs"
)

// Package length parses dimension strings ("10pt", "2cm", "50%", "1fr",
// "auto") into typed values and normalizes absolute units to points.

// Unit identifies the measurement unit of a parsed length.
type Unit int

const (
	// UnitPoint is the typographic point, the engine's base unit.
	UnitPoint Unit = iota
	UnitCentimeter
	UnitMillimeter
	UnitInch
	UnitPercent
	UnitFraction
	UnitEm
	// UnitAuto marks a track or dimension sized by the renderer.
	UnitAuto
)

// Physical conversion ratios for absolute units.
const (
	PointsPerInch       = 72.0
	PointsPerCentimeter = 28.3464567
)

// String returns the suffix form of the unit as it appears in declarations.
func (u Unit) String() string {
	switch u {
	case UnitPoint:
		return "pt"
	case UnitCentimeter:
		return "cm"
	case UnitMillimeter:
		return "mm"
	case UnitInch:
		return "in"
	case UnitPercent:
		return "%"
	case UnitFraction:
		return "fr"
	case UnitEm:
		return "em"
	case UnitAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Absolute reports whether the unit converts to points without context.
func (u Unit) Absolute() bool {
	switch u {
	case UnitPoint, UnitCentimeter, UnitMillimeter, UnitInch:
		return true
	default:
		return false
	}
}

// Value is a parsed length: an amount tagged with its unit. Auto values
// carry a zero amount.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto is the dedicated marker for automatically sized dimensions.
var Auto = Value{Unit: UnitAuto}

// IsAuto reports whether the value is the auto marker.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// String renders the value in declaration syntax, e.g. "100pt" or "auto".
func (v Value) String() string {
	if v.Unit == UnitAuto {
		return "auto"
	}
	return strconv.FormatFloat(v.Amount, 'f', -1, 64) + v.Unit.String()
}

// lengthRegex matches a signed decimal number immediately followed by an
// optional unit suffix. Interior whitespace is not tolerated.
var lengthRegex = regexp.MustCompile(`^([+-]?(?:\d+(?:\.\d+)?|\.\d+))(pt|cm|mm|in|%|fr|em)?$`)

var suffixUnits = map[string]Unit{
	"pt": UnitPoint,
	"cm": UnitCentimeter,
	"mm": UnitMillimeter,
	"in": UnitInch,
	"%":  UnitPercent,
	"fr": UnitFraction,
	"em": UnitEm,
}

// Parse converts a raw declaration value into a typed length. It accepts the
// literal "auto" (or the Auto marker), bare numbers (treated as points),
// numeric strings, and numbers immediately followed by one of pt, cm, mm,
// in, %, fr, em. Whitespace around the whole string is trimmed first.
// Anything else fails with an InvalidLengthError carrying the original input.
func Parse(raw any) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return v, nil
	case int:
		return Value{Amount: float64(v), Unit: UnitPoint}, nil
	case int64:
		return Value{Amount: float64(v), Unit: UnitPoint}, nil
	case float64:
		return Value{Amount: v, Unit: UnitPoint}, nil
	case string:
		parsed, ok := parseToken(v)
		if !ok {
			return Value{}, errdefs.NewInvalidLengthError(raw)
		}
		return parsed, nil
	default:
		return Value{}, errdefs.NewInvalidLengthError(raw)
	}
}

// ParseMany splits raw on runs of whitespace and parses each token. The
// first invalid token fails the whole call with the original combined string
// as the error payload.
func ParseMany(raw string) ([]Value, error) {
	tokens := strings.Fields(raw)
	values := make([]Value, 0, len(tokens))
	for _, token := range tokens {
		parsed, ok := parseToken(token)
		if !ok {
			return nil, errdefs.NewInvalidLengthError(raw)
		}
		values = append(values, parsed)
	}
	return values, nil
}

// NormalizeToPoints parses raw and converts absolute units to points using
// the fixed physical ratios. Percent, fraction, em and auto values are
// returned unchanged for the caller to resolve contextually.
func NormalizeToPoints(raw any) (Value, error) {
	v, err := Parse(raw)
	if err != nil {
		return Value{}, err
	}
	switch v.Unit {
	case UnitPoint:
		return v, nil
	case UnitInch:
		return Value{Amount: v.Amount * PointsPerInch, Unit: UnitPoint}, nil
	case UnitCentimeter:
		return Value{Amount: v.Amount * PointsPerCentimeter, Unit: UnitPoint}, nil
	case UnitMillimeter:
		return Value{Amount: v.Amount * (PointsPerCentimeter / 10), Unit: UnitPoint}, nil
	default:
		return v, nil
	}
}

func parseToken(token string) (Value, bool) {
	token = strings.TrimSpace(token)
	if token == "auto" {
		return Auto, true
	}
	match := lengthRegex.FindStringSubmatch(token)
	if match == nil {
		return Value{}, false
	}
	amount, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return Value{}, false
	}
	unit := UnitPoint
	if match[2] != "" {
		unit = suffixUnits[match[2]]
	}
	return Value{Amount: amount, Unit: unit}, true
}
