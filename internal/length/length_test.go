// internal/length/length_test.go
package length

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioengine/folio/internal/errdefs"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		raw  any
		want Value
	}{
		{name: "points with suffix", raw: "100pt", want: Value{Amount: 100, Unit: UnitPoint}},
		{name: "centimeters", raw: "2cm", want: Value{Amount: 2, Unit: UnitCentimeter}},
		{name: "millimeters", raw: "15mm", want: Value{Amount: 15, Unit: UnitMillimeter}},
		{name: "inches", raw: "1.5in", want: Value{Amount: 1.5, Unit: UnitInch}},
		{name: "percent", raw: "50%", want: Value{Amount: 50, Unit: UnitPercent}},
		{name: "fraction", raw: "1fr", want: Value{Amount: 1, Unit: UnitFraction}},
		{name: "em", raw: "1.2em", want: Value{Amount: 1.2, Unit: UnitEm}},
		{name: "bare numeric string defaults to points", raw: "42", want: Value{Amount: 42, Unit: UnitPoint}},
		{name: "bare int", raw: 12, want: Value{Amount: 12, Unit: UnitPoint}},
		{name: "bare float", raw: 3.5, want: Value{Amount: 3.5, Unit: UnitPoint}},
		{name: "negative length", raw: "-4pt", want: Value{Amount: -4, Unit: UnitPoint}},
		{name: "leading dot", raw: ".5cm", want: Value{Amount: 0.5, Unit: UnitCentimeter}},
		{name: "surrounding whitespace trimmed", raw: "  10pt\t", want: Value{Amount: 10, Unit: UnitPoint}},
		{name: "auto literal", raw: "auto", want: Auto},
		{name: "auto with whitespace", raw: " auto ", want: Auto},
		{name: "auto marker passes through", raw: Auto, want: Auto},
		{name: "typed value passes through", raw: Value{Amount: 7, Unit: UnitEm}, want: Value{Amount: 7, Unit: UnitEm}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	testCases := []struct {
		name string
		raw  any
	}{
		{name: "plain text", raw: "abc"},
		{name: "unknown unit", raw: "10px"},
		{name: "trailing garbage", raw: "10pt!"},
		{name: "interior whitespace", raw: "10 pt"},
		{name: "unit without number", raw: "pt"},
		{name: "empty string", raw: ""},
		{name: "unsupported type", raw: []string{"10pt"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw)
			require.Error(t, err)

			var invalid *errdefs.InvalidLengthError
			require.True(t, errors.As(err, &invalid))
			// The error carries the caller's original input.
			assert.Equal(t, tc.raw, invalid.Raw)
		})
	}
}

func TestNormalizeToPoints(t *testing.T) {
	testCases := []struct {
		name string
		raw  any
		want float64
	}{
		// 1in = 72pt by definition.
		{name: "inches", raw: "1in", want: 72},
		// 1cm = 28.3464567pt, so 2cm doubles it.
		{name: "centimeters", raw: "2cm", want: 56.6929134},
		// 10mm = 1cm.
		{name: "millimeters", raw: "10mm", want: 28.3464567},
		{name: "points pass through", raw: "100pt", want: 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeToPoints(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, UnitPoint, got.Unit)
			assert.InDelta(t, tc.want, got.Amount, 1e-9)
		})
	}
}

func TestNormalizeToPointsLeavesRelativeUnitsTagged(t *testing.T) {
	for _, raw := range []string{"50%", "2fr", "1.5em", "auto"} {
		got, err := NormalizeToPoints(raw)
		require.NoError(t, err)
		assert.NotEqual(t, UnitPoint, got.Unit, "raw %q must stay non-absolute", raw)
	}

	v, err := NormalizeToPoints("auto")
	require.NoError(t, err)
	assert.True(t, v.IsAuto())
}

func TestParseMany(t *testing.T) {
	values, err := ParseMany("100pt  1fr\tauto 2cm")
	require.NoError(t, err)
	require.Len(t, values, 4)
	assert.Equal(t, Value{Amount: 100, Unit: UnitPoint}, values[0])
	assert.Equal(t, Value{Amount: 1, Unit: UnitFraction}, values[1])
	assert.True(t, values[2].IsAuto())
	assert.Equal(t, Value{Amount: 2, Unit: UnitCentimeter}, values[3])
}

func TestParseManyFailsWithCombinedString(t *testing.T) {
	_, err := ParseMany("100pt bogus 2cm")
	require.Error(t, err)

	var invalid *errdefs.InvalidLengthError
	require.True(t, errors.As(err, &invalid))
	// The payload is the whole original string, not just the bad token.
	assert.Equal(t, "100pt bogus 2cm", invalid.Raw)
}

func TestParseManyEmptyInput(t *testing.T) {
	values, err := ParseMany("   ")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "100pt", Value{Amount: 100, Unit: UnitPoint}.String())
	assert.Equal(t, "1.5cm", Value{Amount: 1.5, Unit: UnitCentimeter}.String())
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "50%", Value{Amount: 50, Unit: UnitPercent}.String())
}
