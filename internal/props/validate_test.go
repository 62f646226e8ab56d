// internal/props/validate_test.go
package props

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioengine/folio/internal/errdefs"
)

func TestValidateAlignment(t *testing.T) {
	for _, ok := range []string{"left", "center", "right", "justify", "top", "middle", "bottom", " Center "} {
		assert.NoError(t, ValidateAlignment(ok), "alignment %q must validate", ok)
	}

	err := ValidateAlignment("sideways")
	require.Error(t, err)
	var invalid *errdefs.InvalidAlignmentError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "sideways", invalid.Raw)
}

func TestValidateColor(t *testing.T) {
	valid := []string{
		"black", "WHITE", "transparent", "gray",
		"#fff", "#ffff", "#a1b2c3", "#a1b2c3d4",
		"rgb(0, 128, 255)", "rgba(0,128,255,0.5)", "rgb(10 20 30)",
	}
	for _, raw := range valid {
		assert.NoError(t, ValidateColor(raw), "color %q must validate", raw)
	}

	invalid := []string{
		"", "blurple", "#zzz", "#ffffz", "#ff", "rgb()", "rgb(1,2)",
		"rgb(300,0,0)", "rgb(a,b,c)", "rgb(1,2,3,4,5)",
	}
	for _, raw := range invalid {
		err := ValidateColor(raw)
		require.Error(t, err, "color %q must be rejected", raw)
		var typed *errdefs.InvalidColorError
		require.True(t, errors.As(err, &typed))
		assert.Equal(t, raw, typed.Raw)
	}
}

func TestValidateTrackSize(t *testing.T) {
	for _, raw := range []any{"auto", "100pt", "1fr", "25%", "2cm", 3, 1.5} {
		assert.NoError(t, ValidateTrackSize(raw), "track %v must validate", raw)
	}

	err := ValidateTrackSize("3vw")
	require.Error(t, err)
	var invalid *errdefs.InvalidTrackSizeError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "3vw", invalid.Raw)
}
