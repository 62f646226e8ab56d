// cmd/validate_test.go
package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmdAllGood(t *testing.T) {
	resetForTest(t)
	good := writeTemplate(t, "good.json", gridTemplate)

	stdout, _, err := runCommand(t, "validate", good)

	require.NoError(t, err)
	assert.Contains(t, stdout, good+": ok")
}

func TestValidateCmdReportsPerTemplate(t *testing.T) {
	resetForTest(t)
	good := writeTemplate(t, "good.json", gridTemplate)
	bad := writeTemplate(t, "bad.json", `{"kind":"grid","columns":2,"children":[{"col":1,"content":[]}]}`)

	stdout, stderr, err := runCommand(t, "validate", good, bad)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 templates failed validation")
	assert.Contains(t, stdout, good+": ok")
	assert.Contains(t, stderr, bad+": ")
	assert.NotContains(t, stderr, "unexpected error:", "declaration problems format in the error vocabulary")
}

func TestValidateCmdMissingFile(t *testing.T) {
	resetForTest(t)
	absent := filepath.Join(t.TempDir(), "absent.json")

	_, stderr, err := runCommand(t, "validate", absent)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 templates failed validation")
	assert.Contains(t, stderr, "opening template")
}

func TestValidateCmdBandList(t *testing.T) {
	resetForTest(t)
	bands := writeTemplate(t, "bands.json", bandListTemplate)

	stdout, _, err := runCommand(t, "validate", bands)

	require.NoError(t, err)
	assert.Contains(t, stdout, bands+": ok")
}
