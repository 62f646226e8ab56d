// cmd/root_test.go
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioengine/folio/internal/config"
	"github.com/folioengine/folio/internal/observability"
)

// resetForTest gives each test a silent logger and an empty working
// directory so no stray config.yaml is picked up.
func resetForTest(t *testing.T) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	observability.ResetForTest()
	observability.InitializeLogger(config.LoggerConfig{Level: "fatal", Format: "console", ServiceName: "test"})
}

// runCommand executes a pristine root command with the given args and
// returns captured stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRootCmdVersionFlag(t *testing.T) {
	resetForTest(t)

	out, _, err := runCommand(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "folio version 0.1.0")
}

func TestRootCmdNoArgsShowsHelp(t *testing.T) {
	resetForTest(t)

	out, _, err := runCommand(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Folio transforms declarative report layouts")
	assert.Contains(t, out, "transform")
	assert.Contains(t, out, "validate")
}

func TestRootCmdMissingExplicitConfig(t *testing.T) {
	resetForTest(t)

	_, _, err := runCommand(t, "-c", filepath.Join(t.TempDir(), "absent.yaml"), "validate", "x.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize configuration")
}

func TestRootCmdMalformedConfigFile(t *testing.T) {
	resetForTest(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logger: ["), 0o644))

	_, _, err := runCommand(t, "-c", cfgPath, "validate", "x.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize configuration")
}

func TestRootCmdEnvOverrideIsValidated(t *testing.T) {
	resetForTest(t)
	t.Setenv("FOLIO_TRANSFORM_BAND_CONCURRENCY", "0")

	_, _, err := runCommand(t, "validate", "whatever.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load or validate config")
}
