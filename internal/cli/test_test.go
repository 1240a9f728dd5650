package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenariosDir = filepath.Join("..", "harness", "testdata", "scenarios")

// copyScenario copies a harness scenario into dir.
func copyScenario(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(scenariosDir, name+".yaml"))
	require.NoError(t, err)
	path := filepath.Join(dir, name+".yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestTestCommand(t *testing.T) {
	out, err := execute(t, "test", scenariosDir)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ january\n")
	assert.Contains(t, out, "✓ collections\n")
	assert.Contains(t, out, "Test Summary: 2 passed, 0 failed, 2 total\n")
	assert.Contains(t, out, "✓ All scenarios passed\n")
}

func TestTestCommandFilter(t *testing.T) {
	out, err := execute(t, "test", scenariosDir, "--filter", "jan*")
	require.NoError(t, err)
	assert.Contains(t, out, "Test Summary: 1 passed, 0 failed, 1 total\n")

	out, err = execute(t, "test", scenariosDir, "--filter", "nothing")
	require.NoError(t, err)
	assert.Equal(t, "No scenarios found.\n", out)
}

func TestTestCommandJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "test", scenariosDir)
	require.NoError(t, err)

	var resp struct {
		Status string
		Data   TestResult
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.Data.Passed)
	for _, s := range resp.Data.Scenarios {
		assert.Len(t, s.Fingerprint, 64, s.Name)
	}
}

func TestTestCommandGolden(t *testing.T) {
	dir := t.TempDir()
	copyScenario(t, dir, "january")

	out, err := execute(t, "test", dir, "--update")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ january (golden updated)\n")

	goldenPath := filepath.Join(dir, "golden", "january.golden")
	written, err := os.ReadFile(goldenPath)
	require.NoError(t, err)
	expected, err := os.ReadFile(filepath.Join("..", "harness", "testdata", "golden", "january.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(written))

	_, err = execute(t, "test", dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(goldenPath, []byte(`{"scenario_name":"january","trace":[]}`), 0o644))
	out, err = execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "trace does not match golden file")
}

func TestTestCommandFailingScenario(t *testing.T) {
	dir := t.TempDir()
	doc := `
name: wrong
description: "expects the wrong length"
periods:
  a: "[2022-01-01, 2022-01-31]"
steps:
  - op: length
    period: a
    expect:
      int: 30
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wrong.yaml"), []byte(doc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("name: [\n"), 0o644))

	out, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.Contains(t, out, "✗ wrong\n  steps[0] length: expected 30, got 31\n")
	assert.Contains(t, out, "✗ broken.yml\n  failed to load scenario:")
	assert.Contains(t, out, "Test Summary: 0 passed, 2 failed, 2 total\n")
}

func TestTestCommandMissingDirectory(t *testing.T) {
	_, err := execute(t, "test", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
