package benchconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/delaneyj/bindparty/internal/benchconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadWithoutPathIsDefault(t *testing.T) {
	cfg, err := benchconfig.Load("")
	require.NoError(t, err)
	assert.Equal(t, benchconfig.Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "bench.toml", `
log_level = "debug"

[propagation]
widths = [2, 4]
iterations = 7

[collections]
update_fraction = 0.5
`)
	cfg, err := benchconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []int{2, 4}, cfg.Propagation.Widths)
	assert.Equal(t, benchconfig.Default().Propagation.Heights, cfg.Propagation.Heights)
	assert.Equal(t, 7, cfg.Propagation.Iterations)
	assert.Equal(t, 0.5, cfg.Collections.UpdateFraction)
	assert.Equal(t, 5, cfg.Collections.Repeats)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "bench.yml", `
collections:
  sizes: [10, 20]
  seed: 42
`)
	cfg, err := benchconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 20}, cfg.Collections.Sizes)
	assert.Equal(t, int64(42), cfg.Collections.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	_, err := benchconfig.Load(writeFile(t, "bench.json", `{}`))
	assert.ErrorIs(t, err, benchconfig.ErrUnknownFormat)

	_, err = benchconfig.Load(writeFile(t, "bench.toml", "[propagation]\niterations = 0\n"))
	assert.ErrorIs(t, err, benchconfig.ErrInvalid)

	_, err = benchconfig.Load(writeFile(t, "bench.yaml", "collections:\n  update_fraction: 2\n"))
	assert.ErrorIs(t, err, benchconfig.ErrInvalid)

	_, err = benchconfig.Load(writeFile(t, "bench.toml", "widths = ["))
	assert.ErrorContains(t, err, "failed to parse")

	_, err = benchconfig.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
