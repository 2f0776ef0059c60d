package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/curveclust/pipeline"
)

// writeConfig drops a YAML config into a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curveclust.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadConfig_Full: every recognized field round-trips from YAML.
func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `
grid:
  start: 0
  stop: 130
  step: 10
smoothing:
  degree: 1
  span: 0.5
selection:
  k_min: 2
  k_max: 6
  replicates: 50
  seed: 42
epsilon: 1e-6
workers: 4
on_insufficient: skip
on_undefined: drop-groups
`)

	cfg, err := pipeline.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Grid.Start)
	assert.Equal(t, 130.0, cfg.Grid.Stop)
	assert.Equal(t, 10.0, cfg.Grid.Step)
	assert.Equal(t, 1, cfg.Smoothing.Degree)
	assert.Equal(t, 0.5, cfg.Smoothing.Span)
	assert.Equal(t, 2, cfg.Selection.KMin)
	assert.Equal(t, 6, cfg.Selection.KMax)
	assert.Equal(t, 50, cfg.Selection.Replicates)
	assert.Equal(t, int64(42), cfg.Selection.Seed)
	assert.Equal(t, 1e-6, cfg.Epsilon)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, pipeline.PolicySkip, cfg.OnInsufficient)
	assert.Equal(t, pipeline.PolicyDropGroups, cfg.OnUndefined)
}

// TestLoadConfig_Defaults: a minimal file picks up the canonical defaults
// before validation.
func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
grid:
  start: 0
  stop: 100
  step: 5
selection:
  k_max: 8
`)

	cfg, err := pipeline.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Smoothing.Degree)
	assert.Equal(t, 0.75, cfg.Smoothing.Span)
	assert.Equal(t, 2, cfg.Selection.KMin)
	assert.Equal(t, 100, cfg.Selection.Replicates)
	assert.Equal(t, pipeline.PolicyFail, cfg.OnInsufficient)
	assert.Equal(t, pipeline.PolicyFail, cfg.OnUndefined)
}

// TestLoadConfig_Errors: missing file, broken YAML, invalid values.
func TestLoadConfig_Errors(t *testing.T) {
	_, err := pipeline.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = pipeline.LoadConfig(writeConfig(t, "grid: ["))
	assert.Error(t, err)

	_, err = pipeline.LoadConfig(writeConfig(t, `
grid:
  start: 0
  stop: 100
  step: -1
selection:
  k_max: 8
`))
	assert.ErrorIs(t, err, pipeline.ErrBadConfig)
}

// TestConfigValidate walks the rejection table field by field.
func TestConfigValidate(t *testing.T) {
	base := pipeline.DefaultConfig(0, 100, 10)
	require.NoError(t, base.Validate())

	cases := []struct {
		name   string
		mutate func(*pipeline.Config)
	}{
		{"zero step", func(c *pipeline.Config) { c.Grid.Step = 0 }},
		{"inverted grid", func(c *pipeline.Config) { c.Grid.Stop = -1 }},
		{"degree too low", func(c *pipeline.Config) { c.Smoothing.Degree = 0 }},
		{"degree too high", func(c *pipeline.Config) { c.Smoothing.Degree = 7 }},
		{"span zero", func(c *pipeline.Config) { c.Smoothing.Span = 0 }},
		{"span above one", func(c *pipeline.Config) { c.Smoothing.Span = 1.5 }},
		{"k_min below 2", func(c *pipeline.Config) { c.Selection.KMin = 1 }},
		{"k range inverted", func(c *pipeline.Config) { c.Selection.KMax = 1 }},
		{"replicates zero", func(c *pipeline.Config) { c.Selection.Replicates = 0 }},
		{"negative epsilon", func(c *pipeline.Config) { c.Epsilon = -1e-9 }},
		{"unknown on_insufficient", func(c *pipeline.Config) { c.OnInsufficient = "drop-groups" }},
		{"unknown on_undefined", func(c *pipeline.Config) { c.OnUndefined = "skip" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), pipeline.ErrBadConfig)
		})
	}
}
