package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "bloch.yaml", `
server:
  port: "9090"
  shutdown_timeout: 10s
projection: legacy
sphere:
  radius: 2
  scale_vector: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "legacy", cfg.Projection)
	assert.Equal(t, 2.0, cfg.Sphere.Radius)
	assert.True(t, cfg.Sphere.ScaleVector)

	// Untouched keys keep their defaults.
	assert.Equal(t, 100, cfg.Sphere.Resolution)
	assert.Equal(t, "Oranges", cfg.Sphere.ColorScale)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "bloch.json", `{"log": {"level": "debug", "format": "json"}, "sphere": {"resolution": 24}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 24, cfg.Sphere.Resolution)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "bloch.yaml", "server:\n  port: \"9090\"\n")
	t.Setenv("BLOCH_SERVER_PORT", "7070")
	t.Setenv("BLOCH_PROJECTION", "legacy")
	t.Setenv("BLOCH_SPHERE_RADIUS", "1.0")
	t.Setenv("BLOCH_METRICS_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "legacy", cfg.Projection)
	assert.Equal(t, 1.0, cfg.Sphere.Radius)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeFile(t, "bloch.yaml", "sphere:\n  radios: 2\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeFile(t, "bloch.yaml", "server: [unterminated")
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Projection = "polar"
	cfg.Sphere.Radius = -1
	cfg.Sphere.Resolution = 1
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	var keys []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var ve *ValidationError
		require.ErrorAs(t, e, &ve)
		keys = append(keys, ve.Key)
	}
	assert.ElementsMatch(t, []string{"projection", "sphere.radius", "sphere.resolution", "log.level"}, keys)
}

func TestValidate_Reasons(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "xml"
	cfg.Sphere.Opacity = 2
	cfg.Server.ShutdownTimeout = 0
	cfg.Metrics.Path = "metrics"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, `config "log.format": must be one of: text json`)
	assert.ErrorContains(t, err, `config "sphere.opacity": must be at most 1`)
	assert.ErrorContains(t, err, `config "server.shutdown_timeout": must be greater than 0`)
	assert.ErrorContains(t, err, `config "metrics.path": must start with /`)
}

func TestApplyEnv_CreatesNestedMaps(t *testing.T) {
	raw := map[string]any{}
	applyEnv(raw, func(key string) (string, bool) {
		if key == "BLOCH_LOG_LEVEL" {
			return "warn", true
		}
		return "", false
	})
	assert.Equal(t, map[string]any{"log": map[string]any{"level": "warn"}}, raw)
}

func TestPlotSphere(t *testing.T) {
	cfg := Default()
	cfg.Sphere.ScaleVector = true
	s := cfg.PlotSphere()
	assert.Equal(t, cfg.Sphere.Radius, s.Radius)
	assert.True(t, s.ScaleVector)
}
