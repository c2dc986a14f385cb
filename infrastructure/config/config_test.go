package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiretrack-backend/domain/core/entities"
	"hiretrack-backend/domain/services"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LAYOUT_FILE", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "data/graph.json", cfg.DataFile)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATA_FILE", "/var/lib/hiretrack/graph.json")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LAYOUT_FILE", "")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/var/lib/hiretrack/graph.json", cfg.DataFile)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.AllowedOrigins)
}

func TestLoadConfig_RejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("LAYOUT_FILE", "")

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestLoadLayoutSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	content := []byte(`
teams_per_row: 4
column_spacing: 250
row_offsets: [0, 300, 600]
member_radius: 120
rejected_opacity: 0.25
status_colors:
  Interview: "#000000"
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	settings, err := LoadLayoutSettings(path)
	require.NoError(t, err)

	merged := settings.Apply(services.DefaultLayoutConfig())
	assert.Equal(t, 4, merged.TeamsPerRow)
	assert.Equal(t, 250.0, merged.ColumnSpacing)
	assert.Equal(t, []float64{0, 300, 600}, merged.RowOffsets)
	assert.Equal(t, 120.0, merged.MemberRadius)
	assert.Equal(t, 0.25, merged.RejectedOpacity)
	assert.Equal(t, "#000000", merged.StatusColors[entities.StatusInterview])
	// Untouched knobs keep their defaults.
	defaults := services.DefaultLayoutConfig()
	assert.Equal(t, defaults.TeamColor, merged.TeamColor)
	assert.Equal(t, defaults.StatusColors[entities.StatusTodo], merged.StatusColors[entities.StatusTodo])
}

func TestLayoutSettings_ApplyZeroKeepsDefaults(t *testing.T) {
	merged := LayoutSettings{}.Apply(services.DefaultLayoutConfig())

	assert.Equal(t, services.DefaultLayoutConfig(), merged)
}

func TestLoadLayoutSettings_MissingFile(t *testing.T) {
	_, err := LoadLayoutSettings(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.True(t, os.IsNotExist(err))
}
