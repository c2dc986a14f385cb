package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"hiretrack-backend/domain/core/entities"
	"hiretrack-backend/domain/services"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Persistence
	DataFile string

	// Layout tuning file (YAML, optional)
	LayoutFile string
	Layout     LayoutSettings

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool

	// CORS
	AllowedOrigins []string
}

// LayoutSettings is the YAML-tunable subset of the layout configuration.
// Zero values mean "keep the default".
type LayoutSettings struct {
	TeamsPerRow     int       `yaml:"teams_per_row"`
	ColumnSpacing   float64   `yaml:"column_spacing"`
	RowOffsets      []float64 `yaml:"row_offsets"`
	MemberRadius    float64   `yaml:"member_radius"`
	TeamColor       string    `yaml:"team_color"`
	DefaultColor    string    `yaml:"default_color"`
	RejectedOpacity *float64  `yaml:"rejected_opacity"`
	// StatusColors overrides fill colors per pipeline status name.
	StatusColors map[string]string `yaml:"status_colors"`
}

// LoadConfig loads configuration from environment variables and, when
// present, overlays the layout tuning file
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		DataFile:   getEnv("DATA_FILE", "data/graph.json"),
		LayoutFile: getEnv("LAYOUT_FILE", "config/layout.yaml"),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	if cfg.LayoutFile != "" {
		settings, err := LoadLayoutSettings(cfg.LayoutFile)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load layout settings: %w", err)
		}
		cfg.Layout = settings
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("DATA_FILE cannot be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel)
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LayoutConfig merges the tuning file over the stock layout defaults
func (c *Config) LayoutConfig() services.LayoutConfig {
	return c.Layout.Apply(services.DefaultLayoutConfig())
}

// LoadLayoutSettings reads layout tuning from a YAML file
func LoadLayoutSettings(path string) (LayoutSettings, error) {
	var settings LayoutSettings

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, err
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse %s: %w", path, err)
	}
	return settings, nil
}

// Apply overlays the non-zero settings on top of a base layout config
func (s LayoutSettings) Apply(base services.LayoutConfig) services.LayoutConfig {
	if s.TeamsPerRow > 0 {
		base.TeamsPerRow = s.TeamsPerRow
	}
	if s.ColumnSpacing > 0 {
		base.ColumnSpacing = s.ColumnSpacing
	}
	if len(s.RowOffsets) > 0 {
		base.RowOffsets = s.RowOffsets
	}
	if s.MemberRadius > 0 {
		base.MemberRadius = s.MemberRadius
	}
	if s.TeamColor != "" {
		base.TeamColor = s.TeamColor
	}
	if s.DefaultColor != "" {
		base.DefaultColor = s.DefaultColor
	}
	if s.RejectedOpacity != nil {
		base.RejectedOpacity = *s.RejectedOpacity
	}
	if len(s.StatusColors) > 0 {
		colors := make(map[entities.Status]string, len(base.StatusColors))
		for k, v := range base.StatusColors {
			colors[k] = v
		}
		for name, color := range s.StatusColors {
			colors[entities.Status(name)] = color
		}
		base.StatusColors = colors
	}
	return base
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvList gets a comma-separated environment variable with a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
