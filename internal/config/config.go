// Package config loads leadsync settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/layout"
)

// Config holds all leadsync settings.
type Config struct {
	// DataPath is the root of the data directory.
	DataPath string `yaml:"data_path"`
	// Folders names the data sub-directories.
	Folders FoldersConfig `yaml:"folders"`
	// MasterFileName is the preferred master workbook name.
	MasterFileName string `yaml:"master_file_name"`
	// Logging configures the zap logger.
	Logging LoggingConfig `yaml:"logging"`
}

// FoldersConfig names the data sub-directories, relative to DataPath.
type FoldersConfig struct {
	Main       string `yaml:"main"`
	Tracking   string `yaml:"tracking"`
	RawData    string `yaml:"raw_data"`
	Historical string `yaml:"historical"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataPath: "data",
		Folders: FoldersConfig{
			Main:       "Main",
			Tracking:   "Tracking",
			RawData:    "RawData",
			Historical: "Historical",
		},
		MasterFileName: "Datos.xlsx",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets LEADSYNC_* variables (and the legacy DATA_PATH)
// override file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DATA_PATH"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("LEADSYNC_DATA_PATH"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("LEADSYNC_MASTER_FILE"); v != "" {
		c.MasterFileName = v
	}
	if v := os.Getenv("LEADSYNC_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("LEADSYNC_LOG_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("data_path must not be empty")
	}
	for name, dir := range map[string]string{
		"folders.main":       c.Folders.Main,
		"folders.tracking":   c.Folders.Tracking,
		"folders.raw_data":   c.Folders.RawData,
		"folders.historical": c.Folders.Historical,
	} {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	if !strings.EqualFold(filepath.Ext(c.MasterFileName), ".xlsx") {
		return fmt.Errorf("master_file_name must be an .xlsx file, got %q", c.MasterFileName)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}

// Layout returns the data directory layout described by the configuration.
func (c *Config) Layout() *layout.Layout {
	return &layout.Layout{
		Main:           filepath.Join(c.DataPath, c.Folders.Main),
		Tracking:       filepath.Join(c.DataPath, c.Folders.Tracking),
		RawData:        filepath.Join(c.DataPath, c.Folders.RawData),
		Historical:     filepath.Join(c.DataPath, c.Folders.Historical),
		MasterFileName: c.MasterFileName,
	}
}
