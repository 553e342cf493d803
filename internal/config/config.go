package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences
type Config struct {
	DBPath        string `yaml:"db_path" json:"db_path"`             // SQLite file holding the snapshot
	ConfirmDelete bool   `yaml:"confirm_delete" json:"confirm_delete"` // Ask before deleting or resetting
	HistoryLimit  int    `yaml:"history_limit" json:"history_limit"`   // Max undo entries kept, 0 = unbounded

	// Logging configuration
	LogLevel   string `yaml:"log_level" json:"log_level"`     // Log level: DEBUG, INFO, WARN, ERROR
	LogFile    string `yaml:"log_file" json:"log_file"`       // Path to log file
	LogConsole bool   `yaml:"log_console" json:"log_console"` // Enable console logging
}

// Dir returns the application directory, ~/.spacetask unless SPACETASK_HOME is set.
func Dir() (string, error) {
	if dir := os.Getenv("SPACETASK_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".spacetask"), nil
}

// Path returns the location of config.yaml
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	dbPath, logPath := "", ""
	if dir, err := Dir(); err == nil {
		dbPath = filepath.Join(dir, "spacetask.db")
		logPath = filepath.Join(dir, "logs", "spacetask.log")
	}

	return &Config{
		DBPath:        getEnv("SPACETASK_DB", dbPath),
		ConfirmDelete: true,
		HistoryLimit:  0,
		LogLevel:      getEnv("SPACETASK_LOG_LEVEL", "INFO"),
		LogFile:       getEnv("SPACETASK_LOG_FILE", logPath),
		LogConsole:    getEnv("SPACETASK_LOG_CONSOLE", "false") == "true",
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Load loads config from ~/.spacetask/config.yaml
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads config from path, returning defaults when the file is missing.
// Environment variables win over the file.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnv()

	if cfg.HistoryLimit < 0 {
		return nil, fmt.Errorf("invalid history_limit %d: must be >= 0", cfg.HistoryLimit)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SPACETASK_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("SPACETASK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SPACETASK_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("SPACETASK_LOG_CONSOLE"); v != "" {
		c.LogConsole, _ = strconv.ParseBool(v)
	}
}

// Save saves config to ~/.spacetask/config.yaml
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config as yaml to path
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
