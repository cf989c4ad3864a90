// Package config loads the TOML configuration file and applies environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "taskflow.db"
	DefaultAddr           = ":8080"

	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

type Config struct {
	Addr    string `toml:"addr"`
	Backend string `toml:"backend"`
	DataDir string `toml:"data_dir"`
	DBPath  string `toml:"db_path"`
}

// ResolveConfigPath returns the config file location: $TASKFLOW_CONFIG if
// set, otherwise config.toml under the user config directory.
func ResolveConfigPath() string {
	if p := os.Getenv("TASKFLOW_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "taskflow", DefaultConfigFileName)
}

// DefaultDataDir returns where data lives when nothing else is configured.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskflow"
	}
	return filepath.Join(home, ".local", "share", "taskflow")
}

// LoadOrCreate reads the config at path, writing the defaults there first
// if it does not exist. Environment overrides are applied afterwards and
// never written back.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	if v := os.Getenv("TASKFLOW_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("TASKFLOW_BACKEND"); v != "" {
		c.Backend = v
	}
}

func (c *Config) fillDefaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.Backend == "" {
		c.Backend = BackendSQLite
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir()
	}
	if c.DBPath == "" {
		c.DBPath = filepath.Join(c.DataDir, DefaultDBName)
	}
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("backend must be '%s' or '%s', got %q", BackendSQLite, BackendFile, c.Backend)
	}
	return nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		Addr:    DefaultAddr,
		Backend: BackendSQLite,
	}
}
