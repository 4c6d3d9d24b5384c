// ABOUTME: lift configuration management with backend selection.
// ABOUTME: Reads JSON config from the XDG config dir and applies LIFT_* env overrides.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/lift/internal/storage"
)

// Backend and flat store names.
const (
	BackendSQLite = "sqlite"
	BackendFlat   = "flat"

	FlatStoreBadger = "badger"
	FlatStoreCharm  = "charm"
)

// Environment variables that override the config file.
const (
	EnvBackend   = "LIFT_BACKEND"
	EnvFlatStore = "LIFT_FLAT_STORE"
	EnvDataDir   = "LIFT_DATA_DIR"
	EnvLogLevel  = "LIFT_LOG_LEVEL"
	EnvLogFile   = "LIFT_LOG_FILE"
)

// Config stores lift configuration.
type Config struct {
	// Backend selects where entities live: "sqlite" (default) or "flat".
	Backend string `json:"backend,omitempty"`

	// FlatStore selects the key-value store: "badger" (default, local only)
	// or "charm" (synced through Charm Cloud).
	FlatStore string `json:"flat_store,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts fitness.db here and badger uses the flat/ folder.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/lift.
	DataDir string `json:"data_dir,omitempty"`

	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"`
	LogFile   string `json:"log_file,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return strings.ToLower(c.Backend)
}

// GetFlatStore returns the configured flat store, defaulting to "badger".
func (c *Config) GetFlatStore() string {
	if c.FlatStore == "" {
		return FlatStoreBadger
	}
	return strings.ToLower(c.FlatStore)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath is the SQLite database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), storage.DBFileName)
}

// FlatDir is the badger directory.
func (c *Config) FlatDir() string {
	return filepath.Join(c.GetDataDir(), "flat")
}

// LogJSON reports whether logs should be JSON.
func (c *Config) LogJSON() bool {
	return strings.EqualFold(c.LogFormat, "json")
}

// Validate rejects unknown backend or flat store names.
func (c *Config) Validate() error {
	switch c.GetBackend() {
	case BackendSQLite, BackendFlat:
	default:
		return fmt.Errorf("unknown backend: %q", c.Backend)
	}
	switch c.GetFlatStore() {
	case FlatStoreBadger, FlatStoreCharm:
	default:
		return fmt.Errorf("unknown flat store: %q", c.FlatStore)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.LogFormat)
	}
	return nil
}

// ApplyEnv overrides fields from LIFT_* environment variables.
func (c *Config) ApplyEnv() {
	for env, field := range map[string]*string{
		EnvBackend:   &c.Backend,
		EnvFlatStore: &c.FlatStore,
		EnvDataDir:   &c.DataDir,
		EnvLogLevel:  &c.LogLevel,
		EnvLogFile:   &c.LogFile,
	} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*field = v
		}
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultDataDir returns $XDG_DATA_HOME/lift, or ~/.local/share/lift.
func DefaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "lift")
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "lift", "config.json")
}

// Load reads config from disk. A missing file gives an empty config.
// Environment overrides are applied on top.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
