/*
 * Copyright (c) 2026 Firefly Software Solutions Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package config provides configuration management for the FlySQL tools.

The configuration system supports multiple sources with clear precedence:
 1. Command-line flags (highest priority)
 2. Environment variables
 3. Configuration file
 4. Default values (lowest priority)

Configuration File Format:
The configuration file uses TOML format for readability and ease of use.

Example configuration file:

	# FlySQL Configuration
	dsn_file = "~/.flysql/connections.ini"
	history_file = "~/.flysql_history"
	log_level = "info"
	log_json = false

Environment Variables:
  - FLYSQL_DSN_FILE: Path to the connections file
  - FLYSQL_HISTORY_FILE: Path to the shell history file
  - FLYSQL_LOG_LEVEL: Log level (debug, info, warn, error)
  - FLYSQL_LOG_JSON: Enable JSON logging (true/false)
  - FLYSQL_CONFIG_FILE: Path to configuration file
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Environment variable names for configuration.
const (
	EnvDSNFile     = "FLYSQL_DSN_FILE"
	EnvHistoryFile = "FLYSQL_HISTORY_FILE"
	EnvLogLevel    = "FLYSQL_LOG_LEVEL"
	EnvLogJSON     = "FLYSQL_LOG_JSON"
	EnvConfigFile  = "FLYSQL_CONFIG_FILE"
)

// Default configuration file paths (searched in order).
var DefaultConfigPaths = []string{
	"/etc/flysql/flysql.conf",
	"$HOME/.config/flysql/flysql.conf",
	"./flysql.conf",
}

// Config holds all configuration values for the FlySQL tools.
type Config struct {
	// DSNFile is the path to the connections file.
	DSNFile string
	// HistoryFile is the path to the shell history file.
	HistoryFile string
	// LogLevel is the minimum level logged (debug, info, warn, error).
	LogLevel string
	// LogJSON enables JSON-formatted log output.
	LogJSON bool
	// ConfigFile records which file configuration was loaded from, if any.
	ConfigFile string
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		DSNFile:     defaultPath(".flysql", "connections.ini"),
		HistoryFile: defaultPath("", ".flysql_history"),
		LogLevel:    "info",
		LogJSON:     false,
	}
}

// defaultPath builds a path under the user's home directory, falling back
// to the working directory when home is unknown.
func defaultPath(dir, name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	if dir == "" {
		return filepath.Join(home, name)
	}
	return filepath.Join(home, dir, name)
}

// Manager provides thread-safe access to the active configuration.
type Manager struct {
	mu  sync.RWMutex
	cfg *Config
}

// NewManager creates a Manager holding the default configuration.
func NewManager() *Manager {
	return &Manager{cfg: DefaultConfig()}
}

// global is the process-wide configuration manager.
var (
	global     *Manager
	globalOnce sync.Once
)

// Global returns the process-wide Manager.
func Global() *Manager {
	globalOnce.Do(func() {
		global = NewManager()
	})
	return global
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg := *m.cfg
	return &cfg
}

// Set replaces the current configuration.
func (m *Manager) Set(cfg *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	if c.DSNFile == "" {
		return fmt.Errorf("dsn_file must not be empty")
	}
	return nil
}

// LoadFromFile loads configuration from a TOML file, overlaying the
// current values.
func (m *Manager) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := m.Get()
	if err := parseTOML(string(data), cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.ConfigFile = path

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	m.Set(cfg)
	return nil
}

// LoadFromEnv overlays configuration from environment variables.
func (m *Manager) LoadFromEnv() {
	cfg := m.Get()

	if v := os.Getenv(EnvDSNFile); v != "" {
		cfg.DSNFile = v
	}
	if v := os.Getenv(EnvHistoryFile); v != "" {
		cfg.HistoryFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogJSON); v != "" {
		cfg.LogJSON = strings.ToLower(v) == "true" || v == "1"
	}

	m.Set(cfg)
}

// FindConfigFile searches for a configuration file in default locations.
// Returns the path to the first file found, or empty string if none found.
func FindConfigFile() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}
	for _, path := range DefaultConfigPaths {
		expanded := os.ExpandEnv(path)
		if _, err := os.Stat(expanded); err == nil {
			return expanded
		}
	}
	return ""
}

// Load applies the full precedence chain: defaults, then the config file
// (if one is found), then environment variables.
func (m *Manager) Load() error {
	m.Set(DefaultConfig())
	if path := FindConfigFile(); path != "" {
		if err := m.LoadFromFile(path); err != nil {
			return err
		}
	}
	m.LoadFromEnv()
	return m.Get().Validate()
}

// parseTOML parses the TOML subset the config file uses: key = value
// lines, quoted string values, and # comments.
func parseTOML(data string, cfg *Config) error {
	for lineNum, line := range strings.Split(data, "\n") {
		if idx := strings.Index(line, "#"); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("line %d: invalid syntax: %s", lineNum+1, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if len(value) >= 2 && ((value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'')) {
			value = value[1 : len(value)-1]
		}

		if err := applyConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("line %d: %w", lineNum+1, err)
		}
	}
	return nil
}

// applyConfigValue applies a key-value pair to the configuration.
func applyConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "dsn_file":
		cfg.DSNFile = expandHome(value)
	case "history_file":
		cfg.HistoryFile = expandHome(value)
	case "log_level":
		cfg.LogLevel = value
	case "log_json":
		cfg.LogJSON = strings.ToLower(value) == "true" || value == "1"
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// String returns a printable summary of the configuration. The summary
// never contains credentials; the connections file may.
func (c *Config) String() string {
	source := c.ConfigFile
	if source == "" {
		source = "defaults + environment"
	}
	return fmt.Sprintf("dsn_file=%s history_file=%s log_level=%s log_json=%t (source: %s)",
		c.DSNFile, c.HistoryFile, c.LogLevel, c.LogJSON, source)
}
