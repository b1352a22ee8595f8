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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DSNFile == "" {
		t.Error("Expected a default dsn_file, got empty")
	}
	if cfg.HistoryFile == "" {
		t.Error("Expected a default history_file, got empty")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log_level 'info', got '%s'", cfg.LogLevel)
	}
	if cfg.LogJSON {
		t.Error("Expected log_json false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "debug level",
			mutate: func(c *Config) { c.LogLevel = "debug" },
		},
		{
			name:    "bogus log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
		{
			name:    "empty dsn_file",
			mutate:  func(c *Config) { c.DSNFile = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	configContent := `# Test configuration
dsn_file = "/tmp/test-connections.ini"
history_file = '/tmp/test-history'
log_level = "debug"
log_json = true
`
	configPath := filepath.Join(t.TempDir(), "flysql.conf")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	mgr := NewManager()
	if err := mgr.LoadFromFile(configPath); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	cfg := mgr.Get()

	if cfg.DSNFile != "/tmp/test-connections.ini" {
		t.Errorf("Expected dsn_file '/tmp/test-connections.ini', got '%s'", cfg.DSNFile)
	}
	if cfg.HistoryFile != "/tmp/test-history" {
		t.Errorf("Expected history_file '/tmp/test-history', got '%s'", cfg.HistoryFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log_level 'debug', got '%s'", cfg.LogLevel)
	}
	if !cfg.LogJSON {
		t.Error("Expected log_json true")
	}
	if cfg.ConfigFile != configPath {
		t.Errorf("Expected ConfigFile '%s', got '%s'", configPath, cfg.ConfigFile)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	mgr := NewManager()
	if err := mgr.LoadFromFile(filepath.Join(dir, "missing.conf")); err == nil {
		t.Error("LoadFromFile(missing) succeeded, want error")
	}

	bad := filepath.Join(dir, "bad.conf")
	if err := os.WriteFile(bad, []byte("not a key value line\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	if err := mgr.LoadFromFile(bad); err == nil {
		t.Error("LoadFromFile(invalid syntax) succeeded, want error")
	}

	unknown := filepath.Join(dir, "unknown.conf")
	if err := os.WriteFile(unknown, []byte("mystery_key = 1\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	err := mgr.LoadFromFile(unknown)
	if err == nil {
		t.Fatal("LoadFromFile(unknown key) succeeded, want error")
	}
	if !strings.Contains(err.Error(), "mystery_key") {
		t.Errorf("error %v does not name the offending key", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvDSNFile, "/env/connections.ini")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogJSON, "true")

	mgr := NewManager()
	mgr.LoadFromEnv()

	cfg := mgr.Get()

	if cfg.DSNFile != "/env/connections.ini" {
		t.Errorf("Expected dsn_file '/env/connections.ini' from env, got '%s'", cfg.DSNFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log_level 'debug' from env, got '%s'", cfg.LogLevel)
	}
	if !cfg.LogJSON {
		t.Error("Expected log_json true from env")
	}
}

func TestConfigPrecedence(t *testing.T) {
	// Environment overlays file values.
	configContent := "dsn_file = \"/file/connections.ini\"\nlog_level = \"warn\"\n"
	configPath := filepath.Join(t.TempDir(), "flysql.conf")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv(EnvConfigFile, configPath)
	t.Setenv(EnvDSNFile, "/env/connections.ini")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogJSON, "")
	t.Setenv(EnvHistoryFile, "")

	mgr := NewManager()
	if err := mgr.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cfg := mgr.Get()
	if cfg.DSNFile != "/env/connections.ini" {
		t.Errorf("Expected env to win over file, got dsn_file '%s'", cfg.DSNFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected file log_level 'warn' to survive, got '%s'", cfg.LogLevel)
	}
}

func TestGlobalManager(t *testing.T) {
	m1 := Global()
	m2 := Global()
	if m1 != m2 {
		t.Error("Global() returned different managers")
	}
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	s := cfg.String()
	if !strings.Contains(s, "defaults + environment") {
		t.Errorf("String() = %q, expected it to name the config source", s)
	}

	cfg.ConfigFile = "/etc/flysql/flysql.conf"
	if !strings.Contains(cfg.String(), "/etc/flysql/flysql.conf") {
		t.Errorf("String() = %q, expected it to name the config file", cfg.String())
	}
}
