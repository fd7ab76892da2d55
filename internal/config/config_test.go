// ABOUTME: Tests for gains configuration management.
// ABOUTME: Covers load, save, defaults, key assignment, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// useTempConfigHome points XDG_CONFIG_HOME at a fresh directory.
func useTempConfigHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("GAINS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	return tmpDir
}

func TestGetFormatDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetFormat(); got != "text" {
		t.Errorf("GetFormat() = %q, want %q", got, "text")
	}
}

func TestGetFormatExplicit(t *testing.T) {
	cfg := &Config{Format: "json"}
	if got := cfg.GetFormat(); got != "json" {
		t.Errorf("GetFormat() = %q, want %q", got, "json")
	}
}

func TestGetLogLevelDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("GetLogLevel() = %q, want %q", got, "warn")
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(*Config) bool
	}{
		{name: "format yaml", key: "format", value: "yaml", check: func(c *Config) bool { return c.Format == "yaml" }},
		{name: "format unknown", key: "format", value: "xml", wantErr: true},
		{name: "no_color true", key: "no_color", value: "true", check: func(c *Config) bool { return c.NoColor }},
		{name: "no_color garbage", key: "no_color", value: "maybe", wantErr: true},
		{name: "log level debug", key: "log_level", value: "debug", check: func(c *Config) bool { return c.LogLevel == "debug" }},
		{name: "log level unknown", key: "log_level", value: "loud", wantErr: true},
		{name: "unknown key", key: "backend", value: "sqlite", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Set(%q, %q) expected error", tt.key, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q) unexpected error: %v", tt.key, tt.value, err)
			}
			if !tt.check(cfg) {
				t.Errorf("Set(%q, %q) did not apply: %+v", tt.key, tt.value, cfg)
			}
		})
	}
}

func TestRepair(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		want      Config
		wantCount int
	}{
		{name: "valid values kept", cfg: Config{Format: "json", LogLevel: "debug"}, want: Config{Format: "json", LogLevel: "debug"}},
		{name: "empty values kept", cfg: Config{}, want: Config{}},
		{name: "bad format cleared", cfg: Config{Format: "csv", NoColor: true}, want: Config{NoColor: true}, wantCount: 1},
		{name: "bad level cleared", cfg: Config{Format: "yaml", LogLevel: "loud"}, want: Config{Format: "yaml"}, wantCount: 1},
		{name: "both cleared", cfg: Config{Format: "csv", LogLevel: "loud"}, want: Config{}, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			errs := cfg.Repair()
			if len(errs) != tt.wantCount {
				t.Errorf("Repair() returned %d errors, want %d: %v", len(errs), tt.wantCount, errs)
			}
			if cfg != tt.want {
				t.Errorf("Repair() left %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestRepairNamesKey(t *testing.T) {
	cfg := &Config{Format: "csv"}
	errs := cfg.Repair()
	if len(errs) != 1 || errs[0].Error()[:7] != "format:" {
		t.Errorf("Repair() = %v, want an error starting with %q", errs, "format:")
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/conf/gains.json")
	want := filepath.Join(home, "conf/gains.json")
	if got != want {
		t.Errorf("ExpandPath(\"~/conf/gains.json\") = %q, want %q", got, want)
	}
}

func TestExpandPathRelative(t *testing.T) {
	if got := ExpandPath("conf/gains.json"); got != "conf/gains.json" {
		t.Errorf("ExpandPath(\"conf/gains.json\") = %q, want %q", got, "conf/gains.json")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	useTempConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.Format != "" || cfg.NoColor || cfg.LogLevel != "" {
		t.Errorf("Expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	useTempConfigHome(t)

	cfg := &Config{Format: "markdown", NoColor: true, LogLevel: "info"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Load() = %+v, want %+v", loaded, cfg)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := useTempConfigHome(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	cfg := &Config{Format: "json"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "gains")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := useTempConfigHome(t)

	configDir := filepath.Join(tmpDir, "gains")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := useTempConfigHome(t)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "gains", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestGetConfigPathOverride(t *testing.T) {
	useTempConfigHome(t)
	t.Setenv("GAINS_CONFIG", "/tmp/elsewhere.json")

	if got := GetConfigPath(); got != "/tmp/elsewhere.json" {
		t.Errorf("GetConfigPath() = %q, want %q", got, "/tmp/elsewhere.json")
	}
}

func TestConfigJSONSerialization(t *testing.T) {
	cfg := &Config{Format: "html", LogLevel: "debug"}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded["format"] != "html" {
		t.Errorf("format = %v, want html", decoded["format"])
	}
	if _, ok := decoded["no_color"]; ok {
		t.Error("no_color should be omitted when false")
	}
}
