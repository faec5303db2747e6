package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := &Loader{configPaths: []string{filepath.Join(t.TempDir(), "missing.yaml")}}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	if cfg.Run.Algorithm != "bubble" {
		t.Errorf("Expected default algorithm bubble, got %s", cfg.Run.Algorithm)
	}
	if len(loader.Sources()) != 0 {
		t.Errorf("Expected no sources, got %v", loader.Sources())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
run:
  algorithm: "selection"
  tick_interval: 25ms
  bar_width: 3
output:
  default_format: "json"
`)

	loader := NewLoader()
	cfg, err := loader.LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.Run.Algorithm != "selection" {
		t.Errorf("Expected algorithm selection, got %s", cfg.Run.Algorithm)
	}
	if cfg.Run.TickInterval != 25*time.Millisecond {
		t.Errorf("Expected tick interval 25ms, got %v", cfg.Run.TickInterval)
	}
	if cfg.Run.BarWidth != 3 {
		t.Errorf("Expected bar width 3, got %d", cfg.Run.BarWidth)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("Expected output format json, got %s", cfg.Output.DefaultFormat)
	}

	// keys missing from the file keep their defaults
	if cfg.Run.Countdown != 3 {
		t.Errorf("Expected countdown to remain 3, got %d", cfg.Run.Countdown)
	}
	if !cfg.Sound.Enabled || !cfg.Output.Emoji {
		t.Errorf("Expected boolean defaults to survive a partial file")
	}
	if got := loader.Sources(); len(got) != 1 || got[0] != path {
		t.Errorf("Expected sources [%s], got %v", path, got)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
run:
  algorithm: "bubble
  tick_interval: 10ms
`)

	if _, err := NewLoader().LoadConfig(path); err == nil {
		t.Error("Expected error loading invalid YAML config, but got none")
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	path := writeConfig(t, `run:
  tick_interval: 0s
`)
	_, err := NewLoader().LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "tick_interval") {
		t.Errorf("Expected tick_interval validation error, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SORTVIS_RUN_ALGORITHM", "bogo")
	t.Setenv("SORTVIS_RUN_TICK_INTERVAL", "2ms")
	t.Setenv("SORTVIS_RUN_SEED", "77")
	t.Setenv("SORTVIS_OUTPUT_EMOJI", "false")
	t.Setenv("SORTVIS_SOUND_VOLUME", "0.5")
	t.Setenv("SORTVIS_LOGGING_VERBOSE", "true")

	loader := NewLoader()
	cfg := DefaultConfig()

	if err := loader.applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	if cfg.Run.Algorithm != "bogo" {
		t.Errorf("Expected algorithm bogo, got %s", cfg.Run.Algorithm)
	}
	if cfg.Run.TickInterval != 2*time.Millisecond {
		t.Errorf("Expected tick interval 2ms, got %v", cfg.Run.TickInterval)
	}
	if cfg.Run.Seed != 77 {
		t.Errorf("Expected seed 77, got %d", cfg.Run.Seed)
	}
	if cfg.Output.Emoji {
		t.Errorf("Expected emoji to be disabled")
	}
	if cfg.Sound.Volume != 0.5 {
		t.Errorf("Expected volume 0.5, got %v", cfg.Sound.Volume)
	}
	if !cfg.Logging.Verbose {
		t.Errorf("Expected verbose to be true")
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"invalid int", "SORTVIS_RUN_BAR_WIDTH", "not-a-number"},
		{"invalid bool", "SORTVIS_SOUND_ENABLED", "not-a-bool"},
		{"invalid duration", "SORTVIS_RUN_TICK_INTERVAL", "not-a-duration"},
		{"invalid uint", "SORTVIS_RUN_SEED", "-4"},
		{"invalid float", "SORTVIS_SOUND_VOLUME", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			if err := NewLoader().applyEnvOverrides(DefaultConfig()); err == nil {
				t.Error("Expected error for invalid env var value, but got none")
			}
		})
	}
}

func TestParseHelpers(t *testing.T) {
	var d time.Duration
	if err := parseDuration("30s", &d); err != nil || d != 30*time.Second {
		t.Errorf("Expected 30s, got %v (%v)", d, err)
	}

	var i int
	if err := parseInt("42", &i); err != nil || i != 42 {
		t.Errorf("Expected 42, got %d (%v)", i, err)
	}

	var u uint64
	if err := parseUint("7", &u); err != nil || u != 7 {
		t.Errorf("Expected 7, got %d (%v)", u, err)
	}

	var f float64
	if err := parseFloat("0.25", &f); err != nil || f != 0.25 {
		t.Errorf("Expected 0.25, got %v (%v)", f, err)
	}

	var b bool
	if err := parseBool("true", &b); err != nil || !b {
		t.Errorf("Expected true, got %v (%v)", b, err)
	}
	if err := parseBool("not-a-bool", &b); err == nil {
		t.Error("Expected error for invalid bool, but got none")
	}
}

func TestFileExists(t *testing.T) {
	if fileExists("/path/that/does/not/exist") {
		t.Error("Expected file to not exist, but fileExists returned true")
	}

	tempFile := filepath.Join(t.TempDir(), "test-file")
	if err := os.WriteFile(tempFile, []byte("test"), 0o600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if !fileExists(tempFile) {
		t.Error("Expected file to exist, but fileExists returned false")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
		errMsg  string
	}{
		{name: "valid yaml file", path: "config.yaml"},
		{name: "valid yml file", path: "config.yml"},
		{name: "path traversal attempt", path: "../../../etc/passwd", wantErr: true, errMsg: "path traversal not allowed"},
		{name: "non-yaml file", path: "config.txt", wantErr: true, errMsg: "config file must have .yaml or .yml extension"},
		{name: "system file access", path: "/etc/passwd.yaml", wantErr: true, errMsg: "access to system files not allowed"},
		{name: "proc filesystem access", path: "/proc/version.yaml", wantErr: true, errMsg: "access to system files not allowed"},
		{name: "relative path with valid extension", path: "./configs/app.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Expected error message to contain '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
