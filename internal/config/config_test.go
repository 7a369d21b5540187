package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("expected log format console, got %s", cfg.Log.Format)
	}

	if cfg.Trace.Enabled {
		t.Error("expected tracing to be disabled by default")
	}

	if cfg.Divide.Method != MethodIterative {
		t.Errorf("expected divide method iterative, got %s", cfg.Divide.Method)
	}

	if cfg.Verify.VectorsFile != "" {
		t.Errorf("expected built-in vectors, got %s", cfg.Verify.VectorsFile)
	}
	if cfg.Verify.Exhaustive {
		t.Error("expected exhaustive sweep to be disabled by default")
	}
	if cfg.Verify.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Verify.Workers)
	}
	if cfg.Verify.DivisorStride != 7 {
		t.Errorf("expected divisor stride 7, got %d", cfg.Verify.DivisorStride)
	}
	if cfg.Verify.DividendStride != 97 {
		t.Errorf("expected dividend stride 97, got %d", cfg.Verify.DividendStride)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError bool
	}{
		{
			name:      "valid default config",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "invalid log level",
			mutate:    func(c *Config) { c.Log.Level = "trace" },
			wantError: true,
		},
		{
			name:      "uppercase log level",
			mutate:    func(c *Config) { c.Log.Level = "DEBUG" },
			wantError: false,
		},
		{
			name:      "mixed case log format",
			mutate:    func(c *Config) { c.Log.Format = "Json" },
			wantError: false,
		},
		{
			name:      "invalid log format",
			mutate:    func(c *Config) { c.Log.Format = "text" },
			wantError: true,
		},
		{
			name:      "both dividers",
			mutate:    func(c *Config) { c.Divide.Method = MethodBoth },
			wantError: false,
		},
		{
			name:      "unknown divide method",
			mutate:    func(c *Config) { c.Divide.Method = "native" },
			wantError: true,
		},
		{
			name:      "no workers",
			mutate:    func(c *Config) { c.Verify.Workers = 0 },
			wantError: true,
		},
		{
			name:      "divisor stride too large",
			mutate:    func(c *Config) { c.Verify.DivisorStride = 65536 },
			wantError: true,
		},
		{
			name:      "zero dividend stride",
			mutate:    func(c *Config) { c.Verify.DividendStride = 0 },
			wantError: true,
		},
		{
			name:      "missing vectors file",
			mutate:    func(c *Config) { c.Verify.VectorsFile = "/nonexistent/vectors.yaml" },
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bitarith.yaml")

	configContent := `
log:
  level: "debug"
  format: "json"

trace:
  enabled: true

divide:
  method: "recursive"

verify:
  vectors_file: "/tmp/vectors.yaml"
  exhaustive: true
  workers: 8
  divisor_stride: 1
  dividend_stride: 3
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	viper.Reset()
	viper.SetConfigFile(configPath)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("expected log format json, got %s", cfg.Log.Format)
	}
	if !cfg.Trace.Enabled {
		t.Error("expected tracing to be enabled")
	}
	if cfg.Divide.Method != MethodRecursive {
		t.Errorf("expected divide method recursive, got %s", cfg.Divide.Method)
	}
	if cfg.Verify.VectorsFile != "/tmp/vectors.yaml" {
		t.Errorf("expected vectors file /tmp/vectors.yaml, got %s", cfg.Verify.VectorsFile)
	}
	if !cfg.Verify.Exhaustive {
		t.Error("expected exhaustive sweep to be enabled")
	}
	if cfg.Verify.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Verify.Workers)
	}
	if cfg.Verify.DivisorStride != 1 {
		t.Errorf("expected divisor stride 1, got %d", cfg.Verify.DivisorStride)
	}
	if cfg.Verify.DividendStride != 3 {
		t.Errorf("expected dividend stride 3, got %d", cfg.Verify.DividendStride)
	}
}

func TestLoadConfigNonExistent(t *testing.T) {
	viper.Reset()
	viper.SetConfigFile("/nonexistent/bitarith.yaml")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() should return default config on missing file, got error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Log.Level)
	}
	if cfg.Divide.Method != MethodIterative {
		t.Errorf("expected default divide method iterative, got %s", cfg.Divide.Method)
	}
	if cfg.Verify.Workers != 4 {
		t.Errorf("expected default workers 4, got %d", cfg.Verify.Workers)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bitarith.yaml")
	if err := os.WriteFile(configPath, []byte("log: [unterminated"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	viper.Reset()
	viper.SetConfigFile(configPath)

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadConfigEnvironment(t *testing.T) {
	viper.Reset()
	viper.SetConfigFile("/nonexistent/bitarith.yaml")
	viper.SetEnvPrefix("BITARITH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	t.Setenv("BITARITH_DIVIDE_METHOD", "both")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Divide.Method != MethodBoth {
		t.Errorf("expected divide method from environment, got %s", cfg.Divide.Method)
	}
}
