package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Document.Strategy != StrategyAuto {
		t.Errorf("Default strategy = %v, want auto", cfg.Document.Strategy)
	}
	if cfg.Server.Address != "localhost:8001" {
		t.Errorf("Default server address = %q, want localhost:8001", cfg.Server.Address)
	}
	if cfg.Server.MaxUploadSize != 10485760 {
		t.Errorf("Default upload limit = %d, want 10485760", cfg.Server.MaxUploadSize)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	templatePath := filepath.Join(tmpDir, "base.pro")
	if err := os.WriteFile(templatePath, []byte("stub"), 0644); err != nil {
		t.Fatalf("Failed to write template file: %v", err)
	}

	configContent := `version: 1
document:
  strategy: template
  template_path: ` + templatePath + `
  file_name_transliterate: true
server:
  address: "0.0.0.0:9000"
  max_upload_size: 2048
logging:
  console:
    level: debug
reporting:
  destination: /tmp/test-report.zip
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Document.Strategy != StrategyTemplate {
		t.Errorf("Strategy = %v, want template", cfg.Document.Strategy)
	}
	if cfg.Document.TemplatePath != templatePath {
		t.Errorf("TemplatePath = %q, want %q", cfg.Document.TemplatePath, templatePath)
	}
	if !cfg.Document.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}
	if cfg.Server.Address != "0.0.0.0:9000" {
		t.Errorf("Server address = %q, want 0.0.0.0:9000", cfg.Server.Address)
	}
	if cfg.Server.MaxUploadSize != 2048 {
		t.Errorf("MaxUploadSize = %d, want 2048", cfg.Server.MaxUploadSize)
	}
	// values not present in the file keep their defaults
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("File log level = %q, want default none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `version: 1
document:
  strategy: auto
  invalid indent
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "unknown.yaml")

	configWithUnknown := `version: 1
unknown_field: value
`
	if err := os.WriteFile(configPath, []byte(configWithUnknown), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad version", "version: 2\n"},
		{"bad upload limit", "version: 1\nserver:\n  max_upload_size: 16\n"},
		{"bad strategy", "version: 1\ndocument:\n  strategy: nonsense\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}
	if !strings.Contains(string(data), "strategy: auto") {
		t.Error("Prepare() output does not carry default strategy")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	for _, want := range []string{"version: 1", "strategy: auto", "address: localhost:8001"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Dump() output missing %q", want)
		}
	}
}
