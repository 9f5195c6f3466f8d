package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/logicalclocks/rondb-sub003/isa"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test assembler defaults
	if cfg.Assembler.InitialBufWords != 64 {
		t.Errorf("Expected InitialBufWords=64, got %d", cfg.Assembler.InitialBufWords)
	}
	if cfg.Assembler.MaxDynamicBufSize != 32768 {
		t.Errorf("Expected MaxDynamicBufSize=32768, got %d", cfg.Assembler.MaxDynamicBufSize)
	}
	if cfg.Assembler.UnknownHandling != "no_unknowns" {
		t.Errorf("Expected UnknownHandling=no_unknowns, got %s", cfg.Assembler.UnknownHandling)
	}

	// Test server defaults
	if cfg.Server.ListenAddr != ":8089" {
		t.Errorf("Expected ListenAddr=:8089, got %s", cfg.Server.ListenAddr)
	}

	// Test inspector defaults
	if cfg.Inspector.HistorySize != 1000 {
		t.Errorf("Expected HistorySize=1000, got %d", cfg.Inspector.HistorySize)
	}
	if cfg.Inspector.NumberFormat != "hex" {
		t.Errorf("Expected NumberFormat=hex, got %s", cfg.Inspector.NumberFormat)
	}
}

func TestUnknownHandlingMode(t *testing.T) {
	tests := []struct {
		value string
		want  isa.UnknownHandling
	}{
		{"no_unknowns", isa.CmpHasNoUnknowns},
		{"branch_if_unknown", isa.BranchIfUnknown},
		{"continue_if_unknown", isa.ContinueIfUnknown},
		{"", isa.CmpHasNoUnknowns},
		{"garbage", isa.CmpHasNoUnknowns},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Assembler.UnknownHandling = tt.value
		if got := cfg.UnknownHandlingMode(); got != tt.want {
			t.Errorf("UnknownHandlingMode(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}

	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "asmctl" && path != "config.toml" {
			t.Errorf("Expected path in asmctl directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Assembler.MaxDynamicBufSize = 65536
	cfg.Assembler.UnknownHandling = "branch_if_unknown"
	cfg.Server.ListenAddr = ":9090"
	cfg.Inspector.ColorOutput = false

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.Assembler.MaxDynamicBufSize != 65536 {
		t.Errorf("Expected MaxDynamicBufSize=65536, got %d", loaded.Assembler.MaxDynamicBufSize)
	}
	if loaded.Assembler.UnknownHandling != "branch_if_unknown" {
		t.Errorf("Expected UnknownHandling=branch_if_unknown, got %s", loaded.Assembler.UnknownHandling)
	}
	if loaded.Server.ListenAddr != ":9090" {
		t.Errorf("Expected ListenAddr=:9090, got %s", loaded.Server.ListenAddr)
	}
	if loaded.Inspector.ColorOutput {
		t.Error("Expected ColorOutput=false")
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.Assembler.InitialBufWords != 64 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[assembler]
max_dynamic_buf_size = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
