// Package config loads and saves the TOML configuration consumed by
// cmd/asmctl: per-assembler buffer limits and default NULL-comparison
// policy, REST server listen settings, and inspector display preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/logicalclocks/rondb-sub003/isa"
)

// Config is the top-level configuration document.
type Config struct {
	// Assembler settings
	Assembler struct {
		InitialBufWords   int    `toml:"initial_buf_words"`
		MaxDynamicBufSize int    `toml:"max_dynamic_buf_size"`
		UnknownHandling   string `toml:"unknown_handling"` // no_unknowns, branch_if_unknown, continue_if_unknown
	} `toml:"assembler"`

	// Server settings
	Server struct {
		ListenAddr   string `toml:"listen_addr"`
		ReadTimeout  int    `toml:"read_timeout_seconds"`
		WriteTimeout int    `toml:"write_timeout_seconds"`
	} `toml:"server"`

	// Inspector settings
	Inspector struct {
		HistorySize  int    `toml:"history_size"`
		ColorOutput  bool   `toml:"color_output"`
		NumberFormat string `toml:"number_format"` // hex, dec
	} `toml:"inspector"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Assembler defaults
	cfg.Assembler.InitialBufWords = 64
	cfg.Assembler.MaxDynamicBufSize = 32768
	cfg.Assembler.UnknownHandling = "no_unknowns"

	// Server defaults
	cfg.Server.ListenAddr = ":8089"
	cfg.Server.ReadTimeout = 5
	cfg.Server.WriteTimeout = 5

	// Inspector defaults
	cfg.Inspector.HistorySize = 1000
	cfg.Inspector.ColorOutput = true
	cfg.Inspector.NumberFormat = "hex"

	return cfg
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\asmctl\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "asmctl")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/asmctl/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "asmctl")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- operator-supplied config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// UnknownHandlingMode parses Assembler.UnknownHandling into the isa enum
// the assembler consumes, defaulting to CmpHasNoUnknowns for an
// unrecognised or empty value.
func (c *Config) UnknownHandlingMode() isa.UnknownHandling {
	switch c.Assembler.UnknownHandling {
	case "branch_if_unknown":
		return isa.BranchIfUnknown
	case "continue_if_unknown":
		return isa.ContinueIfUnknown
	default:
		return isa.CmpHasNoUnknowns
	}
}
