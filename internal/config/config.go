// Package config handles the TOML run configuration of the lmc command.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is a run configuration for the virtual machine.
type Config struct {
	Verbose bool   `toml:"verbose"` // Verbose CPU tracing.
	Debug   bool   `toml:"debug"`   // Show machine state and pause before every cycle.
	Prompt  bool   `toml:"prompt"`  // Print INPUT:/OUTPUT: prompts.
	Input   string `toml:"input"`   // Input file, "-" for stdin.
	Output  string `toml:"output"`  // Output file, "-" for stdout.
	Inputs  []int  `toml:"inputs"`  // Preset INP values, used instead of Input.
	Lang    string `toml:"lang"`    // Message language, empty for the system locale.
}

// Default returns the configuration used without a file.
func Default() *Config {
	return &Config{
		Input:  "-",
		Output: "-",
	}
}

// Load reads a configuration file over the defaults.
func Load(path string) (*Config, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	cfg, err := Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes configuration text over the defaults.
// Keys that match no Config field are an error.
func Parse(text string) (*Config, error) {
	cfg := Default()

	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown keys %v", undecoded)
	}

	return cfg, nil
}
