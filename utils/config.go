package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

const (
	// DefaultMaxCells is the board size cap, 256x256 cells
	DefaultMaxCells = 256 * 256

	// DefaultOutputDir is the snapshot directory, relative to the working directory
	DefaultOutputDir = "lifegame_output"
)

// Config holds the tunables of a simulation run
type Config struct {
	OutputDir        string `json:"output_dir"`
	MaxCells         int    `json:"max_cells"`
	DeadSymbol       string `json:"dead_symbol"`
	AliveSymbol      string `json:"alive_symbol"`
	ConfirmThreshold int    `json:"confirm_threshold"`
	UseMemoryPool    bool   `json:"use_memory_pool"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		OutputDir:        DefaultOutputDir,
		MaxCells:         DefaultMaxCells,
		DeadSymbol:       "_",
		AliveSymbol:      "*",
		ConfirmThreshold: 20,
		UseMemoryPool:    true,
	}
}

// LoadConfig loads configuration from JSON file, missing keys keep their defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration can drive a run
func (c Config) Validate() error {
	switch {
	case c.OutputDir == "":
		return errors.New("output_dir must not be empty")
	case c.MaxCells <= 0:
		return errors.Errorf("max_cells must be positive, got %d", c.MaxCells)
	case len(c.DeadSymbol) != 1 || len(c.AliveSymbol) != 1:
		return errors.Errorf("cell symbols must be single bytes, got %q and %q", c.DeadSymbol, c.AliveSymbol)
	case c.DeadSymbol == c.AliveSymbol || isLineBreak(c.DeadSymbol) || isLineBreak(c.AliveSymbol):
		return errors.Errorf("cell symbols must be distinct and not line breaks, got %q and %q", c.DeadSymbol, c.AliveSymbol)
	case c.ConfirmThreshold < 0:
		return errors.Errorf("confirm_threshold must not be negative, got %d", c.ConfirmThreshold)
	}
	return nil
}

func isLineBreak(s string) bool {
	return s == "\n" || s == "\r"
}
