// Package config holds the start-up settings of astarviz: board size, cell
// size on screen, key bindings, animation delay and logging.
//
// Settings come from Default, optionally overlaid by a YAML file (Load),
// and are checked by Validate before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultGridSize   = 50
	DefaultCellWidth  = 2
	DefaultCellHeight = 1
	DefaultRunKey     = " "
	DefaultClearKey   = "c"
	DefaultStepDelay  = 5 * time.Millisecond
	DefaultLogLevel   = "info"

	// MaxGridSize bounds the board so scores stay far from overflow and the
	// board fits a large terminal.
	MaxGridSize = 512
)

// Config is the complete set of start-up settings.
type Config struct {
	// GridSize is the board dimension N (N×N cells), fixed for the run.
	GridSize int `yaml:"grid_size"`
	// CellWidth and CellHeight give the on-screen size of one cell in
	// terminal columns and rows.
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	// RunKey starts a search; ClearKey wipes the board. Single characters.
	RunKey   string `yaml:"run_key"`
	ClearKey string `yaml:"clear_key"`
	// StepDelay is slept after every animation frame of a search.
	StepDelay time.Duration `yaml:"step_delay"`
	// LogFile receives the log; empty discards it.
	LogFile string `yaml:"log_file"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GridSize:   DefaultGridSize,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		RunKey:     DefaultRunKey,
		ClearKey:   DefaultClearKey,
		StepDelay:  DefaultStepDelay,
		LogLevel:   DefaultLogLevel,
	}
}

// Load reads the YAML file at path over Default. Keys absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, leaving fields absent from data untouched.
// Unknown keys are rejected; step_delay takes Go duration syntax ("5ms").
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.GridSize < 1 || c.GridSize > MaxGridSize:
		return fmt.Errorf("%w: grid_size %d not in [1,%d]", ErrInvalidConfig, c.GridSize, MaxGridSize)
	case c.CellWidth < 1:
		return fmt.Errorf("%w: cell_width %d < 1", ErrInvalidConfig, c.CellWidth)
	case c.CellHeight < 1:
		return fmt.Errorf("%w: cell_height %d < 1", ErrInvalidConfig, c.CellHeight)
	case utf8.RuneCountInString(c.RunKey) != 1:
		return fmt.Errorf("%w: run_key %q must be one character", ErrInvalidConfig, c.RunKey)
	case utf8.RuneCountInString(c.ClearKey) != 1:
		return fmt.Errorf("%w: clear_key %q must be one character", ErrInvalidConfig, c.ClearKey)
	case c.RunKey == c.ClearKey:
		return fmt.Errorf("%w: run_key and clear_key are both %q", ErrInvalidConfig, c.RunKey)
	case c.StepDelay < 0:
		return fmt.Errorf("%w: step_delay %v is negative", ErrInvalidConfig, c.StepDelay)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// RunRune returns RunKey as a rune. Only meaningful after Validate.
func (c Config) RunRune() rune { r, _ := utf8.DecodeRuneInString(c.RunKey); return r }

// ClearRune returns ClearKey as a rune. Only meaningful after Validate.
func (c Config) ClearRune() rune { r, _ := utf8.DecodeRuneInString(c.ClearKey); return r }
