// Package config loads dial settings from TOML files and environment
// variables. Files are optional: a missing file yields the defaults
// rather than an error, so hosts can ship without any configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dialware/radial"
	"github.com/dialware/radial/input"
)

// Validation errors.
var (
	ErrEmptyRange       = errors.New("config: minimum must be less than maximum")
	ErrBadIncrement     = errors.New("config: increments must be positive")
	ErrBadLineWidth     = errors.New("config: line width must be positive")
	ErrBadRepeatTiming  = errors.New("config: repeat timing must be positive")
	ErrUnknownFormatter = errors.New("config: unknown formatter")
)

// Formatter names accepted in the format field.
const (
	FormatDecimal = "decimal"
	FormatDegrees = "degrees"
	FormatRadians = "radians"
)

// Config holds the loadable dial settings.
type Config struct {
	Value   float64 `toml:"value"`
	Minimum float64 `toml:"minimum"`
	Maximum float64 `toml:"maximum"`

	UnitIncrement  int `toml:"unit_increment"`
	BlockIncrement int `toml:"block_increment"`

	UnitTicks  bool `toml:"unit_ticks"`
	BlockTicks bool `toml:"block_ticks"`
	ShowAxis   bool `toml:"show_axis"`
	ShowText   bool `toml:"show_text"`

	LineWidth float64 `toml:"line_width"`

	// Format selects a built-in formatter name, or is ignored when
	// FormatScript is set.
	Format string `toml:"format"`

	// FormatScript is a path to a Lua script defining format(value).
	FormatScript string `toml:"format_script"`

	RepeatDelayMS    int `toml:"repeat_delay_ms"`
	RepeatIntervalMS int `toml:"repeat_interval_ms"`
}

// Default returns the stock configuration: a degree dial over [0, 360).
func Default() Config {
	return Config{
		Value:            0,
		Minimum:          0,
		Maximum:          360,
		UnitIncrement:    radial.DefaultUnitIncrement,
		BlockIncrement:   radial.DefaultBlockIncrement,
		UnitTicks:        false,
		BlockTicks:       true,
		ShowAxis:         false,
		ShowText:         true,
		LineWidth:        1.5,
		Format:           FormatDegrees,
		RepeatDelayMS:    int(input.DefaultRepeatDelay / time.Millisecond),
		RepeatIntervalMS: int(input.DefaultRepeatInterval / time.Millisecond),
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.Minimum >= c.Maximum {
		return ErrEmptyRange
	}
	if c.UnitIncrement <= 0 || c.BlockIncrement <= 0 {
		return ErrBadIncrement
	}
	if c.LineWidth <= 0 {
		return ErrBadLineWidth
	}
	if c.RepeatDelayMS <= 0 || c.RepeatIntervalMS <= 0 {
		return ErrBadRepeatTiming
	}
	if c.FormatScript == "" {
		switch c.Format {
		case FormatDecimal, FormatDegrees, FormatRadians:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownFormatter, c.Format)
		}
	}
	return nil
}

// Ticks returns the tick mask described by the tick flags.
func (c Config) Ticks() radial.TickMask {
	m := radial.TickNone
	if c.UnitTicks {
		m = m.With(radial.TickUnit)
	}
	if c.BlockTicks {
		m = m.With(radial.TickBlock)
	}
	return m
}

// Formatter returns the built-in formatter named by the format field.
// Script formatters are the caller's job; this falls back to decimal.
func (c Config) Formatter() radial.Formatter {
	switch c.Format {
	case FormatDegrees:
		return radial.DegreeFormatter
	case FormatRadians:
		return radial.RadianFormatter
	default:
		return radial.DecimalFormatter
	}
}

// Controller returns the input controller configuration.
func (c Config) Controller() input.Config {
	return input.Config{
		RepeatDelay:    time.Duration(c.RepeatDelayMS) * time.Millisecond,
		RepeatInterval: time.Duration(c.RepeatIntervalMS) * time.Millisecond,
	}
}

// Slider builds a slider from the configuration. The format script, if
// any, is not applied here.
func (c Config) Slider() (*radial.Slider, error) {
	s, err := radial.New(c.Value, c.Minimum, c.Maximum)
	if err != nil {
		return nil, err
	}
	s.SetUnitIncrement(c.UnitIncrement)
	s.SetBlockIncrement(c.BlockIncrement)
	s.SetTicks(c.Ticks())
	s.SetAxisVisible(c.ShowAxis)
	s.SetTextVisible(c.ShowText)
	s.SetLineWidth(c.LineWidth)
	s.SetFormatter(c.Formatter())
	return s, nil
}

// FileSystem abstracts file reads so loading can be tested in memory.
type FileSystem interface {
	fs.FS
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem on the real file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) { return os.Open(name) }

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// Loader reads configuration from a TOML file.
type Loader struct {
	fs   FileSystem
	path string
}

// NewLoader creates a loader for the given path.
func NewLoader(path string) *Loader {
	return &Loader{fs: OSFS{}, path: path}
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fsys FileSystem, path string) *Loader {
	return &Loader{fs: fsys, path: path}
}

// Load reads the configured file on top of the defaults. A missing file
// is not an error; the defaults come back unchanged.
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", l.path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: l.path, Message: err.Error(), Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFromReader reads configuration from a reader on top of the defaults.
func (l *Loader) LoadFromReader(r io.Reader) (Config, error) {
	cfg := Default()

	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: "<reader>", Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }
