package config

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/dialware/radial"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Minimum != 0 || cfg.Maximum != 360 {
		t.Errorf("default range = [%v, %v), want [0, 360)", cfg.Minimum, cfg.Maximum)
	}
	if cfg.UnitIncrement != 1 || cfg.BlockIncrement != 45 {
		t.Errorf("default increments = %d/%d, want 1/45", cfg.UnitIncrement, cfg.BlockIncrement)
	}
	if cfg.UnitTicks || !cfg.BlockTicks {
		t.Error("default ticks should be block only")
	}
	if cfg.ShowAxis || !cfg.ShowText {
		t.Error("default visibility should be text only")
	}
	if cfg.LineWidth != 1.5 {
		t.Errorf("default line width = %v, want 1.5", cfg.LineWidth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{"empty range", func(c *Config) { c.Minimum = 10; c.Maximum = 10 }, ErrEmptyRange},
		{"inverted range", func(c *Config) { c.Minimum = 10; c.Maximum = 5 }, ErrEmptyRange},
		{"zero unit increment", func(c *Config) { c.UnitIncrement = 0 }, ErrBadIncrement},
		{"negative block increment", func(c *Config) { c.BlockIncrement = -1 }, ErrBadIncrement},
		{"zero line width", func(c *Config) { c.LineWidth = 0 }, ErrBadLineWidth},
		{"zero repeat delay", func(c *Config) { c.RepeatDelayMS = 0 }, ErrBadRepeatTiming},
		{"unknown formatter", func(c *Config) { c.Format = "hex" }, ErrUnknownFormatter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.expected) {
				t.Errorf("Validate() = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestScriptFormatterSkipsNameValidation(t *testing.T) {
	cfg := Default()
	cfg.Format = ""
	cfg.FormatScript = "format.lua"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with script formatter = %v, want nil", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	l := NewLoaderWithFS(fstest.MapFS{}, "radial.toml")

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() of missing file returned error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() of missing file = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"radial.toml": &fstest.MapFile{Data: []byte(`
value = 90.0
unit_increment = 5
unit_ticks = true
format = "radians"
`)},
	}
	l := NewLoaderWithFS(fsys, "radial.toml")

	cfg, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Value != 90 {
		t.Errorf("value = %v, want 90", cfg.Value)
	}
	if cfg.UnitIncrement != 5 {
		t.Errorf("unit increment = %d, want 5", cfg.UnitIncrement)
	}
	if !cfg.UnitTicks {
		t.Error("unit ticks not set")
	}
	if cfg.Format != FormatRadians {
		t.Errorf("format = %q, want radians", cfg.Format)
	}
	// Fields absent from the file keep their defaults.
	if cfg.BlockIncrement != 45 {
		t.Errorf("block increment = %d, want default 45", cfg.BlockIncrement)
	}
	if !cfg.BlockTicks {
		t.Error("block ticks lost their default")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	fsys := fstest.MapFS{
		"radial.toml": &fstest.MapFile{Data: []byte("value = [broken")},
	}
	l := NewLoaderWithFS(fsys, "radial.toml")

	_, err := l.Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if parseErr.Path != "radial.toml" {
		t.Errorf("parse error path = %q", parseErr.Path)
	}
}

func TestLoadInvalidValuesRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"radial.toml": &fstest.MapFile{Data: []byte("minimum = 100.0\nmaximum = 50.0")},
	}
	l := NewLoaderWithFS(fsys, "radial.toml")

	if _, err := l.Load(); !errors.Is(err, ErrEmptyRange) {
		t.Errorf("Load() error = %v, want ErrEmptyRange", err)
	}
}

func TestLoadFromReader(t *testing.T) {
	l := NewLoader("unused.toml")

	cfg, err := l.LoadFromReader(strings.NewReader(`block_increment = 30`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BlockIncrement != 30 {
		t.Errorf("block increment = %d, want 30", cfg.BlockIncrement)
	}
}

func TestTicksMask(t *testing.T) {
	cfg := Default()
	if got := cfg.Ticks(); got != radial.TickBlock {
		t.Errorf("default Ticks() = %v, want block", got)
	}

	cfg.UnitTicks = true
	cfg.BlockTicks = false
	if got := cfg.Ticks(); got != radial.TickUnit {
		t.Errorf("Ticks() = %v, want unit", got)
	}
}

func TestFormatterSelection(t *testing.T) {
	cfg := Default()

	cfg.Format = FormatDegrees
	if got := cfg.Formatter().Format(90); got != "90°" {
		t.Errorf("degrees formatter produced %q", got)
	}

	cfg.Format = FormatDecimal
	if got := cfg.Formatter().Format(90); got != "90" {
		t.Errorf("decimal formatter produced %q", got)
	}
}

func TestControllerConfig(t *testing.T) {
	cfg := Default()
	cfg.RepeatDelayMS = 100
	cfg.RepeatIntervalMS = 20

	cc := cfg.Controller()
	if cc.RepeatDelay != 100*time.Millisecond {
		t.Errorf("repeat delay = %v", cc.RepeatDelay)
	}
	if cc.RepeatInterval != 20*time.Millisecond {
		t.Errorf("repeat interval = %v", cc.RepeatInterval)
	}
}

func TestSliderFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Value = 45
	cfg.UnitIncrement = 2
	cfg.ShowAxis = true

	s, err := cfg.Slider()
	if err != nil {
		t.Fatal(err)
	}
	if s.Value() != 45 {
		t.Errorf("slider value = %v, want 45", s.Value())
	}
	if s.UnitIncrement() != 2 {
		t.Errorf("slider unit increment = %d, want 2", s.UnitIncrement())
	}
	if !s.AxisVisible() {
		t.Error("slider axis not visible")
	}
	if got := s.Text(); got != "45°" {
		t.Errorf("slider text = %q, want 45°", got)
	}
}

func TestSliderFromInvalidRange(t *testing.T) {
	cfg := Default()
	cfg.Minimum = 5
	cfg.Maximum = 5

	if _, err := cfg.Slider(); err == nil {
		t.Error("Slider() accepted an empty range")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvValue, "123.5")
	t.Setenv(EnvUnitIncrement, "10")
	t.Setenv(EnvShowAxis, "true")
	t.Setenv(EnvFormat, "decimal")

	cfg, err := ApplyEnv(Default())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Value != 123.5 {
		t.Errorf("value = %v, want 123.5", cfg.Value)
	}
	if cfg.UnitIncrement != 10 {
		t.Errorf("unit increment = %d, want 10", cfg.UnitIncrement)
	}
	if !cfg.ShowAxis {
		t.Error("show axis not applied")
	}
	if cfg.Format != FormatDecimal {
		t.Errorf("format = %q", cfg.Format)
	}
	// Untouched fields keep their values.
	if cfg.BlockIncrement != 45 {
		t.Errorf("block increment = %d, want 45", cfg.BlockIncrement)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv(EnvValue, "not-a-number")

	if _, err := ApplyEnv(Default()); err == nil {
		t.Error("ApplyEnv accepted a non-numeric value")
	}
}
