package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnv.
const (
	EnvValue          = "RADIAL_VALUE"
	EnvMinimum        = "RADIAL_MINIMUM"
	EnvMaximum        = "RADIAL_MAXIMUM"
	EnvUnitIncrement  = "RADIAL_UNIT_INCREMENT"
	EnvBlockIncrement = "RADIAL_BLOCK_INCREMENT"
	EnvUnitTicks      = "RADIAL_UNIT_TICKS"
	EnvBlockTicks     = "RADIAL_BLOCK_TICKS"
	EnvShowAxis       = "RADIAL_SHOW_AXIS"
	EnvShowText       = "RADIAL_SHOW_TEXT"
	EnvLineWidth      = "RADIAL_LINE_WIDTH"
	EnvFormat         = "RADIAL_FORMAT"
	EnvFormatScript   = "RADIAL_FORMAT_SCRIPT"
	EnvRepeatDelay    = "RADIAL_REPEAT_DELAY_MS"
	EnvRepeatInterval = "RADIAL_REPEAT_INTERVAL_MS"
)

// ApplyEnv overlays environment variables onto the configuration.
// Variables win over file values; unset variables leave fields alone.
func ApplyEnv(cfg Config) (Config, error) {
	var err error

	if cfg.Value, err = envFloat(EnvValue, cfg.Value); err != nil {
		return cfg, err
	}
	if cfg.Minimum, err = envFloat(EnvMinimum, cfg.Minimum); err != nil {
		return cfg, err
	}
	if cfg.Maximum, err = envFloat(EnvMaximum, cfg.Maximum); err != nil {
		return cfg, err
	}
	if cfg.UnitIncrement, err = envInt(EnvUnitIncrement, cfg.UnitIncrement); err != nil {
		return cfg, err
	}
	if cfg.BlockIncrement, err = envInt(EnvBlockIncrement, cfg.BlockIncrement); err != nil {
		return cfg, err
	}
	if cfg.UnitTicks, err = envBool(EnvUnitTicks, cfg.UnitTicks); err != nil {
		return cfg, err
	}
	if cfg.BlockTicks, err = envBool(EnvBlockTicks, cfg.BlockTicks); err != nil {
		return cfg, err
	}
	if cfg.ShowAxis, err = envBool(EnvShowAxis, cfg.ShowAxis); err != nil {
		return cfg, err
	}
	if cfg.ShowText, err = envBool(EnvShowText, cfg.ShowText); err != nil {
		return cfg, err
	}
	if cfg.LineWidth, err = envFloat(EnvLineWidth, cfg.LineWidth); err != nil {
		return cfg, err
	}
	if v, ok := os.LookupEnv(EnvFormat); ok {
		cfg.Format = v
	}
	if v, ok := os.LookupEnv(EnvFormatScript); ok {
		cfg.FormatScript = v
	}
	if cfg.RepeatDelayMS, err = envInt(EnvRepeatDelay, cfg.RepeatDelayMS); err != nil {
		return cfg, err
	}
	if cfg.RepeatIntervalMS, err = envInt(EnvRepeatInterval, cfg.RepeatIntervalMS); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return i, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
