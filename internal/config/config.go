// Package config loads OttoBrew settings from a YAML file and the environment.
//
// Precedence, lowest to highest: built-in defaults, the config file,
// OTTOBREW_* environment variables. Command-line flags are applied on top by
// the caller. The file is only ever read.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/ottobrew/internal/domain"
	"github.com/hammamikhairi/ottobrew/internal/logger"
)

// Env var names.
const (
	EnvConfig   = "OTTOBREW_CONFIG"
	EnvCoffee   = "OTTOBREW_COFFEE"
	EnvRatio    = "OTTOBREW_RATIO"
	EnvTaste    = "OTTOBREW_TASTE"
	EnvStrength = "OTTOBREW_STRENGTH"
	EnvLogLevel = "OTTOBREW_LOG_LEVEL"
)

// DefaultPath is where the config file is looked up when none is given.
const DefaultPath = "ottobrew.yaml"

// Config is the full set of settings.
type Config struct {
	Defaults Brew     `yaml:"defaults"`
	Timer    Timer    `yaml:"timer"`
	Log      Log      `yaml:"log"`
	Presets  []Preset `yaml:"presets"`
}

// Brew holds brew parameters in their file form.
type Brew struct {
	Coffee   float64 `yaml:"coffee"`
	Ratio    int     `yaml:"ratio"`
	Taste    string  `yaml:"taste"`
	Strength string  `yaml:"strength"`
}

// Timer holds brew timer settings.
type Timer struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Preset is a user-declared preset.
type Preset struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Brew        `yaml:",inline"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults: Brew{Coffee: 20, Ratio: 15, Taste: "standard", Strength: "strong"},
		Timer:    Timer{TickInterval: 100 * time.Millisecond},
		Log:      Log{Level: "normal", File: ".ottobrew-logs/ottobrew.log"},
	}
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. An empty path falls back to $OTTOBREW_CONFIG and
// then DefaultPath; a missing file is not an error.
func Load(path string, log *logger.Logger) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("no config file at %s, using defaults", path)
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
		log.Info("loaded config from %s (%d presets)", path, len(cfg.Presets))
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvCoffee); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvCoffee, v, domain.ErrInvalidCoffee)
		}
		c.Defaults.Coffee = f
	}
	if v := os.Getenv(EnvRatio); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvRatio, v, domain.ErrInvalidRatio)
		}
		c.Defaults.Ratio = n
	}
	if v := os.Getenv(EnvTaste); v != "" {
		c.Defaults.Taste = v
	}
	if v := os.Getenv(EnvStrength); v != "" {
		c.Defaults.Strength = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks defaults, presets and the log level.
func (c Config) Validate() error {
	if _, err := c.Defaults.Params(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for i, p := range c.Presets {
		if p.ID == "" {
			return fmt.Errorf("preset #%d: missing id", i+1)
		}
		if _, err := p.Params(); err != nil {
			return fmt.Errorf("preset %q: %w", p.ID, err)
		}
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.Timer.TickInterval < 0 {
		return fmt.Errorf("timer: negative tick interval %s", c.Timer.TickInterval)
	}
	return nil
}

// Params converts the file form to BrewParameters, rejecting values outside
// the supported ranges. Empty taste and strength mean standard and strong.
func (b Brew) Params() (domain.BrewParameters, error) {
	if b.Taste == "" {
		b.Taste = domain.TasteStandard.String()
	}
	if b.Strength == "" {
		b.Strength = domain.StrengthStrong.String()
	}
	if b.Coffee < domain.MinCoffeeGrams || b.Coffee > domain.MaxCoffeeGrams {
		return domain.BrewParameters{}, fmt.Errorf("coffee %.1fg: %w", b.Coffee, domain.ErrInvalidCoffee)
	}
	if b.Ratio < domain.MinRatio || b.Ratio > domain.MaxRatio {
		return domain.BrewParameters{}, fmt.Errorf("ratio 1:%d: %w", b.Ratio, domain.ErrInvalidRatio)
	}
	taste, err := domain.TasteFromString(b.Taste)
	if err != nil {
		return domain.BrewParameters{}, fmt.Errorf("taste %q: %w", b.Taste, err)
	}
	strength, err := domain.StrengthFromString(b.Strength)
	if err != nil {
		return domain.BrewParameters{}, fmt.Errorf("strength %q: %w", b.Strength, err)
	}
	return domain.BrewParameters{
		CoffeeGrams: b.Coffee,
		Ratio:       b.Ratio,
		Taste:       taste,
		Strength:    strength,
	}, nil
}

// DomainPresets converts the declared presets. Call after Validate.
func (c Config) DomainPresets() []domain.Preset {
	out := make([]domain.Preset, 0, len(c.Presets))
	for _, p := range c.Presets {
		params, err := p.Params()
		if err != nil {
			continue
		}
		out = append(out, domain.Preset{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Params:      params,
		})
	}
	return out
}
