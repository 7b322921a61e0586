// Package config loads run settings for the backlot CLI from flags,
// BACKLOT_* environment variables, and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "BACKLOT"

// Config is one run of the game.
type Config struct {
	Seed       int64     `mapstructure:"seed" yaml:"seed"` // 0 draws a fresh seed
	Films      int       `mapstructure:"films" yaml:"films"`
	Reputation int       `mapstructure:"reputation" yaml:"reputation"`
	Treasury   int       `mapstructure:"treasury" yaml:"treasury"`
	LogLevel   string    `mapstructure:"log_level" yaml:"log_level"`
	Archive    string    `mapstructure:"archive" yaml:"archive"` // SQLite run archive; empty disables
	Autopilot  Autopilot `mapstructure:"autopilot" yaml:"autopilot"`
}

// Autopilot tunes the built-in player.
type Autopilot struct {
	AcceptRate float64 `mapstructure:"accept_rate" yaml:"accept_rate"`
	BluffRate  float64 `mapstructure:"bluff_rate" yaml:"bluff_rate"`
	LoyalRate  float64 `mapstructure:"loyal_rate" yaml:"loyal_rate"`
	HotRate    float64 `mapstructure:"hot_rate" yaml:"hot_rate"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Default returns the standard settings.
func Default() Config {
	return Config{
		Films:      8,
		Reputation: 35,
		Treasury:   3000,
		LogLevel:   "info",
		Autopilot: Autopilot{
			AcceptRate: 0.5,
			BluffRate:  0.2,
			LoyalRate:  0.6,
			HotRate:    0.6,
		},
	}
}

// SetDefaults registers Default on v so every key is known to viper,
// which AutomaticEnv needs to resolve nested keys.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("seed", d.Seed)
	v.SetDefault("films", d.Films)
	v.SetDefault("reputation", d.Reputation)
	v.SetDefault("treasury", d.Treasury)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("archive", d.Archive)
	v.SetDefault("autopilot.accept_rate", d.Autopilot.AcceptRate)
	v.SetDefault("autopilot.bluff_rate", d.Autopilot.BluffRate)
	v.SetDefault("autopilot.loyal_rate", d.Autopilot.LoyalRate)
	v.SetDefault("autopilot.hot_rate", d.Autopilot.HotRate)
}

// Bind wires the environment into v. BACKLOT_AUTOPILOT_BLUFF_RATE sets
// autopilot.bluff_rate.
func Bind(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads path into v when path is set, then decodes and validates.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	Bind(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.Films < 0:
		return fmt.Errorf("%w: films %d must not be negative", ErrInvalid, c.Films)
	case c.Reputation < 0 || c.Reputation > 100:
		return fmt.Errorf("%w: reputation %d outside 0-100", ErrInvalid, c.Reputation)
	case c.Treasury < 0:
		return fmt.Errorf("%w: treasury %d must not be negative", ErrInvalid, c.Treasury)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for name, r := range map[string]float64{
		"accept_rate": c.Autopilot.AcceptRate,
		"bluff_rate":  c.Autopilot.BluffRate,
		"loyal_rate":  c.Autopilot.LoyalRate,
		"hot_rate":    c.Autopilot.HotRate,
	} {
		if r < 0 || r > 1 {
			return fmt.Errorf("%w: autopilot.%s %.2f outside 0-1", ErrInvalid, name, r)
		}
	}
	return nil
}

// ParseLevel maps a log level name to slog.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, name)
	}
	return lvl, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
