// Package config loads chart settings from a file, ASTROCHART_* environment
// variables and built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix, e.g. ASTROCHART_HOUSE_SYSTEM.
const EnvPrefix = "ASTROCHART"

// LocationConfig is the observer location used for house cusps.
type LocationConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	Latitude  float64 `mapstructure:"latitude"`  // degrees, north positive
	Longitude float64 `mapstructure:"longitude"` // degrees, east positive
}

// ProviderConfig throttles calls made to the ephemeris provider.
// A zero RatePerSecond means unlimited.
type ProviderConfig struct {
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	Burst         int     `mapstructure:"burst"`
}

// Config holds chart settings. Names are kept as strings here and resolved
// to their enumerations by the caller.
type Config struct {
	Objects      []string       `mapstructure:"objects"`
	HouseSystem  string         `mapstructure:"house_system"`
	Location     LocationConfig `mapstructure:"location"`
	DignityTable string         `mapstructure:"dignity_table"`
	Provider     ProviderConfig `mapstructure:"provider"`
}

// Load reads path (any format viper understands) and applies environment
// overrides. An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("objects", []string{})
	v.SetDefault("house_system", "placidus")
	v.SetDefault("location.enabled", false)
	v.SetDefault("location.latitude", 0.0)
	v.SetDefault("location.longitude", 0.0)
	v.SetDefault("dignity_table", "")
	v.SetDefault("provider.rate_per_second", 0.0)
	v.SetDefault("provider.burst", 0)
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HouseSystem) == "" {
		cfg.HouseSystem = "placidus"
	}
	if cfg.Provider.RatePerSecond > 0 && cfg.Provider.Burst == 0 {
		cfg.Provider.Burst = 1
	}

	objects := cfg.Objects[:0]
	for _, o := range cfg.Objects {
		if o = strings.TrimSpace(o); o != "" {
			objects = append(objects, o)
		}
	}
	cfg.Objects = objects
}

func validate(cfg *Config) error {
	if cfg.Location.Enabled {
		if cfg.Location.Latitude < -90 || cfg.Location.Latitude > 90 {
			return fmt.Errorf("location.latitude %v out of range [-90, 90]", cfg.Location.Latitude)
		}
		if cfg.Location.Longitude < -180 || cfg.Location.Longitude > 180 {
			return fmt.Errorf("location.longitude %v out of range [-180, 180]", cfg.Location.Longitude)
		}
	}
	if cfg.Provider.RatePerSecond < 0 {
		return fmt.Errorf("provider.rate_per_second must not be negative, got %v", cfg.Provider.RatePerSecond)
	}
	if cfg.Provider.Burst < 0 {
		return fmt.Errorf("provider.burst must not be negative, got %d", cfg.Provider.Burst)
	}
	return nil
}
