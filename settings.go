package astrochart

import (
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"github.com/thurmanmarka/astrochart/internal/config"
)

// Settings are chart defaults read from a settings file and the
// environment. See LoadSettings.
type Settings struct {
	Objects     []Object
	HouseSystem HouseSystem
	Location    *Coordinates
	Dignity     DignityRule

	// ProviderRate limits provider calls per second; 0 means unlimited.
	ProviderRate  rate.Limit
	ProviderBurst int
}

// LoadSettings reads settings from path (YAML, TOML or JSON) with
// ASTROCHART_* environment overrides, e.g. ASTROCHART_HOUSE_SYSTEM=koch or
// ASTROCHART_LOCATION_LATITUDE=51.5. An empty path uses defaults and the
// environment only. A relative dignity_table path is resolved against the
// settings file's directory.
func LoadSettings(path string) (*Settings, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, invalidInput("load settings: %v", err)
	}

	s := &Settings{
		Dignity:       DefaultDignity,
		ProviderRate:  rate.Limit(cfg.Provider.RatePerSecond),
		ProviderBurst: cfg.Provider.Burst,
	}

	for _, name := range cfg.Objects {
		o, err := ParseObject(name)
		if err != nil {
			return nil, err
		}
		s.Objects = append(s.Objects, o)
	}

	if s.HouseSystem, err = ParseHouseSystem(cfg.HouseSystem); err != nil {
		return nil, err
	}

	if cfg.Location.Enabled {
		s.Location = &Coordinates{Lat: cfg.Location.Latitude, Lon: cfg.Location.Longitude}
	}

	if cfg.DignityTable != "" {
		tablePath := cfg.DignityTable
		if !filepath.IsAbs(tablePath) && path != "" {
			tablePath = filepath.Join(filepath.Dir(path), tablePath)
		}
		f, err := os.Open(tablePath)
		if err != nil {
			return nil, invalidInput("open dignity table: %v", err)
		}
		defer f.Close()

		if s.Dignity, err = LoadDignityTable(f); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Options converts s to chart options.
func (s *Settings) Options() []Option {
	opts := []Option{WithHouseSystem(s.HouseSystem)}
	if len(s.Objects) > 0 {
		opts = append(opts, WithObjects(s.Objects...))
	}
	if s.Location != nil {
		opts = append(opts, WithLocation(s.Location.Lat, s.Location.Lon))
	}
	return opts
}

// WrapProvider applies the configured rate limit to p.
func (s *Settings) WrapProvider(p Provider) Provider {
	if s.ProviderRate <= 0 {
		return p
	}
	burst := s.ProviderBurst
	if burst < 1 {
		burst = 1
	}
	return RateLimited(p, rate.NewLimiter(s.ProviderRate, burst))
}
