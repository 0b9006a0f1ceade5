package config

import (
	"racoon-gps/rgtools/daynight"
	"racoon-gps/rgtools/render"

	"github.com/github/go-config"
)

// Config holds application configuration, overridable from the environment.
type Config struct {
	DayStart string `config:"10:00,env=RACOON_DAY_START"`
	DayEnd   string `config:"18:00,env=RACOON_DAY_END"`

	TileURL     string `config:"https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png,env=RACOON_TILE_URL"`
	Attribution string `config:"&copy; OpenStreetMap contributors,env=RACOON_TILE_ATTRIBUTION"`

	window daynight.Window
}

// Load parses configuration from the environment and places it in a newly
// allocated Config struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := config.Load(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		DayStart:    "10:00",
		DayEnd:      "18:00",
		TileURL:     render.DefaultTileURL,
		Attribution: render.DefaultAttribution,
		window:      daynight.DefaultWindow,
	}
}

// Window returns the day band parsed from DayStart and DayEnd
func (c *Config) Window() daynight.Window {
	return c.window
}

// NewMap creates the map settings for the given title
func (c *Config) NewMap(title string) *render.Map {
	m := render.NewMap(title)
	if c.TileURL != "" {
		m.TileURL = c.TileURL
	}
	if c.Attribution != "" {
		m.Attribution = c.Attribution
	}
	return m
}

func (c *Config) validate() error {
	w, err := daynight.ParseWindow(c.DayStart, c.DayEnd)
	if err != nil {
		return err
	}
	c.window = w
	return nil
}
