package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Scale    int     `json:"scale"`
	TPS      int     `json:"tps"`
	GPS      int     `json:"gps"`
	Prob     float64 `json:"prob"`
	Seed     int64   `json:"seed"`
	ShowMenu bool    `json:"show_menu"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    800,
		Height:   600,
		Scale:    10,
		TPS:      60,
		Prob:     0.2,
		Seed:     42,
		ShowMenu: true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second while running (0 = one per frame)")
	fs.Float64Var(&c.Prob, "prob", c.Prob, "probability a cell starts alive when randomising")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomising the board")
	fs.BoolVar(&c.ShowMenu, "menu", c.ShowMenu, "show the help menu at start")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file; explicit flags take precedence")
}

// Resolve loads c.File, if set, and then re-applies any flags that were set
// explicitly on fs so they override the file. It validates the result.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.File != "" {
		set := map[string]string{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })

		loaded, err := LoadConfig(c.File)
		if err != nil {
			return err
		}
		file := c.File
		*c = *loaded
		c.File = file
		for name, v := range set {
			if err := fs.Set(name, v); err != nil {
				return errors.Wrapf(err, "[Resolve] failed to re-apply flag -%s", name)
			}
		}
	}
	return c.Validate()
}

// LoadConfig reads a JSON file on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks that the configuration describes a usable grid.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Errorf("scale %d must be positive", c.Scale)
	case c.Scale > c.Width || c.Scale > c.Height:
		return errors.Errorf("scale %d does not fit a %dx%d window", c.Scale, c.Width, c.Height)
	case c.Prob < 0 || c.Prob > 1:
		return errors.Errorf("probability %v must be within [0,1]", c.Prob)
	case c.TPS <= 0:
		return errors.Errorf("tps %d must be positive", c.TPS)
	case c.GPS < 0:
		return errors.Errorf("gps %d must not be negative", c.GPS)
	}
	return nil
}

// Grid returns the board dimensions that fit the window.
func (c *Config) Grid() (rows, cols int) {
	return c.Height / c.Scale, c.Width / c.Scale
}
