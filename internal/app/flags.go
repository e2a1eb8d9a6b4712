package app

import (
	"flag"
	"strconv"

	"dotlife/internal/driver"
	"dotlife/internal/render"
)

// Config represents the command-line parameters shared by the commands.
type Config struct {
	Width  int
	Height int
	TPS    int
	Seed   int64

	Initializer  string
	Neighborhood string
	Speed        int
	Radius       int
	Margin       float64

	Background string
	Alive      string
	Dead       string
}

// NewConfig returns a Config populated with the default options.
func NewConfig() *Config {
	d := driver.DefaultOptions()
	return &Config{
		Width:        960,
		Height:       640,
		TPS:          60,
		Seed:         42,
		Initializer:  d.Initializer.String(),
		Neighborhood: d.Neighborhood.String(),
		Speed:        d.Speed,
		Radius:       d.Radius,
		Margin:       d.Margin,
		Background:   render.FormatColor(d.Background),
		Alive:        render.FormatColor(d.Alive),
		Dead:         render.FormatColor(d.Dead),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second of the event loop")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initializer")
	fs.StringVar(&c.Initializer, "initializer", c.Initializer,
		"starting pattern: blank, glider, horizontal-line, vertical-line, plus or random")
	fs.StringVar(&c.Neighborhood, "neighborhood", c.Neighborhood,
		"neighbor count: moore (8 surrounding cells) or inclusive (3x3 block)")
	fs.IntVar(&c.Speed, "speed", c.Speed, "speed from 0 (1000ms per generation) to 100 (50ms)")
	fs.IntVar(&c.Radius, "radius", c.Radius, "cell radius in pixels, 1 to 10")
	fs.Float64Var(&c.Margin, "margin", c.Margin, "space around each cell in pixels, 0.5 to 10 in 0.5 steps")
	fs.StringVar(&c.Background, "background", c.Background, "background color")
	fs.StringVar(&c.Alive, "alive", c.Alive, "live cell color")
	fs.StringVar(&c.Dead, "dead", c.Dead, "dead cell color")
}

// Map renders the option-related fields in driver.FromMap form.
func (c *Config) Map() map[string]string {
	return map[string]string{
		"initializer":  c.Initializer,
		"neighborhood": c.Neighborhood,
		"speed":        strconv.Itoa(c.Speed),
		"radius":       strconv.Itoa(c.Radius),
		"margin":       strconv.FormatFloat(c.Margin, 'f', -1, 64),
		"background":   c.Background,
		"alive":        c.Alive,
		"dead":         c.Dead,
		"seed":         strconv.FormatInt(c.Seed, 10),
	}
}

// Options converts the configuration into driver options.
func (c *Config) Options() driver.Options { return driver.FromMap(c.Map()) }
