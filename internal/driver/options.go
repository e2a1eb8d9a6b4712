package driver

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"fortio.org/log"

	"dotlife/internal/life"
	"dotlife/internal/render"
)

const (
	MinSpeed     = 0
	MaxSpeed     = 100
	DefaultSpeed = 93

	MinInterval = 50 * time.Millisecond
	MaxInterval = 1000 * time.Millisecond

	MinRadius     = 1
	MaxRadius     = 10
	DefaultRadius = 4

	MinMargin     = 0.5
	MaxMargin     = 10
	MarginStep    = 0.5
	DefaultMargin = 1
)

const (
	DefaultBackground = "#282828"
	DefaultAlive      = "#e00000"
	DefaultDead       = "#000000"
)

// speedMap[speed] is the tick interval for speed in [MinSpeed, MaxSpeed].
var speedMap = buildSpeedMap()

func buildSpeedMap() [MaxSpeed + 1]time.Duration {
	var m [MaxSpeed + 1]time.Duration
	step := float64(MaxInterval-MinInterval) / float64(time.Millisecond) / MaxSpeed
	for i := range m {
		ms := float64(MaxInterval/time.Millisecond) - math.Round(step*float64(i))
		m[i] = time.Duration(ms) * time.Millisecond
	}
	return m
}

// SpeedInterval maps a speed setting to the delay between generations.
func SpeedInterval(speed int) time.Duration {
	return speedMap[clampSpeed(speed)]
}

// Options holds the user-tunable simulation and appearance settings.
type Options struct {
	Initializer  life.Initializer
	Neighborhood life.Neighborhood

	Speed  int
	Radius int
	Margin float64

	Background color.RGBA
	Alive      color.RGBA
	Dead       color.RGBA

	Seed int64
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		Initializer:  life.Random,
		Neighborhood: life.Moore,
		Speed:        DefaultSpeed,
		Radius:       DefaultRadius,
		Margin:       DefaultMargin,
		Background:   mustColor(DefaultBackground),
		Alive:        mustColor(DefaultAlive),
		Dead:         mustColor(DefaultDead),
	}
}

func mustColor(s string) color.RGBA {
	c, err := render.ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromMap populates options from a string map (flag-style key/value pairs).
// Values that fail to parse keep their defaults.
func FromMap(cfg map[string]string) Options {
	o := DefaultOptions()
	if cfg == nil {
		return o
	}
	if v, ok := cfg["initializer"]; ok {
		in, known := life.ParseInitializer(v)
		if !known {
			log.Warnf("unknown initializer %q, using %s", v, in)
		}
		o.Initializer = in
	}
	if v, ok := cfg["neighborhood"]; ok {
		n, known := life.ParseNeighborhood(v)
		if !known {
			log.Warnf("unknown neighborhood %q, using %s", v, n)
		}
		o.Neighborhood = n
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			o.Speed = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			o.Radius = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			o.Margin = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			o.Seed = parsed
		}
	}
	for key, dst := range map[string]*color.RGBA{"background": &o.Background, "alive": &o.Alive, "dead": &o.Dead} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		c, err := render.ParseColor(v)
		if err != nil {
			log.Warnf("ignoring %s color: %v", key, err)
			continue
		}
		*dst = c
	}
	return o.Normalize()
}

// Normalize clamps every numeric option into its supported range and snaps
// the margin to half-pixel steps.
func (o Options) Normalize() Options {
	o.Speed = clampSpeed(o.Speed)
	o.Radius = clampRadius(o.Radius)
	o.Margin = clampMargin(o.Margin)
	return o
}

// Interval returns the delay between generations for the current speed.
func (o Options) Interval() time.Duration { return SpeedInterval(o.Speed) }

func clampSpeed(speed int) int { return min(max(speed, MinSpeed), MaxSpeed) }

func clampRadius(r int) int { return min(max(r, MinRadius), MaxRadius) }

func clampMargin(m float64) float64 {
	if math.IsNaN(m) {
		return DefaultMargin
	}
	m = math.Round(m/MarginStep) * MarginStep
	return math.Min(math.Max(m, MinMargin), MaxMargin)
}
