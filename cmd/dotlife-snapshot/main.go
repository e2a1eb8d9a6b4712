// Command dotlife-snapshot runs the simulation without a window and writes
// PNG frames of the board.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/cli"
	"fortio.org/log"
	"golang.org/x/image/draw"

	"dotlife/internal/app"
	"dotlife/internal/driver"
	"dotlife/internal/render"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	os.Exit(Main())
}

func Main() int {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 100, "number of generations to run")
	every := flag.Int("every", 10, "write a frame every N generations (0: only the last)")
	out := flag.String("out", "frames", "output directory")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	cli.Main()

	surface := render.NewImageSurface(cfg.Width, cfg.Height)
	drv := driver.New(cfg.Options(), surface)
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.Warnf("Ignoring override %q, want key=value", kv)
			continue
		}
		if err := drv.SetParameter(key, value); err != nil {
			return log.FErrf("Override %q: %v", kv, err)
		}
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return log.FErrf("Creating %s: %v", *out, err)
	}

	st := drv.Status()
	log.Infof("Running %d generations on a %dx%d grid", *generations, st.Rows, st.Cols)
	if err := writeFrame(*out, 0, surface, drv.Options()); err != nil {
		return log.FErrf("%v", err)
	}
	for gen := 1; gen <= *generations; gen++ {
		res := drv.EvolveOnce()
		last := gen == *generations || res.LiveCount == 0
		if last || (*every > 0 && gen%*every == 0) {
			if err := writeFrame(*out, gen, surface, drv.Options()); err != nil {
				return log.FErrf("%v", err)
			}
		}
		if res.LiveCount == 0 {
			log.Infof("Extinct after %d generations", gen)
			break
		}
	}
	return 0
}

// writeFrame composites the cell canvas over the background color.
func writeFrame(dir string, gen int, s *render.ImageSurface, opts driver.Options) error {
	frame := compose(s, opts)
	path := filepath.Join(dir, fmt.Sprintf("gen-%05d.png", gen))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating frame: %w", err)
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	log.LogVf("Wrote %s", path)
	return f.Close()
}

func compose(s *render.ImageSurface, opts driver.Options) *image.RGBA {
	src := s.Image()
	frame := image.NewRGBA(src.Bounds())
	draw.Draw(frame, frame.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	draw.Draw(frame, frame.Bounds(), src, src.Bounds().Min, draw.Over)
	return frame
}
