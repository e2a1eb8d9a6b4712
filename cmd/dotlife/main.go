//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"dotlife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cli.Main()

	opts := cfg.Options()
	game := app.New(opts, cfg.Width, cfg.Height)

	ebiten.SetWindowTitle("dotlife - " + opts.Initializer.String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Infof("Opening %dx%d window at %d tps", cfg.Width, cfg.Height, cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return log.FErrf("Window error: %v", err)
	}
	return 0
}
