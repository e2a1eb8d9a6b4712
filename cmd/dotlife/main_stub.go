//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of dotlife requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/dotlife` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless rendering use ./cmd/dotlife-snapshot.")
	os.Exit(2)
}
