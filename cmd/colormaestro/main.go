// colormaestro - A colour palette generator
//
// colormaestro turns one base colour into harmonic, monochromatic,
// accessible or UI palettes and renders them for the terminal, the web
// and image files.
package main

import (
	"os"

	"github.com/jmylchreest/colormaestro/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
