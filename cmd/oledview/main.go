// Command oledview renders and exports SSD1306 128x64 framebuffer dumps.
//
// Input is a text dump in any mix of the usual notations (C arrays, comma or
// space separated hex, decimal), read from a file or from stdin:
//
//	oledview png frame.txt -o frame.png --scale 8 --grid
//	oledview bin frame.txt -o frame.bin
//	xclip -o | oledview show
//	oledview batch -d out/ dumps/*.txt
//
// Defaults come from .env.local and .env in the working directory
// (OLEDVIEW_SCALE, OLEDVIEW_INVERT, OLEDVIEW_GRID, OLEDVIEW_BIT_ORDER,
// OLEDVIEW_PNG_NAME, OLEDVIEW_BIN_NAME); flags override them.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("oledview: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "oledview",
		Short:         "Render and export SSD1306 128x64 framebuffer dumps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringSliceVar(&a.envFiles, "env", nil, "env files to load (default .env.local,.env)")
	f.BoolVar(&a.invert, "invert", false, "invert pixels")
	f.BoolVar(&a.grid, "grid", false, "overlay the 8x8 page grid")
	f.IntVar(&a.scale, "scale", 4, "integer upscale factor for images")
	f.StringVar(&a.order, "bit-order", "lsb", "bit mapped to the top row of a page: lsb or msb")

	root.AddCommand(
		a.pngCmd(),
		a.binCmd(),
		a.showCmd(),
		a.statsCmd(),
		a.decodeCmd(),
		a.batchCmd(),
	)
	return root
}
