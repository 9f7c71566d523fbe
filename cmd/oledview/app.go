package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/flavioheleno/oledbuf"
	"github.com/flavioheleno/oledbuf/internal/config"
	"github.com/flavioheleno/oledbuf/mono"
	"github.com/flavioheleno/oledbuf/raster"
	"github.com/spf13/cobra"
)

// app carries the flag values and the resolved configuration.
type app struct {
	envFiles []string
	invert   bool
	grid     bool
	scale    int
	order    string

	cfg *config.Config
}

// configure loads the env configuration and applies the flags that were set
// explicitly on the command line.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("invert") {
		cfg.Invert = a.invert
	}
	if f.Changed("grid") {
		cfg.Grid = a.grid
	}
	if f.Changed("scale") {
		if a.scale < 1 {
			return fmt.Errorf("--scale must be a positive integer, got %d", a.scale)
		}
		cfg.Scale = a.scale
	}
	if f.Changed("bit-order") {
		o, err := oledbuf.ParseBitOrder(a.order)
		if err != nil {
			return err
		}
		cfg.Order = o
	}
	a.cfg = cfg
	return nil
}

func (a *app) renderOptions() raster.Options {
	return raster.Options{
		Scale:  a.cfg.Scale,
		Invert: a.cfg.Invert,
		Grid:   a.cfg.Grid,
	}
}

// openInput returns the named file, or stdin for "" and "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(name)
}

func inputName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// readBuffer parses the text dump named by args (stdin by default).
func readBuffer(cmd *cobra.Command, args []string) (oledbuf.Buffer, oledbuf.Stats, error) {
	r, err := openInput(cmd, inputName(args))
	if err != nil {
		return oledbuf.Buffer{}, oledbuf.Stats{}, err
	}
	defer r.Close()

	text, err := io.ReadAll(r)
	if err != nil {
		return oledbuf.Buffer{}, oledbuf.Stats{}, err
	}
	b, st := oledbuf.ParseStats(string(text))
	return b, st, nil
}

// writeFile creates name and hands it to write, reporting the first error.
func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

func (a *app) writePNG(name string, g *mono.Grid) error {
	img := raster.Render(g, a.renderOptions())
	return writeFile(name, func(w io.Writer) error {
		return raster.WritePNG(w, img)
	})
}

func (a *app) writeBIN(name string, b oledbuf.Buffer) error {
	return writeFile(name, func(w io.Writer) error {
		return raster.WriteBIN(w, b)
	})
}

var errWrongSize = errors.New("raw dump must be exactly 1024 bytes")
