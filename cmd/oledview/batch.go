package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/flavioheleno/oledbuf"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) batchCmd() *cobra.Command {
	var (
		dir  string
		jobs int
	)
	cmd := &cobra.Command{
		Use:   "batch <input>...",
		Short: "Convert many text dumps to PNG and BIN files in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			var g errgroup.Group
			g.SetLimit(jobs)
			for i, base := range outputBases(args) {
				in, base := args[i], base
				g.Go(func() error {
					return a.convert(in, filepath.Join(dir, base))
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %d files into %s\n", len(args), dir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "files converted at once")
	return cmd
}

// outputBases names the outputs of each input after its file name without
// the extension. Inputs that share a name get a -1, -2, ... suffix in argument
// order so that no two of them write the same files.
func outputBases(inputs []string) []string {
	bases := make([]string, len(inputs))
	for i, in := range inputs {
		bases[i] = strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	}
	taken := make(map[string]bool, len(bases))
	for _, b := range bases {
		taken[b] = true
	}

	used := make(map[string]bool, len(bases))
	for i, base := range bases {
		name := base
		for n := 1; used[name] || (name != base && taken[name]); n++ {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		used[name] = true
		bases[i] = name
	}
	return bases
}

// convert writes <prefix>.png and <prefix>.bin for one text dump.
func (a *app) convert(in, prefix string) error {
	text, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	b := oledbuf.Parse(string(text))

	if err := a.writePNG(prefix+".png", oledbuf.Decode(b, a.cfg.Order)); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if err := a.writeBIN(prefix+".bin", b); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	return nil
}
