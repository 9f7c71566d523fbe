package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/flavioheleno/oledbuf"
	"github.com/flavioheleno/oledbuf/raster"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (a *app) pngCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "png [input]",
		Short: "Render a text dump to a PNG image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := readBuffer(cmd, args)
			if err != nil {
				return err
			}
			if out == "" {
				out = a.cfg.PNGName
			}
			if err := a.writePNG(out, oledbuf.Decode(b, a.cfg.Order)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default from OLEDVIEW_PNG_NAME)")
	return cmd
}

func (a *app) binCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "bin [input]",
		Short: "Convert a text dump to a raw 1024-byte framebuffer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := readBuffer(cmd, args)
			if err != nil {
				return err
			}
			if out == "-" {
				return raster.WriteBIN(cmd.OutOrStdout(), b)
			}
			if out == "" {
				out = a.cfg.BINName
			}
			if err := a.writeBIN(out, b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, oledbuf.BufferSize)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file, - for stdout (default from OLEDVIEW_BIN_NAME)")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "show [input]",
		Short: "Preview a text dump in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fd, tty := terminalFd(out)
			if !force && !tty {
				return errors.New("output is not a terminal (use --force to print anyway)")
			}
			if tty {
				if w, _, err := term.GetSize(int(fd)); err == nil && w < oledbuf.Width {
					log.Printf("terminal is %d columns wide, preview needs %d", w, oledbuf.Width)
				}
			}

			b, _, err := readBuffer(cmd, args)
			if err != nil {
				return err
			}
			return raster.Terminal(out, oledbuf.Decode(b, a.cfg.Order), a.cfg.Invert)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "print even when the output is not a terminal")
	return cmd
}

// terminalFd reports the descriptor behind w and whether it is a terminal.
// Writers that are not files never are.
func terminalFd(w io.Writer) (uintptr, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := f.Fd()
	return fd, isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [input]",
		Short: "Report how a text dump was parsed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, st, err := readBuffer(cmd, args)
			if err != nil {
				return err
			}
			lit := oledbuf.Decode(b, a.cfg.Order).Count()

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "tokens:   %d\n", st.Tokens)
			fmt.Fprintf(w, "accepted: %d\n", st.Accepted)
			fmt.Fprintf(w, "dropped:  %d\n", st.Dropped)
			fmt.Fprintf(w, "ignored:  %d\n", st.Ignored)
			fmt.Fprintf(w, "padded:   %d\n", st.Padded())
			fmt.Fprintf(w, "lit:      %d/%d\n", lit, oledbuf.Width*oledbuf.Height)
			return nil
		},
	}
}

func (a *app) decodeCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "decode <file.bin>",
		Short: "Render a raw 1024-byte framebuffer to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			raw, err := io.ReadAll(io.LimitReader(r, oledbuf.BufferSize+1))
			if err != nil {
				return err
			}
			if len(raw) != oledbuf.BufferSize {
				return fmt.Errorf("%s: %w", args[0], errWrongSize)
			}
			if out == "" {
				out = a.cfg.PNGName
			}
			if err := a.writePNG(out, oledbuf.DecodeBytes(raw, a.cfg.Order)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default from OLEDVIEW_PNG_NAME)")
	return cmd
}
