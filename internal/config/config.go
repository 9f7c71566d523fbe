// Package config loads oledview settings from env files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flavioheleno/oledbuf"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvScale    = "OLEDVIEW_SCALE"
	EnvInvert   = "OLEDVIEW_INVERT"
	EnvGrid     = "OLEDVIEW_GRID"
	EnvBitOrder = "OLEDVIEW_BIT_ORDER"
	EnvPNGName  = "OLEDVIEW_PNG_NAME"
	EnvBINName  = "OLEDVIEW_BIN_NAME"
)

// DefaultFiles are the env files Load reads when none are given, highest
// priority first.
var DefaultFiles = []string{".env.local", ".env"}

// Config holds the settings shared by all oledview commands.
type Config struct {
	Scale   int
	Invert  bool
	Grid    bool
	Order   oledbuf.BitOrder
	PNGName string
	BINName string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Scale:   4,
		Order:   oledbuf.LSBFirst,
		PNGName: "oled_128x64.png",
		BINName: "output.bin",
	}
}

// Load reads the given env files (DefaultFiles when none are given) and then
// the environment. Files that do not exist are skipped. Variables already set
// in the environment win over the files, and earlier files win over later
// ones.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = DefaultFiles
	}

	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the defaults and the current environment.
func FromEnv() (*Config, error) {
	c := Default()

	if v, ok := lookup(EnvScale); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvScale, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("config: %s: must be a positive integer, got %d", EnvScale, n)
		}
		c.Scale = n
	}

	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{EnvInvert, &c.Invert},
		{EnvGrid, &c.Grid},
	} {
		if v, ok := lookup(b.name); ok {
			on, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("config: %s: %w", b.name, err)
			}
			*b.dst = on
		}
	}

	if v, ok := lookup(EnvBitOrder); ok {
		o, err := oledbuf.ParseBitOrder(v)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvBitOrder, err)
		}
		c.Order = o
	}

	if v, ok := lookup(EnvPNGName); ok {
		c.PNGName = v
	}
	if v, ok := lookup(EnvBINName); ok {
		c.BINName = v
	}
	return c, nil
}

// lookup returns the value of an environment variable. Blank values count as
// unset, so an env file may list a key without giving it a value.
func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}
