package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flavioheleno/oledbuf"
)

var allVars = []string{EnvScale, EnvInvert, EnvGrid, EnvBitOrder, EnvPNGName, EnvBINName}

// clearEnv unsets every variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
			} else {
				os.Unsetenv(k)
			}
		})
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if *c != *Default() {
		t.Errorf("FromEnv() = %+v, want defaults %+v", *c, *Default())
	}
	if c.Scale != 4 || c.Order != oledbuf.LSBFirst || c.PNGName != "oled_128x64.png" || c.BINName != "output.bin" {
		t.Errorf("unexpected defaults %+v", *c)
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvScale, "8")
	t.Setenv(EnvInvert, "true")
	t.Setenv(EnvGrid, "1")
	t.Setenv(EnvBitOrder, "msb")
	t.Setenv(EnvPNGName, "frame.png")
	t.Setenv(EnvBINName, "frame.bin")

	c, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Scale: 8, Invert: true, Grid: true, Order: oledbuf.MSBFirst, PNGName: "frame.png", BINName: "frame.bin"}
	if *c != want {
		t.Errorf("FromEnv() = %+v, want %+v", *c, want)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"scale not a number", EnvScale, "big"},
		{"scale zero", EnvScale, "0"},
		{"scale negative", EnvScale, "-2"},
		{"invert garbage", EnvInvert, "maybe"},
		{"grid garbage", EnvGrid, "yes please"},
		{"bit order", EnvBitOrder, "middle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
		})
	}
}

func TestLoadFiles(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	shared := filepath.Join(dir, ".env")
	if err := os.WriteFile(local, []byte("OLEDVIEW_SCALE=2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(shared, []byte("OLEDVIEW_SCALE=6\nOLEDVIEW_GRID=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(local, shared, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Scale != 2 {
		t.Errorf("Scale = %d, want 2 from the first file", c.Scale)
	}
	if !c.Grid {
		t.Error("Grid = false, want true from the second file")
	}
}

func TestLoadEnvironmentWins(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	f := filepath.Join(dir, ".env")
	if err := os.WriteFile(f, []byte("OLEDVIEW_BIT_ORDER=msb\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvBitOrder, "lsb")

	c, err := Load(f)
	if err != nil {
		t.Fatal(err)
	}
	if c.Order != oledbuf.LSBFirst {
		t.Errorf("Order = %v, want lsb-first from the environment", c.Order)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	f := filepath.Join(dir, ".env")
	if err := os.WriteFile(f, []byte("OLEDVIEW_SCALE=zero\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(f); err == nil {
		t.Error("Load should fail on an invalid value from a file")
	}
}

func TestFromEnvBlankValues(t *testing.T) {
	clearEnv(t)
	for _, k := range allVars {
		t.Setenv(k, "")
	}
	t.Setenv(EnvGrid, "  ")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("blank values should count as unset: %v", err)
	}
	if *c != *Default() {
		t.Errorf("FromEnv() = %+v, want defaults %+v", *c, *Default())
	}
}

func TestLoadBlankTemplate(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	f := filepath.Join(dir, ".env")
	template := "OLEDVIEW_SCALE=\nOLEDVIEW_INVERT=\nOLEDVIEW_GRID=\nOLEDVIEW_BIT_ORDER=\nOLEDVIEW_PNG_NAME=\nOLEDVIEW_BIN_NAME=frame.bin\n"
	if err := os.WriteFile(f, []byte(template), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(f)
	if err != nil {
		t.Fatal(err)
	}
	want := *Default()
	want.BINName = "frame.bin"
	if *c != want {
		t.Errorf("Load() = %+v, want %+v", *c, want)
	}
}
