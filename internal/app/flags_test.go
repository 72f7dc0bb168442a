package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsMatchWindowGrid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	rows, cols := cfg.Grid()
	if rows != 60 || cols != 80 {
		t.Fatalf("grid = %dx%d, want 60x80", rows, cols)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, "window size"},
		{"zero scale", func(c *Config) { c.Scale = 0 }, "scale 0"},
		{"scale too big", func(c *Config) { c.Scale = 900 }, "does not fit"},
		{"negative prob", func(c *Config) { c.Prob = -0.1 }, "probability"},
		{"prob above one", func(c *Config) { c.Prob = 1.5 }, "probability"},
		{"zero tps", func(c *Config) { c.TPS = 0 }, "tps"},
		{"negative gps", func(c *Config) { c.GPS = -1 }, "gps"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tc.want)
			}
		})
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-scale", "5", "-prob", "0.5", "-menu=false"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Resolve(fs); err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 5 || cfg.Prob != 0.5 || cfg.ShowMenu {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestResolveFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	body := `{"width": 400, "height": 300, "scale": 20, "prob": 0.7, "seed": 5}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-seed", "9"}); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Resolve(fs); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 400 || cfg.Height != 300 || cfg.Scale != 20 || cfg.Prob != 0.7 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Seed != 9 {
		t.Fatalf("seed = %d, want flag value 9", cfg.Seed)
	}
	if cfg.TPS != 60 {
		t.Fatalf("tps = %d, want default 60", cfg.TPS)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil || !strings.Contains(err.Error(), "failed to read file") {
		t.Fatalf("missing file error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil || !strings.Contains(err.Error(), "failed to unmarshal") {
		t.Fatalf("bad json error = %v", err)
	}
}
