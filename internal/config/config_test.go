package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultFlappyConfig()
	var fromYAML FlappyConfig
	if err := Decode(DefaultYAML(), FormatYAML, &fromYAML); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if fromYAML != cfg {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig():\n yaml: %+v\n code: %+v", fromYAML, cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestBandRange(t *testing.T) {
	b := Band{Center: 56, Spread: 100}
	if b.Max() != 156 || b.Min() != -43 {
		t.Errorf("band range = [%v, %v], expected [-43, 156]", b.Min(), b.Max())
	}

	zero := Band{Center: 10}
	if zero.Min() != 10 || zero.Max() != 10 {
		t.Errorf("zero spread should pin the band at its centre, got [%v, %v]", zero.Min(), zero.Max())
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		want   string
	}{
		{"zero tick rate", func(c *FlappyConfig) { c.TickRate = 0 }, "tick_rate"},
		{"rightward scroll", func(c *FlappyConfig) { c.Scroll.PipeSpeed = 10 }, "pipe_speed"},
		{"no pipes", func(c *FlappyConfig) { c.Pipes.Count = 0 }, "pipes.count"},
		{"overlapping pipes", func(c *FlappyConfig) { c.Pipes.Distance = 40 }, "pipes.distance"},
		{"gap smaller than bird", func(c *FlappyConfig) { c.Pipes.Gap = 20 }, "bird height"},
		{"gap fills playfield", func(c *FlappyConfig) { c.Pipes.Gap = 400 }, "playfield height"},
		{"zero-size sprite", func(c *FlappyConfig) { c.Sprites.Bird.W = 0 }, "sprites.bird"},
		{"band too wide", func(c *FlappyConfig) { c.Pipes.RecycleBand.Spread = 300 }, "recycle_band"},
		{"negative spread", func(c *FlappyConfig) { c.Pipes.SpawnBand.Spread = -1 }, "spawn_band"},
		{"no frames", func(c *FlappyConfig) { c.Animation.Frames = 0 }, "animation.frames"},
		{"pool too short", func(c *FlappyConfig) { c.Pipes.Count = 1; c.Pipes.Distance = 100 }, "count*distance"},
		{"upward gravity", func(c *FlappyConfig) { c.Physics.Gravity = 10 }, "physics.gravity"},
		{"downward flap", func(c *FlappyConfig) { c.Physics.Flap = -256 }, "physics.flap"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid: %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoaderSearchOrder(t *testing.T) {
	userDir := t.TempDir()
	localDir := t.TempDir()
	l := &Loader{UserDir: userDir, LocalDir: localDir}

	// Nothing on disk: embedded defaults
	cfg, err := l.Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("expected defaults when no file exists")
	}

	// Local TOML overrides defaults
	writeFile(t, filepath.Join(localDir, "flappy.toml"), "[pipes]\ncount = 4\n")
	cfg, err = l.Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Pipes.Count != 4 {
		t.Errorf("local toml should set count=4, got %d", cfg.Pipes.Count)
	}
	if cfg.Pipes.Gap != 100 {
		t.Errorf("unset values should keep defaults, gap = %v", cfg.Pipes.Gap)
	}

	// User YAML wins over local
	writeFile(t, filepath.Join(userDir, "flappy.yaml"), "pipes:\n  count: 5\n")
	cfg, err = l.Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Pipes.Count != 5 {
		t.Errorf("user yaml should set count=5, got %d", cfg.Pipes.Count)
	}

	// Explicit path wins over everything
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "physics:\n  flap: 300\n")
	cfg, err = l.Load(custom)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Flap != 300 || cfg.Pipes.Count != 3 {
		t.Errorf("custom file should only override flap, got flap=%v count=%d", cfg.Physics.Flap, cfg.Pipes.Count)
	}
}

func TestLoaderFailsFast(t *testing.T) {
	l := &Loader{}

	if _, err := l.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "pipes:\n  count: 0\n")
	_, err := l.Load(bad)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid config should fail validation, got %v", err)
	}

	garbage := filepath.Join(t.TempDir(), "garbage.toml")
	writeFile(t, garbage, "[pipes\n")
	if _, err := l.Load(garbage); err == nil {
		t.Error("unparsable file should be an error")
	}
}

func TestLoaderReportsBrokenSearchFile(t *testing.T) {
	userDir := t.TempDir()
	localDir := t.TempDir()
	l := &Loader{UserDir: userDir, LocalDir: localDir}

	writeFile(t, filepath.Join(localDir, "flappy.yaml"), "pipes:\n  count: 4\n")
	broken := filepath.Join(userDir, "flappy.toml")
	writeFile(t, broken, "[pipes\n")

	_, err := l.Load("")
	if err == nil {
		t.Fatal("a broken file in the search path should be an error, not skipped")
	}
	if !strings.Contains(err.Error(), broken) {
		t.Errorf("error should name the broken file: %v", err)
	}
}

func TestEncodeRoundTripsThroughBothFormats(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Pipes.Count = 7

	for _, format := range []Format{FormatYAML, FormatTOML} {
		var buf bytes.Buffer
		if err := Encode(&buf, format, cfg); err != nil {
			t.Fatalf("Encode(%s) failed: %v", format, err)
		}
		var decoded FlappyConfig
		if err := Decode(buf.Bytes(), format, &decoded); err != nil {
			t.Fatalf("Decode(%s) failed: %v", format, err)
		}
		if decoded != cfg {
			t.Errorf("%s round trip mismatch:\n got  %+v\n want %+v", format, decoded, cfg)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	if FormatFromPath("a/b.TOML") != FormatTOML {
		t.Error(".TOML should be toml")
	}
	if FormatFromPath("a/b.yml") != FormatYAML {
		t.Error(".yml should be yaml")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
