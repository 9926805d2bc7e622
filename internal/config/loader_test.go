package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultBakeryConfig() {
		t.Errorf("embedded YAML and DefaultBakeryConfig() disagree:\n%+v\n%+v", cfg, DefaultBakeryConfig())
	}
}

func TestLoadBakeryCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bakery.yaml")
	data := "lives: 5\ncatch_zone:\n  top: 400\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadBakery(path)
	if err != nil {
		t.Fatalf("LoadBakery() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Lives != 5 || cfg.CatchZone.Top != 400 {
		t.Errorf("overrides not applied: lives=%d top=%v", cfg.Lives, cfg.CatchZone.Top)
	}
	// Untouched keys keep their defaults
	if cfg.CatchZone.Height != 50 || cfg.World.Width != 800 {
		t.Errorf("defaults lost: height=%v width=%v", cfg.CatchZone.Height, cfg.World.Width)
	}
}

func TestLoadBakeryErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadBakery(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("lives: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadBakery(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := LoadBakery(invalid)
	if err == nil || !strings.Contains(err.Error(), "lives") {
		t.Errorf("zero lives should fail validation, got %v", err)
	}
}

func TestLoadRejectsFastSpawnFloor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  min_interval_ms: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := LoadBakery(path)
	if err == nil || !strings.Contains(err.Error(), "spawn intervals") {
		t.Errorf("min_interval_ms 20 should fail validation, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BakeryConfig)
	}{
		{"zero world", func(c *BakeryConfig) { c.World.Width = 0 }},
		{"smoothing one", func(c *BakeryConfig) { c.Player.Smoothing = 1 }},
		{"spawn offset on screen", func(c *BakeryConfig) { c.Items.SpawnOffset = -10 }},
		{"min above base", func(c *BakeryConfig) { c.Spawn.MinIntervalMS = 900 }},
		{"min below floor", func(c *BakeryConfig) { c.Spawn.MinIntervalMS = 20 }},
		{"empty catch band", func(c *BakeryConfig) { c.CatchZone.Height = 0 }},
		{"no decay", func(c *BakeryConfig) { c.Particles.Decay = 0 }},
	}

	if err := DefaultBakeryConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBakeryConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultBakeryConfig()
	ApplyPreset(&easy, DifficultyEasy)
	hard := DefaultBakeryConfig()
	ApplyPreset(&hard, DifficultyHard)
	normal := DefaultBakeryConfig()
	ApplyPreset(&normal, DifficultyNormal)

	if easy.Spawn.BaseIntervalMS <= hard.Spawn.BaseIntervalMS {
		t.Error("easy should spawn slower than hard")
	}
	if easy.Physics.GravityBase >= hard.Physics.GravityBase {
		t.Error("easy should fall slower than hard")
	}
	if normal != DefaultBakeryConfig() {
		t.Error("normal preset should keep the defaults")
	}
	if easy.Lives != 3 || hard.Lives != 3 {
		t.Error("presets must not change lives")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should be empty")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultBakeryConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "catch_zone:") {
		t.Errorf("marshalled YAML should use snake_case keys:\n%s", data)
	}
}
