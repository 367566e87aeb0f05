package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseFrogger(GetDefaultYAML("frogger"))
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFroggerConfig()) {
		t.Errorf("embedded YAML and DefaultFroggerConfig() diverge:\nyaml: %+v\ncode: %+v", cfg, DefaultFroggerConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultFroggerConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFroggerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frogger.yaml")
	data := []byte("gameplay:\n  lives: 5\naudio:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrogger(path)
	if err != nil {
		t.Fatalf("LoadFrogger() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled by override")
	}
	// Untouched keys keep their defaults
	if cfg.Player.JumpTicks != 12 || cfg.Lanes.Road.Count != 4 {
		t.Errorf("partial override lost defaults: %+v", cfg)
	}
}

func TestLoadFroggerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFrogger(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrogger(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFrogger(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid config should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestLoadFroggerLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir) // keep the user's real ~/.arcade out of the test
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "frogger.yaml"), []byte("gameplay:\n  goal_points: 250\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrogger("")
	if err != nil {
		t.Fatalf("LoadFrogger() failed: %v", err)
	}
	if cfg.Gameplay.GoalPoints != 250 {
		t.Errorf("GoalPoints = %d, expected 250 from ./configs", cfg.Gameplay.GoalPoints)
	}
}

func TestLoadFroggerFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := LoadFrogger("")
	if err != nil {
		t.Fatalf("LoadFrogger() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFroggerConfig()) {
		t.Error("without overrides the embedded defaults should be used")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FroggerConfig)
	}{
		{"zero field", func(c *FroggerConfig) { c.Field.Width = 0 }},
		{"player bigger than field", func(c *FroggerConfig) { c.Player.Width = 900 }},
		{"zero step", func(c *FroggerConfig) { c.Player.Step = 0 }},
		{"zero jump ticks", func(c *FroggerConfig) { c.Player.JumpTicks = 0 }},
		{"home outside field", func(c *FroggerConfig) { c.Player.HomeX = 790 }},
		{"inverted water band", func(c *FroggerConfig) { c.Field.WaterStart = 300 }},
		{"no lives", func(c *FroggerConfig) { c.Gameplay.Lives = 0 }},
		{"loud", func(c *FroggerConfig) { c.Audio.Volume = 2 }},
		{"inverted speed band", func(c *FroggerConfig) { c.Lanes.Road.MaxSpeed = 1 }},
		{"lanes overflow band", func(c *FroggerConfig) { c.Lanes.Water.Count = 5 }},
		{"negative lanes", func(c *FroggerConfig) { c.Lanes.Road.Count = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFroggerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateAllowsEmptyLaneGroup(t *testing.T) {
	cfg := DefaultFroggerConfig()
	cfg.Lanes.Water = LaneGroupConfig{}
	if err := cfg.Validate(); err != nil {
		t.Errorf("a band without lanes should be valid, got %v", err)
	}
}

func TestApplyMute(t *testing.T) {
	cfg := DefaultFroggerConfig()
	ApplyMute(&cfg, false)
	if !cfg.Audio.Enabled {
		t.Error("ApplyMute(false) should not touch audio")
	}
	ApplyMute(&cfg, true)
	if cfg.Audio.Enabled {
		t.Error("ApplyMute(true) should disable audio")
	}
}

func TestMarshalFroggerRoundTrip(t *testing.T) {
	cfg := DefaultFroggerConfig()
	cfg.Gameplay.Lives = 5
	cfg.Lanes.Road.MaxSpeed = 6.5
	cfg.Audio.Enabled = false

	data, err := MarshalFrogger(cfg)
	if err != nil {
		t.Fatalf("MarshalFrogger() failed: %v", err)
	}

	got, err := ParseFrogger(data)
	if err != nil {
		t.Fatalf("ParseFrogger() failed: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}
