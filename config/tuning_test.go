package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTuningOverlay(t *testing.T) {
	doc := []byte(`
jump_force: 12.5
speed: 6
spawn:
  x: 2
  y: -3
`)
	tn, err := ParseTuning(doc)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}

	p := defaultPlayer()
	tn.Apply(&p)

	if p.JumpForce != 12.5 {
		t.Fatalf("JumpForce = %v, want 12.5", p.JumpForce)
	}
	if p.Speed != 6 {
		t.Fatalf("Speed = %v, want 6", p.Speed)
	}
	if p.SpawnPoint.X != 2 || p.SpawnPoint.Y != -3 {
		t.Fatalf("SpawnPoint = %+v, want (2, -3)", p.SpawnPoint)
	}
	// untouched keys keep defaults
	if p.GravityForce != 20 || p.MinimalGravity != 0.01 || p.RespawnDelay != 3 {
		t.Fatalf("defaults changed: %+v", p)
	}
}

func TestParseTuningRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"zero_probe_radius", "probe_radius: 0"},
		{"negative_tolerance", "contact_tolerance: -0.1"},
		{"negative_delay", "respawn_delay: -1"},
		{"not_yaml", "speed: [1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseTuning([]byte(c.doc)); err == nil {
				t.Fatalf("expected error for %q", c.doc)
			}
		})
	}
}

func TestReloadPlayerStartsFromDefaults(t *testing.T) {
	saved := Player
	t.Cleanup(func() { Player = saved })

	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("speed: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	Player.JumpForce = 99
	if err := ReloadPlayer(path); err != nil {
		t.Fatalf("ReloadPlayer: %v", err)
	}
	if Player.Speed != 9 {
		t.Fatalf("Speed = %v, want 9", Player.Speed)
	}
	if Player.JumpForce != 10 {
		t.Fatalf("JumpForce = %v, want default 10", Player.JumpForce)
	}

	if err := ReloadPlayer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
