package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML overlay for player feel. Absent keys keep their
// current value.
type Tuning struct {
	GravityForce     *float64 `yaml:"gravity_force"`
	MinimalGravity   *float64 `yaml:"minimal_gravity"`
	JumpForce        *float64 `yaml:"jump_force"`
	Speed            *float64 `yaml:"speed"`
	RotationSpeed    *float64 `yaml:"rotation_speed"`
	ProbeRadius      *float64 `yaml:"probe_radius"`
	ContactTolerance *float64 `yaml:"contact_tolerance"`
	RespawnDelay     *float64 `yaml:"respawn_delay"`
	Spawn            *struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"spawn"`
}

// ParseTuning decodes a tuning document.
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads and decodes a tuning file from disk.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

func (t Tuning) validate() error {
	if t.ProbeRadius != nil && *t.ProbeRadius <= 0 {
		return fmt.Errorf("config: probe_radius must be positive, got %v", *t.ProbeRadius)
	}
	if t.ContactTolerance != nil && *t.ContactTolerance < 0 {
		return fmt.Errorf("config: contact_tolerance must not be negative, got %v", *t.ContactTolerance)
	}
	if t.RespawnDelay != nil && *t.RespawnDelay < 0 {
		return fmt.Errorf("config: respawn_delay must not be negative, got %v", *t.RespawnDelay)
	}
	return nil
}

// Apply overlays the tuning onto p.
func (t Tuning) Apply(p *PlayerConfig) {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.GravityForce, t.GravityForce)
	set(&p.MinimalGravity, t.MinimalGravity)
	set(&p.JumpForce, t.JumpForce)
	set(&p.Speed, t.Speed)
	set(&p.RotationSpeed, t.RotationSpeed)
	set(&p.ProbeRadius, t.ProbeRadius)
	set(&p.ContactTolerance, t.ContactTolerance)
	set(&p.RespawnDelay, t.RespawnDelay)
	if t.Spawn != nil {
		p.SpawnPoint.X = t.Spawn.X
		p.SpawnPoint.Y = t.Spawn.Y
	}
}

// ReloadPlayer resets Player to its defaults and applies the tuning file at path.
func ReloadPlayer(path string) error {
	t, err := LoadTuning(path)
	if err != nil {
		return err
	}
	p := defaultPlayer()
	t.Apply(&p)
	Player = p
	return nil
}
