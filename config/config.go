package config

import (
	"image/color"

	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/entity layer the game uses.
const Default ecs.LayerID = 0

// TPS is the fixed update rate. Every gameplay system integrates with DT.
const TPS = 60

// DT is the simulated time that passes in one update, in seconds.
const DT = 1.0 / TPS

// PlayerConfig contains all player-related configuration values.
// Distances are in world units, times in seconds, angles in degrees.
type PlayerConfig struct {
	// Movement
	GravityForce   float64 // Added to the vertical velocity every second
	MinimalGravity float64 // Resting vertical velocity while grounded
	JumpForce      float64 // Upward velocity applied by a jump
	Speed          float64 // Constant horizontal run speed
	RotationSpeed  float64 // Sprite tumble speed while airborne

	// Collision
	ProbeRadius      float64 // Radius of the nearby-collider query
	Width, Height    float64 // Collision box size
	ContactTolerance float64 // |dot| at or below this counts as vertically aligned

	// Lifecycle
	SpawnPoint   gamemath.Vec3
	RespawnDelay float64

	// Visual
	Color color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Depth         float64 // Fixed Z of the camera, kept for parity with the scene layout
	PixelsPerUnit float64 // Render scale from world units to screen pixels
}

// PhysicsConfig contains collision space configuration
type PhysicsConfig struct {
	CellSize int // resolv space cell size in pixels
}

// PlatformConfig contains platform configuration
type PlatformConfig struct {
	FloatDistance float64 // Pixels a floating platform travels
	FloatDuration float64 // Seconds for one leg of the trip

	PlatformColor color.RGBA
	FloatingColor color.RGBA
	SceneryColor  color.RGBA
}

// ExplosionConfig contains the death effect configuration
type ExplosionConfig struct {
	Duration  float64 // Seconds until the effect is destroyed
	MaxRadius float64 // Pixels
	Color     color.RGBA
}

// UIConfig contains HUD and overlay configuration
type UIConfig struct {
	HUDMargin     int
	HUDTextColor  color.RGBA
	BackgroundTop color.RGBA
	PauseOverlay  color.RGBA
	PauseText     color.RGBA
	DebugColor    color.RGBA
	ProbeColor    color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool   // Skip menu and go directly to game
	DrawShapes  bool   // Outline collision objects
	TuningPath  string // Optional YAML file overriding PlayerConfig values
	LevelIndex  int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Physics PhysicsConfig
var Platform PlatformConfig
var Explosion ExplosionConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "cuberun",
	}

	Player = defaultPlayer()

	Camera = CameraConfig{
		Depth:         -10,
		PixelsPerUnit: 32,
	}

	Physics = PhysicsConfig{
		CellSize: 16,
	}

	Platform = PlatformConfig{
		FloatDistance: 64,
		FloatDuration: 1.5,
		PlatformColor: color.RGBA{R: 70, G: 200, B: 120, A: 255},
		FloatingColor: color.RGBA{R: 90, G: 160, B: 230, A: 255},
		SceneryColor:  Grey,
	}

	Explosion = ExplosionConfig{
		Duration:  0.6,
		MaxRadius: 48,
		Color:     Orange,
	}

	UI = UIConfig{
		HUDMargin:     10,
		HUDTextColor:  White,
		BackgroundTop: color.RGBA{R: 24, G: 20, B: 44, A: 255},
		PauseOverlay:  BlackOverlay,
		PauseText:     LightBlue,
		DebugColor:    Cyan,
		ProbeColor:    Yellow,
	}
}

func defaultPlayer() PlayerConfig {
	return PlayerConfig{
		GravityForce:   20,
		MinimalGravity: 0.01,
		JumpForce:      10,
		Speed:          5,
		RotationSpeed:  175,

		ProbeRadius:      1.5,
		Width:            1,
		Height:           1,
		ContactTolerance: 0,

		SpawnPoint:   gamemath.Vec3{X: 0, Y: -1.5, Z: 0},
		RespawnDelay: 3,

		Color: Yellow,
	}
}
