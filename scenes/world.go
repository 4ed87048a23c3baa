package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/systems"
	"github.com/automoto/cuberun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	tuning       *cfg.TuningWatcher
	once         sync.Once
}

// NewPlatformerScene creates the run scene for the level chosen on the command line.
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: cfg.Debug.LevelIndex}
}

// WithTuning makes the scene apply reloads posted by w.
func (ps *PlatformerScene) WithTuning(w *cfg.TuningWatcher) *PlatformerScene {
	ps.tuning = w
	return ps
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebugToggle)
	if ps.tuning != nil {
		ecs.AddSystem(systems.NewTuningSystem(ps.tuning))
	}

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRespawn))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawExplosions)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs
	Populate(ps.ecs, ps.levelIndex)
}

// Populate creates the level, its collision space, the camera, every
// collider and the runner. It panics if the level cannot host a run.
func Populate(ecs *ecs.ECS, levelIndex int) {
	// Create the level entity and load level data FIRST.
	level := factory.CreateLevelAtIndex(ecs, levelIndex)
	levelData := components.Level.Get(level)
	if levelData.CurrentLevel == nil {
		panic("no level loaded")
	}

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(ecs,
		levelData.CurrentLevel.Width,
		levelData.CurrentLevel.Height,
		cfg.Physics.CellSize, cfg.Physics.CellSize,
	)

	factory.CreateCamera(ecs)

	if len(levelData.CurrentLevel.Platforms) == 0 {
		panic(fmt.Sprintf("level %q has no platforms", levelData.CurrentLevel.Name))
	}
	for _, p := range levelData.CurrentLevel.Platforms {
		factory.CreatePlatform(ecs, p)
	}

	factory.CreatePlayer(ecs, cfg.Player.SpawnPoint, levelData.Projection)

	log.Printf("[level] loaded %q (%d colliders)", levelData.CurrentLevel.Name, len(levelData.CurrentLevel.Platforms))
}
