package scenes

import (
	"image/color"
	"os"
	"sync"

	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/systems"
	"github.com/automoto/cuberun/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once
	start        bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.titleUI.Update()

	if ms.start {
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.titleUI.UI.Draw(screen)
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.titleUI = ui.NewTitleUI(cfg.C.Title,
		func() { ms.start = true },
		func() { os.Exit(0) },
	)

	// Keyboard and gamepad shortcut for Play
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewMenuSelect(func() { ms.start = true }))
}
