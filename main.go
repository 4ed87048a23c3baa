package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/fonts"
	"github.com/automoto/cuberun/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	tuning *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	if ps, ok := scene.(*scenes.PlatformerScene); ok && g.tuning != nil {
		ps.WithTuning(g.tuning)
	}
	g.scene = scene.(Scene)
}

func NewGame(tuning *config.TuningWatcher) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
		tuning: tuning,
	}

	if config.Debug.SkipMenu {
		g.ChangeScene(scenes.NewPlatformerScene(g))
	} else {
		g.ChangeScene(scenes.NewMenuScene(g))
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Start the run without the title menu")
	flag.BoolVar(&config.Debug.DrawShapes, "debug", false, "Outline collision objects and the probe sphere")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML file overriding player constants, reloaded on change")
	flag.IntVar(&config.Debug.LevelIndex, "level", 0, "Level index to play")
	flag.Parse()

	var watcher *config.TuningWatcher
	if path := config.Debug.TuningPath; path != "" {
		if err := config.ReloadPlayer(path); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		w, err := config.NewTuningWatcher(path)
		if err != nil {
			log.Printf("Warning: tuning hot reload disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
