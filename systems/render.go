package systems

import (
	"image/color"

	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// cubeImage is the runner sprite, created on first draw.
	cubeImage *ebiten.Image
)

// cullPadding keeps shapes from popping in at the screen edges.
const cullPadding = 64.0

// DrawBackground clears the screen.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundTop)
}

// DrawPlatforms fills every collider entity with the colour of its kind.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, proj, ok := renderView(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := screenOffset(camera, proj, width, height)

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		x, y := o.X+offX, o.Y+offY

		// Viewport Culling
		if x+o.W < -cullPadding || x > float64(width)+cullPadding || y+o.H < -cullPadding || y > float64(height)+cullPadding {
			return
		}

		vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), platformColor(components.Platform.Get(e).Kind), false)
	})
}

func platformColor(kind cfg.PlatformKind) color.RGBA {
	switch kind {
	case cfg.PlatformFloating:
		return cfg.Platform.FloatingColor
	case cfg.Scenery:
		return cfg.Platform.SceneryColor
	}
	return cfg.Platform.PlatformColor
}

// DrawPlayer draws the runner as a square tilted by its sprite rotation.
// Nothing is drawn while the body is hidden.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, proj, ok := renderView(ecs)
	if !ok {
		return
	}
	offX, offY := screenOffset(camera, proj, screen.Bounds().Dx(), screen.Bounds().Dy())

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.Visible {
			return
		}
		o := components.Object.Get(e)

		if cubeImage == nil {
			cubeImage = ebiten.NewImage(int(o.W), int(o.H))
			cubeImage.Fill(cfg.Player.Color)
		}

		cx, cy := proj.ToSpace(player.Position.XY())
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-o.W/2, -o.H/2)
		// World rotation is counter-clockwise; screen Y is flipped.
		drawOp.GeoM.Rotate(-gamemath.Radians(player.Rotation))
		drawOp.GeoM.Translate(cx+offX, cy+offY)
		screen.DrawImage(cubeImage, drawOp)
	})
}

// DrawExplosions draws the fading death effects.
func DrawExplosions(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, proj, ok := renderView(ecs)
	if !ok {
		return
	}
	offX, offY := screenOffset(camera, proj, screen.Bounds().Dx(), screen.Bounds().Dy())

	components.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		ex := components.Explosion.Get(e)
		if ex.CurrentRadius <= 0 || ex.CurrentAlpha <= 0 {
			return
		}
		vector.FillCircle(screen,
			float32(ex.X+offX), float32(ex.Y+offY), float32(ex.CurrentRadius),
			fade(cfg.Explosion.Color, ex.CurrentAlpha), true)
	})
}

// fade scales a colour by alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = gamemath.ClampFloat(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func renderView(ecs *ecs.ECS) (*components.CameraData, gamemath.Projection, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, gamemath.Projection{}, false // No camera yet
	}
	proj, ok := levelProjection(ecs)
	if !ok {
		return nil, gamemath.Projection{}, false
	}
	return components.Camera.Get(cameraEntry), proj, true
}
