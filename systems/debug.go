package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/fonts"
	"github.com/automoto/cuberun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggle flips the collision overlay on F3.
func UpdateDebugToggle(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camera, proj, ok := renderView(ecs)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offX, offY := screenOffset(camera, proj, width, height)

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			x := obj.X + offX
			y := obj.Y + offY
			// Cull objects outside viewport
			if x+obj.W < 0 || x > float64(width) || y+obj.H < 0 || y > float64(height) {
				continue
			}

			// Determine color based on tags
			c := cfg.UI.DebugColor
			if obj.HasTags(tags.ResolvScenery) {
				c = cfg.Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvPlatform) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	cx, cy := proj.ToSpace(player.Position.XY())
	vector.StrokeCircle(screen,
		float32(cx+offX), float32(cy+offY), float32(proj.Length(cfg.Player.ProbeRadius)),
		1, cfg.UI.ProbeColor, true)

	info := fmt.Sprintf("%s ground=%t gravity=%.2f rot=%.0f contacts=%d",
		player.State, player.OnGround, player.Gravity, player.Rotation, player.Contacts)
	text.Draw(screen, info, fonts.Small.Get(), cfg.UI.HUDMargin, height-cfg.UI.HUDMargin, cfg.UI.DebugColor)
}

// GetOrCreateSettings returns the singleton Settings component, seeded
// from the command line flags.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{Debug: cfg.Debug.DrawShapes})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
