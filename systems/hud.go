package systems

import (
	"fmt"

	"github.com/automoto/cuberun/components"
	cfg "github.com/automoto/cuberun/config"
	"github.com/automoto/cuberun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the attempt counter and distance in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	face := fonts.Regular.Get()
	margin := cfg.UI.HUDMargin
	lineHeight := face.Metrics().Height.Ceil()

	text.Draw(screen, fmt.Sprintf("Attempt %d", player.Attempts), face, margin, margin+lineHeight, cfg.UI.HUDTextColor)
	text.Draw(screen, fmt.Sprintf("Distance %.0f  Best %.0f", distance(player.Position.X), distance(player.BestX)),
		face, margin, margin+2*lineHeight, cfg.UI.HUDTextColor)
}

func distance(x float64) float64 {
	d := x - cfg.Player.SpawnPoint.X
	if d < 0 {
		return 0
	}
	return d
}
