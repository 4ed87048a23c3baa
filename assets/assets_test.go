package assets

import (
	"testing"

	"github.com/automoto/cuberun/config"
)

func TestEmbeddedLevelsParse(t *testing.T) {
	levels := NewLevelLoader().MustLoadLevels()
	if len(levels) == 0 {
		t.Fatal("no levels")
	}

	lvl := levels[0]
	if lvl.Width != 120*32 || lvl.Height != 12*32 {
		t.Fatalf("size = %dx%d", lvl.Width, lvl.Height)
	}
	if lvl.OriginX != 96 || lvl.OriginY != 192 {
		t.Fatalf("origin = (%v, %v)", lvl.OriginX, lvl.OriginY)
	}

	counts := map[config.PlatformKind]int{}
	for _, p := range lvl.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			t.Fatalf("degenerate platform %+v", p)
		}
		counts[p.Kind]++
	}
	if counts[config.PlatformStatic] == 0 || counts[config.PlatformFloating] == 0 || counts[config.Scenery] == 0 {
		t.Fatalf("expected every platform kind, got %v", counts)
	}
}

func TestSpawnSitsOnFloor(t *testing.T) {
	lvl := NewLevelLoader().MustLoadLevel("levels/level01.tmx")

	// world (0, -1.5) with a one unit body rests its feet on y = -2
	feetY := lvl.OriginY + 2*32
	spawnX := lvl.OriginX
	for _, p := range lvl.Platforms {
		if p.Kind != config.Scenery && spawnX >= p.X && spawnX <= p.X+p.Width && p.Y == feetY {
			return
		}
	}
	t.Fatalf("no platform under the spawn point at y=%v", feetY)
}
