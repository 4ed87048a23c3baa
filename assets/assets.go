package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/automoto/cuberun/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// PlatformSpawn is a collider rectangle in level pixels.
type PlatformSpawn struct {
	X, Y, Width, Height float64
	Kind                config.PlatformKind
}

type Level struct {
	Platforms []PlatformSpawn
	Name      string
	Width     int
	Height    int

	// OriginX, OriginY is the pixel that world (0, 0) maps to.
	OriginX float64
	OriginY float64
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levelPath := filepath.ToSlash(filepath.Join("levels", entry.Name()))
			levels = append(levels, l.MustLoadLevel(levelPath))
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses one embedded Tiled map.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("assets: load %s: %w", levelPath, err)
	}

	level := Level{
		Platforms: []PlatformSpawn{},
		Name:      levelPath,
		Width:     levelMap.Width * levelMap.TileWidth,
		Height:    levelMap.Height * levelMap.TileHeight,
	}

	originFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Markers":
			for _, o := range og.Objects {
				if o.Name == "origin" {
					level.OriginX = o.X
					level.OriginY = o.Y
					originFound = true
				}
			}
		case "Platforms", "Scenery":
			for _, o := range og.Objects {
				kind, err := platformKind(o, og.Name)
				if err != nil {
					return Level{}, fmt.Errorf("assets: %s: %w", levelPath, err)
				}
				level.Platforms = append(level.Platforms, PlatformSpawn{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Kind:   kind,
				})
			}
		}
	}

	if !originFound {
		return Level{}, fmt.Errorf("assets: %s: no origin marker", levelPath)
	}
	return level, nil
}

// platformKind reads the object's class, falling back to the layer it lives on.
func platformKind(o *tiled.Object, group string) (config.PlatformKind, error) {
	class := o.Class
	if class == "" {
		class = o.Type //nolint:staticcheck // TMX uses type= attribute
	}
	switch class {
	case "platform":
		return config.PlatformStatic, nil
	case "floating":
		return config.PlatformFloating, nil
	case "scenery":
		return config.Scenery, nil
	case "":
		if group == "Scenery" {
			return config.Scenery, nil
		}
		return config.PlatformStatic, nil
	}
	return 0, fmt.Errorf("object %d has unknown class %q", o.ID, class)
}
