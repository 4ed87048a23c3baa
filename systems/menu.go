package systems

import (
	cfg "github.com/automoto/cuberun/config"
	"github.com/yohamta/donburi/ecs"
)

// NewMenuSelect returns a system that calls onSelect when the menu select
// action is pressed.
func NewMenuSelect(onSelect func()) ecs.System {
	return func(ecs *ecs.ECS) {
		if GetAction(getOrCreateInput(ecs), cfg.ActionMenuSelect).JustPressed {
			onSelect()
		}
	}
}
