package systems

import (
	"log"

	"github.com/automoto/cuberun/config"
	"github.com/yohamta/donburi/ecs"
)

// NewTuningSystem returns a system that applies tuning file changes posted by
// w. Reload failures keep the previous values.
func NewTuningSystem(w *config.TuningWatcher) ecs.System {
	return func(e *ecs.ECS) {
		for {
			select {
			case path := <-w.Events:
				if err := config.ReloadPlayer(path); err != nil {
					log.Printf("[tuning] reload failed: %v", err)
					continue
				}
				log.Printf("[tuning] reloaded %s", path)
			case err := <-w.Errors:
				log.Printf("[tuning] watcher: %v", err)
			default:
				return
			}
		}
	}
}
