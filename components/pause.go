package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()

// SettingsData holds runtime toggles that are not part of the config files.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
