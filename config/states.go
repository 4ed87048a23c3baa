package config

// PlayerState is the life state of the player.
type PlayerState int

const (
	StateActive PlayerState = iota
	StateKilled
)

func (s PlayerState) String() string {
	switch s {
	case StateActive:
		return "ACTIVE"
	case StateKilled:
		return "KILLED"
	}
	return "UNKNOWN"
}

// PlatformKind distinguishes the collider flavours a level can contain.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformFloating
	Scenery
)
