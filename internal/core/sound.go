package core

// Sound identifies a one-shot sound cue raised by a game.
type Sound int

const (
	SoundNone        Sound = iota
	SoundMove              // snake advanced one cell
	SoundFood              // food eaten
	SoundDestroy           // round lost
	SoundPause             // pause started
	SoundResume            // pause ended
	SoundObstacles         // hazard batch spawned
	SoundShinePickup       // shine food consumed
	SoundShineDevour       // shine mode removed a hazard
)

// String returns the cue name used by hosts and wire protocols.
func (s Sound) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundFood:
		return "food"
	case SoundDestroy:
		return "destroy"
	case SoundPause:
		return "pause"
	case SoundResume:
		return "resume"
	case SoundObstacles:
		return "obstacles"
	case SoundShinePickup:
		return "shine_pickup"
	case SoundShineDevour:
		return "shine_devour"
	default:
		return "none"
	}
}
