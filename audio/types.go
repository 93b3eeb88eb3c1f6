package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundStep    SoundType = iota // Legal move tick
	SoundBump                     // Blocked move buzz
	SoundChime                    // Level complete
	SoundRefresh                  // Maze regenerated
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundStep:
		return "step"
	case SoundBump:
		return "bump"
	case SoundChime:
		return "chime"
	case SoundRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}
