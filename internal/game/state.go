// Package game provides the main game loop and state management.
package game

// State represents what the screen is currently waiting for.
type State int

const (
	// StateStory shows the current node and accepts choices or a restart.
	StateStory State = iota
	// StateBanner shows an outcome or error message until it is dismissed.
	StateBanner
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStory:
		return "story"
	case StateBanner:
		return "banner"
	default:
		return "unknown"
	}
}
