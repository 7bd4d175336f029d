package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions; the simulation only ever sees actions.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A - move the cannon left
	ActionRight        // Right arrow, D - move the cannon right
	ActionFire         // Space - fire, or restart after game over
	ActionPause        // P - pause/unpause
	ActionQuit         // Q, Esc, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
