package core

// Action represents a semantic input, abstracted from physical keys and buttons.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Move cursor up
	ActionDown              // Move cursor down
	ActionLeft              // Move cursor left
	ActionRight             // Move cursor right
	ActionPrimary           // Step on the cell (left click, space, enter)
	ActionSecondary         // Toggle flag (right click, f)
	ActionRestart           // Start a new board
	ActionHelp              // Toggle the full key help
	ActionScreenshot        // Dump the screen to a file
	ActionQuit              // Exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPrimary:
		return "Primary"
	case ActionSecondary:
		return "Secondary"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor offset for movement actions and (0, 0) otherwise.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, -1
	case ActionDown:
		return 0, 1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}
