package core

// Action represents a semantic viewer action, abstracted from physical key
// presses. The platform maps keys to actions; the table logic never sees
// raw key names.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // Left arrow, h
	ActionRight               // Right arrow, l
	ActionUp                  // Up arrow, k
	ActionDown                // Down arrow, j
	ActionDeselect            // Escape
	ActionColorPrompt         // c - open the coloring mode prompt
	ActionSearchPrompt        // s - open the symbol search prompt
	ActionHelp                // ? - toggle the full key help
	ActionScreenshot          // Ctrl+S - dump the screen to a text file
	ActionQuit                // q, Ctrl+C
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionDeselect:
		return "Deselect"
	case ActionColorPrompt:
		return "ColorPrompt"
	case ActionSearchPrompt:
		return "SearchPrompt"
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
