package core

// Action represents a semantic player action, abstracted from physical key
// presses and mouse clicks.
type Action int

const (
	ActionNone Action = iota
	ActionLane0         // D, 1 - tap the tile in the leftmost lane
	ActionLane1         // F, 2
	ActionLane2         // J, 3
	ActionLane3         // K, 4 - rightmost lane
	ActionUp            // Up, W - previous menu entry
	ActionDown          // Down, S - next menu entry
	ActionConfirm       // Enter, Space - start a run from the menu
	ActionRestart       // R - new run after game over
	ActionHelp          // ? - toggle full help
	ActionQuit          // Q, Ctrl+C - exit
)

// LaneAction returns the tap action for a lane index.
// Returns ActionNone for lanes outside [0, 3].
func LaneAction(lane int) Action {
	if lane < 0 || lane > 3 {
		return ActionNone
	}
	return ActionLane0 + Action(lane)
}

// Lane returns the lane index for a lane tap action.
func (a Action) Lane() (int, bool) {
	if a < ActionLane0 || a > ActionLane3 {
		return 0, false
	}
	return int(a - ActionLane0), true
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLane0:
		return "Lane0"
	case ActionLane1:
		return "Lane1"
	case ActionLane2:
		return "Lane2"
	case ActionLane3:
		return "Lane3"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
