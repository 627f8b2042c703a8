package tile

// Event is a touch notification delivered to a tile.
type Event int

const (
	PressBegin Event = iota
	PressEnd
)

func (e Event) String() string {
	switch e {
	case PressBegin:
		return "press-begin"
	case PressEnd:
		return "press-end"
	default:
		return "unknown"
	}
}

// VisualState is the only mutable part of a tile. Values are immutable;
// Next returns a new one.
type VisualState struct {
	Pressed bool
}

// Transition is the outcome of feeding one event to the state machine.
type Transition struct {
	From VisualState
	To   VisualState
	// Changed is true when From and To differ. Side effects fire only then.
	Changed bool
	// Handled tells the touch source whether the gesture was claimed.
	Handled bool
}

// Next is the press state machine. It is total over (state, event, enabled):
//
//	Idle    + PressBegin (enabled)  -> Pressed
//	Idle    + PressBegin (disabled) -> Idle, unhandled
//	Pressed + PressBegin            -> Pressed, no change
//	Pressed + PressEnd              -> Idle, whatever enabled says
//	Idle    + PressEnd              -> Idle, no change
func Next(state VisualState, ev Event, enabled bool) Transition {
	t := Transition{From: state, To: state}

	switch ev {
	case PressBegin:
		if state.Pressed {
			t.Handled = true
			return t
		}
		if !enabled {
			return t
		}
		t.To = VisualState{Pressed: true}
		t.Changed = true
		t.Handled = true
	case PressEnd:
		if !state.Pressed {
			return t
		}
		t.To = VisualState{Pressed: false}
		t.Changed = true
		t.Handled = true
	}

	return t
}
