package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	t.Parallel()

	idle := VisualState{}
	pressed := VisualState{Pressed: true}

	tests := []struct {
		name        string
		state       VisualState
		event       Event
		enabled     bool
		wantPressed bool
		wantChanged bool
		wantHandled bool
	}{
		{name: "idle press enabled", state: idle, event: PressBegin, enabled: true, wantPressed: true, wantChanged: true, wantHandled: true},
		{name: "idle press disabled", state: idle, event: PressBegin, enabled: false},
		{name: "pressed press again", state: pressed, event: PressBegin, enabled: true, wantPressed: true, wantHandled: true},
		{name: "pressed press again while disabled", state: pressed, event: PressBegin, enabled: false, wantPressed: true, wantHandled: true},
		{name: "pressed release", state: pressed, event: PressEnd, enabled: true, wantChanged: true, wantHandled: true},
		{name: "pressed release after disable", state: pressed, event: PressEnd, enabled: false, wantChanged: true, wantHandled: true},
		{name: "idle release", state: idle, event: PressEnd, enabled: true},
		{name: "unknown event", state: pressed, event: Event(42), enabled: true, wantPressed: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := Next(tt.state, tt.event, tt.enabled)
			assert.Equal(t, tt.state, tr.From)
			assert.Equal(t, tt.wantPressed, tr.To.Pressed)
			assert.Equal(t, tt.wantChanged, tr.Changed)
			assert.Equal(t, tt.wantHandled, tr.Handled)
		})
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	state := VisualState{}
	_ = Next(state, PressBegin, true)
	assert.False(t, state.Pressed)
}

func TestEventString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "press-begin", PressBegin.String())
	assert.Equal(t, "press-end", PressEnd.String())
	assert.Equal(t, "unknown", Event(9).String())
}
