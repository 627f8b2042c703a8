// Package tile implements the pressable board tile: a raised face over a
// darker shadow face that sinks while held and springs back on release.
//
// A Tile owns its press state exclusively and is driven from a single
// goroutine (the UI loop). Touch sources call PressIn and PressOut; the
// tile plays the success cue, asks for an animated layout pass and calls
// the owner's callbacks.
package tile

import (
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/boardtile/internal/audio"
	"github.com/alexisbeaulieu97/boardtile/internal/layout"
	"github.com/alexisbeaulieu97/boardtile/internal/logger"
)

// Option configures the collaborators of a Tile.
type Option func(*Tile)

// WithCue sets the audio-cue service played on press.
func WithCue(cue audio.Cue) Option {
	return func(t *Tile) {
		if cue != nil {
			t.cue = cue
		}
	}
}

// WithTrigger sets the layout-animation trigger requested on press.
func WithTrigger(trigger layout.Trigger) Option {
	return func(t *Tile) {
		if trigger != nil {
			t.trigger = trigger
		}
	}
}

// WithLogger attaches a logger for transition tracing.
func WithLogger(log *logger.Logger) Option {
	return func(t *Tile) {
		t.logger = log
	}
}

// Tile is one interactive tile.
type Tile struct {
	cfg     Config
	state   VisualState
	cue     audio.Cue
	trigger layout.Trigger
	logger  *logger.Logger
}

type noTrigger struct{}

func (noTrigger) RequestLayoutAnimation() {}

// New validates cfg and builds an idle tile. Without WithCue or WithTrigger
// presses are silent and the geometry changes without animation.
func New(cfg Config, opts ...Option) (*Tile, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Tile{
		cfg:     cfg,
		cue:     audio.Nop{},
		trigger: noTrigger{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// PressIn handles press-begin and reports whether the gesture was claimed.
// On the idle-to-pressed transition the cue and the animation request go
// out first, then OnPressIn runs. A panic in OnPressIn is not recovered.
func (t *Tile) PressIn() bool {
	tr := Next(t.state, PressBegin, t.cfg.Enabled)
	if !tr.Changed {
		return tr.Handled
	}

	t.cue.PlaySuccessSound()
	t.trigger.RequestLayoutAnimation()
	t.apply(tr, PressBegin)

	if t.cfg.OnPressIn != nil {
		t.cfg.OnPressIn()
	}
	return true
}

// PressOut handles press-end. A press that started while enabled always
// releases, even if the tile was disabled in between. The tile is already
// idle when OnPressOut runs.
func (t *Tile) PressOut() {
	tr := Next(t.state, PressEnd, t.cfg.Enabled)
	if !tr.Changed {
		return
	}

	t.apply(tr, PressEnd)

	if t.cfg.OnPressOut != nil {
		t.cfg.OnPressOut()
	}
}

func (t *Tile) apply(tr Transition, ev Event) {
	t.state = tr.To
	if !t.logger.Enabled(zerolog.DebugLevel) {
		return
	}
	t.logger.WithFields(map[string]any{
		"label":   t.cfg.Label,
		"event":   ev.String(),
		"pressed": tr.To.Pressed,
	}).Debug("tile transition")
}

// Pressed reports whether the tile is currently held down.
func (t *Tile) Pressed() bool {
	return t.state.Pressed
}

// State returns the current visual state.
func (t *Tile) State() VisualState {
	return t.state
}

// SetEnabled changes whether future presses are accepted. It does not
// cancel a press already in progress.
func (t *Tile) SetEnabled(enabled bool) {
	t.cfg.Enabled = enabled
}

// Enabled reports whether press-begin is currently accepted.
func (t *Tile) Enabled() bool {
	return t.cfg.Enabled
}

// Config returns the resolved configuration.
func (t *Tile) Config() Config {
	return t.cfg
}

// Label returns the text drawn on the face.
func (t *Tile) Label() string {
	return t.cfg.Label
}

// Faces computes the style descriptors for the current state.
func (t *Tile) Faces() Faces {
	return ComputeFaces(t.cfg.Depth, t.cfg.BorderRadius, t.cfg.BackgroundColor, t.state.Pressed)
}

// Props returns the current faces merged over the owner's extra props.
func (t *Tile) Props() map[string]any {
	return t.Faces().Props(t.cfg.AdditionalProps)
}
