// Package layout turns layout-animation requests into spring motion.
//
// A Trigger is the process-wide "animate the next layout pass" request that
// tiles issue on press. The host drains it once per paint and, when set,
// eases every tile's geometry toward its new target with a Motion instead
// of jumping there.
package layout

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultFPS is the frame rate the host steps motions at.
	DefaultFPS = 60

	defaultFrequency = 9.0
	defaultDamping   = 0.55

	settleEpsilon = 0.01
)

// Trigger receives layout-animation requests. Calls carry no parameters and
// repeated calls before the next paint collapse into one.
type Trigger interface {
	RequestLayoutAnimation()
}

// SpringOptions tunes the spring used for animated layout passes.
type SpringOptions struct {
	FPS       int
	Frequency float64
	Damping   float64
}

// Spring is a Trigger backed by a harmonica spring.
type Spring struct {
	opts    SpringOptions
	spring  harmonica.Spring
	pending bool
}

// NewSpring returns a Spring. Zero option fields take the defaults, which
// give a quick, slightly bouncy press.
func NewSpring(opts SpringOptions) *Spring {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Frequency <= 0 {
		opts.Frequency = defaultFrequency
	}
	if opts.Damping <= 0 {
		opts.Damping = defaultDamping
	}
	return &Spring{
		opts:   opts,
		spring: harmonica.NewSpring(harmonica.FPS(opts.FPS), opts.Frequency, opts.Damping),
	}
}

// RequestLayoutAnimation marks the next layout pass as animated.
func (s *Spring) RequestLayoutAnimation() {
	s.pending = true
}

// Pending reports whether a request is waiting for the next paint.
func (s *Spring) Pending() bool {
	return s.pending
}

// Take drains the pending request and reports whether there was one.
func (s *Spring) Take() bool {
	was := s.pending
	s.pending = false
	return was
}

// FrameInterval is the time between animation frames.
func (s *Spring) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.opts.FPS)
}

// NewMotion starts a motion resting at position.
func (s *Spring) NewMotion(position float64) *Motion {
	return &Motion{spring: s.spring, pos: position, target: position}
}

// Motion is one animated scalar, e.g. a tile's face offset.
type Motion struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// Position is the current animated value.
func (m *Motion) Position() float64 {
	return m.pos
}

// Target is the value the motion is settling toward.
func (m *Motion) Target() float64 {
	return m.target
}

// Retarget keeps the current position and velocity and eases toward target.
func (m *Motion) Retarget(target float64) {
	m.target = target
}

// Jump moves straight to target with no easing.
func (m *Motion) Jump(target float64) {
	m.pos = target
	m.vel = 0
	m.target = target
}

// Settled reports whether the motion has come to rest on its target.
func (m *Motion) Settled() bool {
	return m.pos == m.target && m.vel == 0
}

// Step advances one frame and reports whether the motion is still moving.
func (m *Motion) Step() bool {
	if m.Settled() {
		return false
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	if math.Abs(m.pos-m.target) < settleEpsilon && math.Abs(m.vel) < settleEpsilon {
		m.pos = m.target
		m.vel = 0
		return false
	}
	return true
}

var _ Trigger = (*Spring)(nil)
