// Package audio plays the short feedback cues that accompany tile presses.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/alexisbeaulieu97/boardtile/internal/logger"
	apperrors "github.com/alexisbeaulieu97/boardtile/pkg/errors"
)

const (
	// DefaultSampleRate matches the rate most desktop audio devices run at.
	DefaultSampleRate = 44100

	successDuration = 140 * time.Millisecond
	successAttack   = 4 * time.Millisecond
	successRelease  = 110 * time.Millisecond
)

var (
	speakerInit = speaker.Init
	speakerPlay = func(s beep.Streamer) { speaker.Play(s) }
)

// Cue is the audio-cue service a tile talks to. Calls are fire-and-forget.
type Cue interface {
	PlaySuccessSound()
}

// Options configures a BeepCue.
type Options struct {
	SampleRate int
	Volume     float64
}

// Nop is a Cue that plays nothing.
type Nop struct{}

// PlaySuccessSound does nothing.
func (Nop) PlaySuccessSound() {}

// BeepCue plays synthesized cues through the system speaker.
type BeepCue struct {
	mu     sync.Mutex
	opts   Options
	play   func(beep.Streamer)
	logger *logger.Logger
}

// NewBeepCue initializes the speaker and returns a ready cue. When the
// speaker cannot be opened the error is an *errors.AudioError and callers
// are expected to fall back to Nop.
func NewBeepCue(opts Options, log *logger.Logger) (*BeepCue, error) {
	opts = opts.withDefaults()
	rate := beep.SampleRate(opts.SampleRate)
	if err := speakerInit(rate, rate.N(time.Second/10)); err != nil {
		return nil, apperrors.NewAudioError("speaker.init", err)
	}
	return newBeepCue(opts, speakerPlay, log), nil
}

func newBeepCue(opts Options, play func(beep.Streamer), log *logger.Logger) *BeepCue {
	return &BeepCue{opts: opts.withDefaults(), play: play, logger: log}
}

// PlaySuccessSound queues a short two-partial chime. speaker.Play mixes the
// stream in and returns immediately, so overlapping presses overlap cues.
func (c *BeepCue) PlaySuccessSound() {
	c.mu.Lock()
	defer c.mu.Unlock()

	streamer, err := SuccessChime(c.opts)
	if err != nil {
		c.logger.Error(err, "success cue unavailable")
		return
	}
	c.play(streamer)
}

// SuccessChime builds the success cue: a sine at E6 with a softer octave on
// top, shaped by a fast attack and a long release.
func SuccessChime(opts Options) (beep.Streamer, error) {
	opts = opts.withDefaults()
	rate := beep.SampleRate(opts.SampleRate)

	fundamental, err := partial(rate, 1318.5, 0.7)
	if err != nil {
		return nil, err
	}
	overtone, err := partial(rate, 2637.0, 0.3)
	if err != nil {
		return nil, err
	}

	mixed := beep.Mix(fundamental, overtone)
	return volume(mixed, opts.Volume), nil
}

func partial(rate beep.SampleRate, freq, gain float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, apperrors.NewAudioError("generate", err)
	}
	shaped := newEnvelope(beep.Take(rate.N(successDuration), tone), successDuration, successAttack, successRelease, rate)
	return volume(shaped, gain), nil
}

// volume maps a linear gain onto effects.Volume's base-2 scale.
// math.Log2(0) is -Inf, so zero gain becomes silence.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain), Silent: false}
}

func (o Options) withDefaults() Options {
	if o.SampleRate <= 0 {
		o.SampleRate = DefaultSampleRate
	}
	if o.Volume < 0 {
		o.Volume = 0
	}
	if o.Volume > 1 {
		o.Volume = 1
	}
	return o
}

var _ Cue = (*BeepCue)(nil)
var _ Cue = Nop{}
