package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		gain := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			gain = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			gain = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
