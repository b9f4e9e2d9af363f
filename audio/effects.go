package audio

import (
	"math"
	"math/rand"
	"time"

	"snake-arcade/config"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue timings
const (
	eatNote1Duration = 60 * time.Millisecond
	eatNote2Duration = 110 * time.Millisecond
	eatAttack        = 2 * time.Millisecond
	eatNote1Release  = 20 * time.Millisecond
	eatNote2Release  = 80 * time.Millisecond

	crashDuration = 250 * time.Millisecond
	crashAttack   = 5 * time.Millisecond
	crashRelease  = 180 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator streams duration worth of a single tone
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack and out over release
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; log2(0) is -Inf so zero is mapped to silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateEatSound is a rising two-note chime
func CreateEatSound(cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewEnvelope(NewOscillator(987.77, eatNote1Duration, WaveSquare, rate),
		eatNote1Duration, eatAttack, eatNote1Release, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, eatNote2Duration, WaveSquare, rate),
		eatNote2Duration, eatAttack, eatNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), 0.4*cfg.MasterVolume)
}

// CreateCrashSound is a low saw buzz with some noise on top
func CreateCrashSound(cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := NewEnvelope(NewOscillator(90.0, crashDuration, WaveSaw, rate),
		crashDuration, crashAttack, crashRelease, rate)
	noise := NewEnvelope(NewOscillator(0, crashDuration, WaveNoise, rate),
		crashDuration, crashAttack, crashRelease, rate)

	mixed := beep.Mix(
		newVolume(buzz, 0.7),
		newVolume(noise, 0.3),
	)
	return newVolume(mixed, cfg.MasterVolume)
}
