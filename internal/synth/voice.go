package synth

import (
	"time"

	"github.com/faiface/beep"
)

// Envelope shapes the gain of a voice after a strike: a linear attack to
// Peak followed by an exponential fall to Floor. Base is the resting gain
// before the first strike.
type Envelope struct {
	Attack  time.Duration
	Peak    float64
	Release time.Duration
	Floor   float64
	Base    float64
}

func DefaultEnvelope() Envelope {
	return Envelope{
		Attack:  20 * time.Millisecond,
		Peak:    0.1,
		Release: 8 * time.Second,
		Floor:   0.000001,
		Base:    0.0001,
	}
}

// Tone describes what a voice plays and where it sits in the stereo field.
type Tone struct {
	Note int
	Pan  float64
}

// Voice is a free-running sawtooth oscillator behind an automated gain.
// It never ends; silence is a gain near zero.
type Voice struct {
	Tone Tone
	Gain *Param

	sr    beep.SampleRate
	freq  float64
	phase float64
	pos   int
}

func NewVoice(sr beep.SampleRate, tone Tone, env Envelope) *Voice {
	return &Voice{
		Tone: tone,
		Gain: NewParam(env.Base),
		sr:   sr,
		freq: NoteFreq(tone.Note),
	}
}

// Strike restarts the envelope from whatever level the gain has at now,
// overriding any envelope still in flight.
func (v *Voice) Strike(now float64, env Envelope) {
	v.Gain.CancelAndHoldAtTime(now)
	v.Gain.LinearRampToValueAtTime(env.Peak, now+env.Attack.Seconds())
	v.Gain.ExponentialRampToValueAtTime(env.Floor, now+env.Release.Seconds())
}

func (v *Voice) Stream(samples [][2]float64) (n int, ok bool) {
	rate := float64(v.sr)
	step := v.freq / rate
	for i := range samples {
		g := v.Gain.ValueAt(float64(v.pos) / rate)
		s := (2*v.phase - 1) * g
		samples[i][0] = s
		samples[i][1] = s

		v.phase += step
		if v.phase >= 1 {
			v.phase -= 1
		}
		v.pos++
	}
	return len(samples), true
}

func (v *Voice) Err() error { return nil }
