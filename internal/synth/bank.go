package synth

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// ScopeSize is the number of output samples kept for drawing.
const ScopeSize = 8192

// Bank mixes one voice per square into a single stereo stream:
// voices -> pan -> mixer -> master volume -> tap.
// Bank is a beep.Streamer; when it is playing on the speaker, every method
// other than Tap must be called with the speaker locked.
type Bank struct {
	format beep.Format
	env    Envelope
	voices []*Voice

	mixer  *beep.Mixer
	volume *effects.Volume
	tap    *Tap

	pos int
}

// NewBank builds the voice chain. volume is in octaves of gain relative to
// unity, as effects.Volume with base 2 interprets it.
func NewBank(sr beep.SampleRate, tones []Tone, env Envelope, volume float64) *Bank {
	b := &Bank{
		format: beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
		env:    env,
		mixer:  &beep.Mixer{},
	}
	for _, tone := range tones {
		v := NewVoice(sr, tone, env)
		b.voices = append(b.voices, v)
		b.mixer.Add(&effects.Pan{Streamer: v, Pan: clamp(tone.Pan, -1, 1)})
	}
	b.volume = &effects.Volume{Streamer: b.mixer, Base: 2, Volume: volume}
	b.tap = NewTap(b.volume, ScopeSize)
	return b
}

func (b *Bank) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = b.tap.Stream(samples)
	b.pos += n
	return n, ok
}

func (b *Bank) Err() error { return nil }

func (b *Bank) Format() beep.Format { return b.format }

// Now is the bank's audio clock in seconds: samples streamed so far.
func (b *Bank) Now() float64 {
	return float64(b.pos) / float64(b.format.SampleRate)
}

// Strike restarts the envelope of voice i at the current audio time.
func (b *Bank) Strike(i int) error {
	if i < 0 || i >= len(b.voices) {
		return fmt.Errorf("%w: %d of %d", ErrNoVoice, i, len(b.voices))
	}
	b.voices[i].Strike(b.Now(), b.env)
	return nil
}

func (b *Bank) Voices() []*Voice { return b.voices }

func (b *Bank) SetMuted(muted bool) { b.volume.Silent = muted }

func (b *Bank) Muted() bool { return b.volume.Silent }

// Tap exposes the output ring buffer. It is safe to read without the speaker lock.
func (b *Bank) Tap() *Tap { return b.tap }
