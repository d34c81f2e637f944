package synth

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

// Stepper advances a simulation by one frame and appends the index of
// every voice that must sound to sounds.
type Stepper interface {
	Step(sounds []int) []int
}

// RenderOptions control an offline render.
type RenderOptions struct {
	Duration time.Duration
	FPS      int
	// OnFrame, when set, runs before each simulation frame with the frame number.
	OnFrame func(frame int)
}

// frameDriver streams a bank and advances the simulation so that frame k
// starts at sample k*SampleRate/FPS, pacing frames by the audio clock
// without drift when the rate does not divide evenly.
type frameDriver struct {
	ctx   context.Context
	bank  *Bank
	sim   Stepper
	opts  RenderOptions
	rate  int64
	until int
	frame int
	hits  []int
	err   error
}

func (d *frameDriver) advance() bool {
	if err := d.ctx.Err(); err != nil {
		d.err = fmt.Errorf("%w at frame %d: %v", ErrRenderCanceled, d.frame, err)
		return false
	}
	if d.opts.OnFrame != nil {
		d.opts.OnFrame(d.frame)
	}
	d.hits = d.sim.Step(d.hits)
	for _, i := range d.hits {
		if err := d.bank.Strike(i); err != nil {
			d.err = err
			return false
		}
	}
	d.until = int(d.frameStart(d.frame+1) - d.frameStart(d.frame))
	d.frame++
	return true
}

func (d *frameDriver) frameStart(k int) int64 {
	return int64(k) * d.rate / int64(d.opts.FPS)
}

func (d *frameDriver) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if d.until == 0 && !d.advance() {
			return n, n > 0
		}
		k := len(samples) - n
		if k > d.until {
			k = d.until
		}
		m, more := d.bank.Stream(samples[n : n+k])
		n += m
		d.until -= m
		if !more {
			return n, n > 0
		}
	}
	return n, true
}

func (d *frameDriver) Err() error { return d.err }

// Render runs sim against bank for opts.Duration of audio time and writes
// the result to w as 16-bit stereo WAV. It returns the number of
// simulation frames run.
func Render(ctx context.Context, w io.WriteSeeker, sim Stepper, bank *Bank, opts RenderOptions) (int, error) {
	if opts.FPS <= 0 {
		return 0, fmt.Errorf("synth: render fps must be positive, got %d", opts.FPS)
	}
	if opts.Duration <= 0 {
		return 0, fmt.Errorf("synth: render duration must be positive, got %v", opts.Duration)
	}
	format := bank.Format()
	d := &frameDriver{ctx: ctx, bank: bank, sim: sim, opts: opts, rate: int64(format.SampleRate)}
	if err := wav.Encode(w, beep.Take(format.SampleRate.N(opts.Duration), d), format); err != nil {
		return d.frame, err
	}
	if d.err != nil {
		return d.frame, d.err
	}
	return d.frame, nil
}
