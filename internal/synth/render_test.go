package synth

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedSim struct {
	steps int
	hitAt map[int][]int
}

func (s *scriptedSim) Step(sounds []int) []int {
	sounds = append(sounds[:0], s.hitAt[s.steps]...)
	s.steps++
	return sounds
}

func TestRenderWritesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	bank := NewBank(beep.SampleRate(8000), []Tone{{Note: 69}}, DefaultEnvelope(), 0)
	sim := &scriptedSim{hitAt: map[int][]int{0: {0}}}

	var seen []int
	frames, err := Render(context.Background(), f, sim, bank, RenderOptions{
		Duration: 500 * time.Millisecond,
		FPS:      50,
		OnFrame:  func(frame int) { seen = append(seen, frame) },
	})
	require.NoError(t, err)
	assert.Equal(t, 25, frames)
	assert.Equal(t, 25, sim.steps)
	assert.Len(t, seen, 25)
	assert.InDelta(t, 0.5, bank.Now(), 1e-12)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 44+4000*4)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))

	var loud bool
	for i := 44; i < len(data); i += 2 {
		if v := int16(binary.LittleEndian.Uint16(data[i:])); v > 1000 || v < -1000 {
			loud = true
			break
		}
	}
	assert.True(t, loud, "strike on frame 0 should be audible")
}

func TestRenderFramesFollowAudioClock(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)
	defer f.Close()

	// 22050/60 is not whole; truncating to 367 samples per frame would run 61 frames
	bank := NewBank(beep.SampleRate(22050), []Tone{{Note: 69}}, DefaultEnvelope(), 0)
	sim := &scriptedSim{}
	var starts []float64
	frames, err := Render(context.Background(), f, sim, bank, RenderOptions{
		Duration: 3 * time.Second,
		FPS:      60,
		OnFrame:  func(int) { starts = append(starts, bank.Now()) },
	})
	require.NoError(t, err)
	assert.Equal(t, 180, frames)
	assert.Equal(t, 180, sim.steps)
	require.Len(t, starts, 180)
	for k, at := range starts {
		assert.Equal(t, float64(k*22050/60)/22050, at, "frame %d", k)
	}
}

func TestRenderCanceled(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	bank := NewBank(beep.SampleRate(8000), []Tone{{Note: 69}}, DefaultEnvelope(), 0)
	_, err = Render(ctx, f, &scriptedSim{}, bank, RenderOptions{
		Duration: time.Second,
		FPS:      60,
		OnFrame: func(frame int) {
			if frame == 3 {
				cancel()
			}
		},
	})
	assert.True(t, errors.Is(err, ErrRenderCanceled))
}

func TestRenderRejectsBadOptions(t *testing.T) {
	bank := NewBank(beep.SampleRate(8000), nil, DefaultEnvelope(), 0)
	_, err := Render(context.Background(), nil, &scriptedSim{}, bank, RenderOptions{Duration: time.Second})
	assert.Error(t, err)
	_, err = Render(context.Background(), nil, &scriptedSim{}, bank, RenderOptions{FPS: 60})
	assert.Error(t, err)
}
