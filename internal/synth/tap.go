package synth

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap passes a stream through unchanged while keeping a copy of the most
// recent frames for drawing. Stream runs on the speaker goroutine and
// Snapshot on the render goroutine.
type Tap struct {
	src beep.Streamer

	mu    sync.RWMutex
	ring  [][2]float64
	head  int    // next write position
	total uint64 // frames written since creation
}

func NewTap(src beep.Streamer, size int) *Tap {
	return &Tap{src: src, ring: make([][2]float64, size)}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n == 0 || len(t.ring) == 0 {
		return n, ok
	}
	in := samples[:n]
	if len(in) > len(t.ring) {
		in = in[len(in)-len(t.ring):]
	}

	t.mu.Lock()
	c := copy(t.ring[t.head:], in)
	copy(t.ring, in[c:])
	t.head = (t.head + len(in)) % len(t.ring)
	t.total += uint64(n)
	t.mu.Unlock()
	return n, ok
}

func (t *Tap) Err() error { return t.src.Err() }

// Snapshot returns up to the last n frames, oldest first, reusing dst.
// Before the ring has filled only the frames written so far are returned.
func (t *Tap) Snapshot(dst [][2]float64, n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	dst = dst[:0]
	if n > len(t.ring) {
		n = len(t.ring)
	}
	if t.total < uint64(n) {
		n = int(t.total)
	}
	if n <= 0 {
		return dst
	}
	start := (t.head - n + len(t.ring)) % len(t.ring)
	if start+n <= len(t.ring) {
		return append(dst, t.ring[start:start+n]...)
	}
	dst = append(dst, t.ring[start:]...)
	return append(dst, t.ring[:start+n-len(t.ring)]...)
}
