package sim

import (
	"math"
	"math/rand"
)

// Spawn defaults for a single click.
const (
	DefaultBurst = 12
	DefaultSpeed = 2.0
)

// World owns the particles and squares and advances them one frame at a time.
// It is not safe for concurrent use.
type World struct {
	Bounds    Bounds
	Physics   Physics
	Particles []*Particle
	Squares   []*Square

	Burst int
	Speed float64

	rng   *rand.Rand
	drawn []Vec2
}

// NewWorld creates an empty world. seed drives bounce jitter.
func NewWorld(b Bounds, ph Physics, squares []*Square, seed int64) *World {
	return &World{
		Bounds:  b,
		Physics: ph,
		Squares: squares,
		Burst:   DefaultBurst,
		Speed:   DefaultSpeed,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Spawn emits a ring of Burst particles from at, evenly spaced in angle.
func (w *World) Spawn(at Vec2) {
	for i := 0; i < w.Burst; i++ {
		angle := float64(i) * 2 * math.Pi / float64(w.Burst)
		w.Particles = append(w.Particles, &Particle{
			Pos: at,
			Vel: FromAngle(angle, w.Speed),
		})
	}
}

// Step advances every particle by one frame. Each particle moves first,
// then is checked against every square for collision and gravitation in
// order. The returned slice lists the index of the square for every hit
// that should sound; it is reused by the next call.
func (w *World) Step(sounds []int) []int {
	sounds = sounds[:0]
	w.drawn = w.drawn[:0]
	for _, p := range w.Particles {
		p.Move(w.Bounds)
		w.drawn = append(w.drawn, p.Pos)
		for i, s := range w.Squares {
			if _, sound := p.CheckCollision(s, w.Physics, w.rng.Float64); sound {
				sounds = append(sounds, i)
			}
			p.Gravitate(s, w.Physics)
		}
	}
	return sounds
}

// Drawn returns particle positions as they were right after the last
// move, before collisions pushed them out of squares.
func (w *World) Drawn() []Vec2 {
	return w.drawn
}

func (w *World) ToggleSquares() {
	for _, s := range w.Squares {
		s.Toggle()
	}
}

// Reset removes every particle and switches all squares back on.
func (w *World) Reset() {
	w.Particles = nil
	w.drawn = w.drawn[:0]
	for _, s := range w.Squares {
		s.On = true
	}
}
