package sim

import "math"

// Physics holds the tunables shared by every particle.
type Physics struct {
	Gravity     float64 // numerator of the inverse-square pull
	Restitution float64 // velocity factor applied on bounce, negated
	Jitter      float64 // max random cross-axis kick on bounce
}

// Reference tuning of the toy.
const (
	DefaultGravity     = 128.0
	DefaultRestitution = 1.01
	DefaultJitter      = 0.02
)

func DefaultPhysics() Physics {
	return Physics{Gravity: DefaultGravity, Restitution: DefaultRestitution, Jitter: DefaultJitter}
}

// Particle is a point mass that wraps around the canvas edges.
type Particle struct {
	Pos Vec2
	Vel Vec2
	Acc Vec2
}

// Move integrates one frame and wraps the position into b.
// Acceleration is consumed and reset to zero.
func (p *Particle) Move(b Bounds) {
	p.Vel = p.Vel.Add(p.Acc)
	p.Pos = p.Pos.Add(p.Vel)
	p.Acc = Vec2{}

	if p.Pos.X < 0 {
		p.Pos.X = b.W
	}
	if p.Pos.X > b.W {
		p.Pos.X = 0
	}
	if p.Pos.Y < 0 {
		p.Pos.Y = b.H
	}
	if p.Pos.Y > b.H {
		p.Pos.Y = 0
	}
}

// CheckCollision bounces p out of s if it is inside. The first return
// value reports a hit, the second whether the square wants to sound.
// rnd must return values in [0, 1).
func (p *Particle) CheckCollision(s *Square, ph Physics, rnd func() float64) (hit, sound bool) {
	if !s.Contains(p.Pos) {
		return false, false
	}
	sound = s.Collide()

	dx := math.Abs(s.Mid.X - p.Pos.X)
	dy := math.Abs(s.Mid.Y - p.Pos.Y)
	if dx > dy {
		p.bounceX(s, ph, rnd)
	} else {
		p.bounceY(s, ph, rnd)
	}
	return true, sound
}

func (p *Particle) bounceX(s *Square, ph Physics, rnd func() float64) {
	p.Vel.X *= -ph.Restitution
	if p.Vel.X > 0 {
		p.Pos.X = s.Pos.X + s.Len
	} else {
		p.Pos.X = s.Pos.X
	}
	p.Vel.Y += (rnd()*2 - 1) * ph.Jitter
}

func (p *Particle) bounceY(s *Square, ph Physics, rnd func() float64) {
	p.Vel.Y *= -ph.Restitution
	if p.Vel.Y > 0 {
		p.Pos.Y = s.Pos.Y + s.Len
	} else {
		p.Pos.Y = s.Pos.Y
	}
	p.Vel.X += (rnd()*2 - 1) * ph.Jitter
}

// Gravitate adds the inverse-square pull toward the center of s.
// A particle sitting exactly on the center feels nothing.
func (p *Particle) Gravitate(s *Square, ph Physics) {
	d := s.Mid.Sub(p.Pos)
	r2 := d.X*d.X + d.Y*d.Y
	if r2 == 0 {
		return
	}
	p.Acc = p.Acc.Add(d.SetMag(ph.Gravity / r2))
}
