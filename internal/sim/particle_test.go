package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func half() float64 { return 0.5 }

func TestMoveAppliesAndResetsAcceleration(t *testing.T) {
	p := &Particle{Pos: Vec2{10, 10}, Vel: Vec2{1, 0}, Acc: Vec2{0.5, 2}}
	p.Move(Bounds{100, 100})

	assert.Equal(t, Vec2{1.5, 2}, p.Vel)
	assert.Equal(t, Vec2{11.5, 12}, p.Pos)
	assert.Equal(t, Vec2{}, p.Acc)
}

func TestMoveWrapsAround(t *testing.T) {
	b := Bounds{W: 200, H: 100}
	tests := []struct {
		name string
		pos  Vec2
		vel  Vec2
		want Vec2
	}{
		{"left edge", Vec2{1, 50}, Vec2{-2, 0}, Vec2{200, 50}},
		{"right edge", Vec2{199, 50}, Vec2{2, 0}, Vec2{0, 50}},
		{"top edge", Vec2{50, 1}, Vec2{0, -2}, Vec2{50, 100}},
		{"bottom edge", Vec2{50, 99}, Vec2{0, 2}, Vec2{50, 0}},
		{"corner", Vec2{1, 99}, Vec2{-3, 3}, Vec2{200, 0}},
		{"on edge stays", Vec2{198, 98}, Vec2{2, 2}, Vec2{200, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Particle{Pos: tt.pos, Vel: tt.vel}
			p.Move(b)
			assert.Equal(t, tt.want, p.Pos)
			assert.Equal(t, tt.vel, p.Vel, "wrap must not touch velocity")
		})
	}
}

func TestMoveKeepsInsideBounds(t *testing.T) {
	b := Bounds{W: 320, H: 180}
	p := &Particle{Pos: Vec2{160, 90}, Vel: Vec2{7.3, -11.9}}
	for i := 0; i < 1000; i++ {
		p.Move(b)
		assert.True(t, p.Pos.X >= 0 && p.Pos.X <= b.W, "x out of bounds: %v", p.Pos.X)
		assert.True(t, p.Pos.Y >= 0 && p.Pos.Y <= b.H, "y out of bounds: %v", p.Pos.Y)
	}
}

func TestCheckCollisionMiss(t *testing.T) {
	s := NewSquare(Vec2{100, 100}, 50, 60)
	for _, pos := range []Vec2{{90, 120}, {100, 120}, {150, 120}, {120, 100}, {120, 150}} {
		p := &Particle{Pos: pos, Vel: Vec2{1, 1}}
		hit, sound := p.CheckCollision(s, DefaultPhysics(), half)
		assert.False(t, hit, "pos %v", pos)
		assert.False(t, sound)
		assert.Equal(t, pos, p.Pos)
	}
}

func TestCheckCollisionHorizontal(t *testing.T) {
	s := NewSquare(Vec2{100, 100}, 50, 60)

	// entering from the left, moving right
	p := &Particle{Pos: Vec2{102, 124}, Vel: Vec2{2, 0.1}}
	hit, sound := p.CheckCollision(s, DefaultPhysics(), func() float64 { return 1 })
	assert.True(t, hit)
	assert.True(t, sound)
	assert.InDelta(t, -2.02, p.Vel.X, 1e-12)
	assert.Equal(t, 100.0, p.Pos.X)
	assert.InDelta(t, 0.12, p.Vel.Y, 1e-12)

	// entering from the right, moving left
	p = &Particle{Pos: Vec2{148, 126}, Vel: Vec2{-2, 0}}
	p.CheckCollision(s, DefaultPhysics(), func() float64 { return 0 })
	assert.InDelta(t, 2.02, p.Vel.X, 1e-12)
	assert.Equal(t, 150.0, p.Pos.X)
	assert.InDelta(t, -0.02, p.Vel.Y, 1e-12)
}

func TestCheckCollisionVertical(t *testing.T) {
	s := NewSquare(Vec2{100, 100}, 50, 60)

	p := &Particle{Pos: Vec2{124, 101}, Vel: Vec2{0, 3}}
	hit, _ := p.CheckCollision(s, DefaultPhysics(), half)
	assert.True(t, hit)
	assert.InDelta(t, -3.03, p.Vel.Y, 1e-12)
	assert.Equal(t, 100.0, p.Pos.Y)
	assert.Equal(t, 0.0, p.Vel.X)

	// equal distances resolve vertically
	p = &Particle{Pos: Vec2{135, 135}, Vel: Vec2{0, -1}}
	p.CheckCollision(s, DefaultPhysics(), half)
	assert.InDelta(t, 1.01, p.Vel.Y, 1e-12)
	assert.Equal(t, 150.0, p.Pos.Y)
}

func TestCheckCollisionSilentWhenOff(t *testing.T) {
	s := NewSquare(Vec2{0, 0}, 10, 60)
	s.Toggle()
	p := &Particle{Pos: Vec2{5, 1}, Vel: Vec2{0, 1}}
	hit, sound := p.CheckCollision(s, DefaultPhysics(), half)
	assert.True(t, hit, "off squares still bounce")
	assert.False(t, sound)
}

func TestGravitateInverseSquare(t *testing.T) {
	s := NewSquare(Vec2{90, -10}, 20, 60) // mid at (100, 0)
	p := &Particle{Pos: Vec2{0, 0}}
	p.Gravitate(s, DefaultPhysics())
	assert.InDelta(t, 128.0/10000, p.Acc.X, 1e-12)
	assert.InDelta(t, 0, p.Acc.Y, 1e-12)

	// accumulates across squares
	p.Gravitate(s, DefaultPhysics())
	assert.InDelta(t, 2*128.0/10000, p.Acc.X, 1e-12)
}

func TestGravitateDirection(t *testing.T) {
	s := NewSquare(Vec2{-5, -5}, 10, 60) // mid at origin
	p := &Particle{Pos: Vec2{3, 4}}
	p.Gravitate(s, DefaultPhysics())
	mag := 128.0 / 25
	assert.InDelta(t, -0.6*mag, p.Acc.X, 1e-12)
	assert.InDelta(t, -0.8*mag, p.Acc.Y, 1e-12)
}

func TestGravitateAtCenterIsFinite(t *testing.T) {
	s := NewSquare(Vec2{0, 0}, 10, 60)
	p := &Particle{Pos: s.Mid}
	p.Gravitate(s, DefaultPhysics())
	assert.False(t, math.IsNaN(p.Acc.X) || math.IsInf(p.Acc.X, 0))
	assert.Equal(t, Vec2{}, p.Acc)
}
