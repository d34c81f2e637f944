package synth

import (
	"math"
	"sort"
)

type rampKind int

const (
	rampNone rampKind = iota
	rampLinear
	rampExponential
)

type paramEvent struct {
	kind rampKind
	t    float64 // seconds
	v    float64
}

// Param is a value automated over time. Events are kept in time order; a
// ramp event interpolates from the event before it up to its own time and
// value, and the value holds after the last event.
type Param struct {
	def    float64
	events []paramEvent
}

func NewParam(def float64) *Param {
	return &Param{def: def}
}

func (p *Param) insert(e paramEvent) {
	i := sort.Search(len(p.events), func(i int) bool { return p.events[i].t > e.t })
	p.events = append(p.events, paramEvent{})
	copy(p.events[i+1:], p.events[i:])
	p.events[i] = e
}

// SetValueAtTime jumps to v at time t.
func (p *Param) SetValueAtTime(v, t float64) {
	p.insert(paramEvent{kind: rampNone, t: t, v: v})
}

// LinearRampToValueAtTime ramps linearly from the previous event to v, reaching it at t.
func (p *Param) LinearRampToValueAtTime(v, t float64) {
	p.insert(paramEvent{kind: rampLinear, t: t, v: v})
}

// ExponentialRampToValueAtTime ramps geometrically from the previous event
// to v, reaching it at t. A ramp between values of different sign, or
// from or to zero, holds the starting value until t.
func (p *Param) ExponentialRampToValueAtTime(v, t float64) {
	p.insert(paramEvent{kind: rampExponential, t: t, v: v})
}

// CancelScheduledValues drops every event at or after t.
func (p *Param) CancelScheduledValues(t float64) {
	i := sort.Search(len(p.events), func(i int) bool { return p.events[i].t >= t })
	p.events = p.events[:i]
}

// CancelAndHoldAtTime freezes the param at its current value at t and
// discards every event, past or future. Later queries must not go back
// before t.
func (p *Param) CancelAndHoldAtTime(t float64) {
	v := p.ValueAt(t)
	p.events = p.events[:0]
	p.SetValueAtTime(v, t)
}

// Len returns the number of scheduled events.
func (p *Param) Len() int {
	return len(p.events)
}

// ValueAt evaluates the automation at time t.
func (p *Param) ValueAt(t float64) float64 {
	// index of the first event strictly after t
	i := sort.Search(len(p.events), func(i int) bool { return p.events[i].t > t })

	t0, v0 := 0.0, p.def
	if i > 0 {
		t0, v0 = p.events[i-1].t, p.events[i-1].v
	}
	if i == len(p.events) {
		return v0
	}

	next := p.events[i]
	span := next.t - t0
	if span <= 0 {
		return v0
	}
	frac := (t - t0) / span

	switch next.kind {
	case rampLinear:
		return v0 + (next.v-v0)*frac
	case rampExponential:
		if v0*next.v <= 0 {
			return v0
		}
		return v0 * math.Pow(next.v/v0, frac)
	default:
		return v0
	}
}
