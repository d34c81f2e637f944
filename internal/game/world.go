package game

import (
	"github.com/faiface/beep"

	"github.com/iburimskiy/gravity-squares/internal/config"
	"github.com/iburimskiy/gravity-squares/internal/sim"
	"github.com/iburimskiy/gravity-squares/internal/synth"
)

// BuildWorld lays out the squares and physics described by cfg.
func BuildWorld(cfg *config.Config) *sim.World {
	b := sim.Bounds{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}
	ph := sim.Physics{
		Gravity:     cfg.Physics.Gravity,
		Restitution: cfg.Physics.Restitution,
		Jitter:      cfg.Physics.Jitter,
	}
	w := sim.NewWorld(b, ph, sim.LayoutSquares(b, cfg.Squares.Chord, cfg.Squares.Side), cfg.Seed)
	w.Burst = cfg.Physics.Burst
	w.Speed = cfg.Physics.Speed
	return w
}

// BuildBank creates one voice per square of w, panned by the square's center.
func BuildBank(cfg *config.Config, w *sim.World) *synth.Bank {
	tones := make([]synth.Tone, 0, len(w.Squares))
	for _, s := range w.Squares {
		tones = append(tones, synth.Tone{Note: s.Note, Pan: synth.PanFor(s.Mid.X, w.Bounds.W)})
	}
	env := synth.Envelope{
		Attack:  cfg.Audio.Attack,
		Peak:    cfg.Audio.Peak,
		Release: cfg.Audio.Release,
		Floor:   cfg.Audio.Floor,
		Base:    cfg.Audio.BaseGain,
	}
	bank := synth.NewBank(beep.SampleRate(cfg.Audio.SampleRate), tones, env, cfg.Audio.Volume)
	bank.SetMuted(cfg.Audio.Muted)
	return bank
}
