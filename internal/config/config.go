package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/gravity-squares/internal/sim"
)

const (
	WindowWidth  = 960
	WindowHeight = 540 // 16:9

	TPS = 60

	// Particles
	Burst        = sim.DefaultBurst
	Speed        = sim.DefaultSpeed
	Gravity      = sim.DefaultGravity
	Restitution  = sim.DefaultRestitution
	Jitter       = sim.DefaultJitter
	ParticleSize = 3
	SquareSide   = 50.0

	// Audio
	DefaultVolume = 0.0
	SampleRate    = 44100
	SpeakerBuf    = 50 * time.Millisecond
	Attack        = 20 * time.Millisecond
	Peak          = 0.1
	Release       = 8 * time.Second
	Floor         = 0.000001
	BaseGain      = 0.0001
	ScopeSamples  = 1024
)

// Chord is the default set of MIDI notes, one per square, left to right.
var Chord = []int{58, 65, 69, 72}

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Squares SquaresConfig `yaml:"squares"`
	Audio   AudioConfig   `yaml:"audio"`
	Seed    int64         `yaml:"seed"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

type PhysicsConfig struct {
	Burst       int     `yaml:"burst"`
	Speed       float64 `yaml:"speed"`
	Gravity     float64 `yaml:"gravity"`
	Restitution float64 `yaml:"restitution"`
	Jitter      float64 `yaml:"jitter"`
}

type SquaresConfig struct {
	Chord []int   `yaml:"chord"`
	Side  float64 `yaml:"side"`
}

type AudioConfig struct {
	SampleRate int           `yaml:"sample_rate"`
	Buffer     time.Duration `yaml:"buffer"`
	Attack     time.Duration `yaml:"attack"`
	Peak       float64       `yaml:"peak"`
	Release    time.Duration `yaml:"release"`
	Floor      float64       `yaml:"floor"`
	BaseGain   float64       `yaml:"base_gain"`
	Volume     float64       `yaml:"volume"`
	Muted      bool          `yaml:"muted"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			TPS:    TPS,
			Title:  "Gravity Squares - click to spawn, click again to toggle squares",
		},
		Physics: PhysicsConfig{
			Burst:       Burst,
			Speed:       Speed,
			Gravity:     Gravity,
			Restitution: Restitution,
			Jitter:      Jitter,
		},
		Squares: SquaresConfig{
			Chord: append([]int(nil), Chord...),
			Side:  SquareSide,
		},
		Audio: AudioConfig{
			SampleRate: SampleRate,
			Buffer:     SpeakerBuf,
			Attack:     Attack,
			Peak:       Peak,
			Release:    Release,
			Floor:      Floor,
			BaseGain:   BaseGain,
			Volume:     DefaultVolume,
		},
		Seed: 1,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that the values can drive a simulation and a voice bank.
func (c *Config) Validate() error {
	floats := []struct {
		name string
		v    float64
	}{
		{"speed", c.Physics.Speed},
		{"gravity", c.Physics.Gravity},
		{"restitution", c.Physics.Restitution},
		{"jitter", c.Physics.Jitter},
		{"square side", c.Squares.Side},
		{"peak", c.Audio.Peak},
		{"floor", c.Audio.Floor},
		{"base gain", c.Audio.BaseGain},
		{"volume", c.Audio.Volume},
	}
	for _, f := range floats {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %v", ErrInvalidConfig, f.name, f.v)
		}
	}

	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.Window.TPS)
	case c.Physics.Burst <= 0:
		return fmt.Errorf("%w: burst %d", ErrInvalidConfig, c.Physics.Burst)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("%w: gravity %v", ErrInvalidConfig, c.Physics.Gravity)
	case len(c.Squares.Chord) == 0:
		return fmt.Errorf("%w: empty chord", ErrInvalidConfig)
	case c.Squares.Side <= 0:
		return fmt.Errorf("%w: square side %v", ErrInvalidConfig, c.Squares.Side)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.Audio.SampleRate)
	case c.Audio.Buffer <= 0:
		return fmt.Errorf("%w: audio buffer %v", ErrInvalidConfig, c.Audio.Buffer)
	case c.Audio.Attack <= 0 || c.Audio.Release <= c.Audio.Attack:
		return fmt.Errorf("%w: attack %v must be positive and shorter than release %v", ErrInvalidConfig, c.Audio.Attack, c.Audio.Release)
	case c.Audio.Peak <= 0 || c.Audio.Floor <= 0 || c.Audio.BaseGain <= 0:
		return fmt.Errorf("%w: peak, floor and base gain must be positive", ErrInvalidConfig)
	}
	for _, n := range c.Squares.Chord {
		if n < 0 || n > 127 {
			return fmt.Errorf("%w: midi note %d", ErrInvalidConfig, n)
		}
	}
	return nil
}
