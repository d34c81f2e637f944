package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/gravity-squares/internal/config"
)

var (
	background = color.RGBA{A: 255}
	particleC  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	squareOn   = color.RGBA{R: 255, G: 20, B: 147, A: 255} // deeppink
	squareOff  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

const scopeHeight = 48

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	off := float32(config.ParticleSize-1) / 2
	for _, p := range g.world.Drawn() {
		vector.DrawFilledRect(screen, float32(p.X)-off, float32(p.Y)-off, config.ParticleSize, config.ParticleSize, particleC, false)
	}

	for _, s := range g.world.Squares {
		c := squareOn
		if !s.On {
			c = squareOff
		}
		vector.DrawFilledRect(screen, float32(s.Pos.X), float32(s.Pos.Y), float32(s.Len), float32(s.Len), c, false)
	}

	g.drawScope(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

// drawScope plots the most recent mono output along the bottom edge,
// tinted by elapsed time.
func (g *Game) drawScope(screen *ebiten.Image) {
	if g.audio == nil || g.muted {
		return
	}
	g.scope = g.audio.Tap().Snapshot(g.scope, config.ScopeSamples)
	if len(g.scope) < 2 {
		return
	}

	w := float64(g.cfg.Window.Width)
	mid := float64(g.cfg.Window.Height) - scopeHeight/2 - 4
	c := scopeTint(g.frames)

	step := w / float64(len(g.scope)-1)
	var px, py float64
	for i, s := range g.scope {
		// output peaks near 0.4 with every voice at full gain
		level := clamp01((s[0]+s[1])*1.25 + 0.5)
		x := float64(i) * step
		y := mid + (0.5-level)*scopeHeight
		if i > 0 {
			vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 1, c, false)
		}
		px, py = x, y
	}
}

func (g *Game) status() string {
	var s string
	switch {
	case !g.running:
		s = "Click to spawn particles | O: open scene | Esc/Q: quit"
	case g.paused:
		s = fmt.Sprintf("Paused %s | Space: resume", formatElapsed(g.frames, g.cfg.Window.TPS))
	default:
		on := 0
		for _, sq := range g.world.Squares {
			if sq.On {
				on++
			}
		}
		s = fmt.Sprintf("%s | %d particles | %d/%d squares on | click: toggle, Space: pause, M: mute, R: reset",
			formatElapsed(g.frames, g.cfg.Window.TPS), len(g.world.Particles), on, len(g.world.Squares))
	}
	if g.audio == nil {
		s += " | no audio"
	} else if g.muted {
		s += " | muted"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

// scopeTint cycles the scope hue half a degree per frame.
func scopeTint(frames int) color.RGBA {
	r, g, b := colorful.Hsv(math.Mod(float64(frames)*0.5, 360), 0.6, 0.9).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 180}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// formatElapsed formats a frame count at tps as MM:SS.
func formatElapsed(frames, tps int) string {
	if tps <= 0 {
		return "00:00"
	}
	d := time.Duration(frames) * time.Second / time.Duration(tps)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
