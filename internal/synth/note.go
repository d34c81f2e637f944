package synth

import "math"

// NoteFreq returns the equal-tempered frequency in Hz of a MIDI note, A4 (69) = 440Hz.
func NoteFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// PanFor maps a horizontal position across a surface of the given width
// to a stereo pan in [-1, 1], left edge to right edge.
func PanFor(x, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return clamp((x/width)*2-1, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
