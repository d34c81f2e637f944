package sim

// Square is a stationary attractor that also emits a tone when hit while on.
type Square struct {
	Pos  Vec2 // top-left corner
	Len  float64
	Mid  Vec2
	Note int // MIDI note number
	On   bool
}

func NewSquare(pos Vec2, side float64, note int) *Square {
	return &Square{
		Pos:  pos,
		Len:  side,
		Mid:  Vec2{pos.X + side/2, pos.Y + side/2},
		Note: note,
		On:   true,
	}
}

// Contains reports whether p lies strictly inside the square.
func (s *Square) Contains(p Vec2) bool {
	return p.X > s.Pos.X && p.X < s.Pos.X+s.Len &&
		p.Y > s.Pos.Y && p.Y < s.Pos.Y+s.Len
}

// Collide registers a particle hit and reports whether it should sound.
func (s *Square) Collide() bool {
	return s.On
}

func (s *Square) Toggle() {
	s.On = !s.On
}

// LayoutSquares places one square per chord note along the horizontal
// midline, centered on the inner column lines of len(chord)+1 columns.
func LayoutSquares(b Bounds, chord []int, side float64) []*Square {
	colW := b.W / float64(len(chord)+1)
	squares := make([]*Square, 0, len(chord))
	for i, note := range chord {
		x := float64(i+1)*colW - side/2
		y := b.H/2 - side/2
		squares = append(squares, NewSquare(Vec2{x, y}, side, note))
	}
	return squares
}
