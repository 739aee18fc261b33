package render

import "github.com/isabelacmor/hexwatch/internal/domain"

// Align is the horizontal alignment of text inside its box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Rect is a box on the frame.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// TextStyle is a font drawn at an integer pixel scale.
type TextStyle struct {
	Font  *Font
	Scale int
}

func (s TextStyle) scale() int {
	if s.Scale < 1 {
		return 1
	}
	return s.Scale
}

// Measure returns the width of text in pixels.
func (s TextStyle) Measure(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	f := s.Font
	return (n*f.Width + (n-1)*f.Spacing) * s.scale()
}

// Height returns the height of one line in pixels.
func (s TextStyle) Height() int {
	return s.Font.Height * s.scale()
}

// Draw draws text with its top-left corner at (x, y). Pixels outside the frame are dropped.
func (s TextStyle) Draw(frame *domain.Frame, text string, x, y int, color domain.RGB) {
	f := s.Font
	scale := s.scale()
	advance := (f.Width + f.Spacing) * scale

	currentX := x
	for _, char := range text {
		s.drawChar(frame, f.Glyph(char), currentX, y, scale, color)
		currentX += advance
	}
}

func (s TextStyle) drawChar(frame *domain.Frame, glyph []uint8, x, y, scale int, color domain.RGB) {
	for row, bits := range glyph {
		for col := 0; col < s.Font.Width; col++ {
			if s.Font.HasBitSet(bits, col) {
				frame.FillRect(x+col*scale, y+row*scale, scale, scale, color)
			}
		}
	}
}

// DrawAligned draws text inside box, aligned horizontally and placed inset pixels below the top.
func (s TextStyle) DrawAligned(frame *domain.Frame, text string, box Rect, align Align, inset int, color domain.RGB) {
	x := box.X
	switch align {
	case AlignCenter:
		x = box.X + (box.W-s.Measure(text))/2
	case AlignRight:
		x = box.X + box.W - s.Measure(text) - inset
	case AlignLeft:
		x = box.X + inset
	}
	s.Draw(frame, text, x, box.Y+inset, color)
}
