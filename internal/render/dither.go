package render

import (
	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/gcolor"
)

// bayer4 is the 4x4 ordered dither matrix.
var bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// DitherRect fills r with c, dithered per channel onto the four device levels.
// Colours already on the palette come out solid.
func DitherRect(frame *domain.Frame, r Rect, c domain.RGB) {
	if q := gcolor.Quantize(c); q.Equals(c) {
		frame.FillRect(r.X, r.Y, r.W, r.H, q)
		return
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			t := (float64(bayer4[y&3][x&3]) + 0.5) / 16
			frame.SetPixel(x, y, domain.NewRGB(
				ditherChannel(c.R, t),
				ditherChannel(c.G, t),
				ditherChannel(c.B, t),
			))
		}
	}
}

func ditherChannel(v uint8, t float64) uint8 {
	pos := float64(v) / 85
	lo := int(pos)
	if lo >= len(gcolor.Levels)-1 {
		return gcolor.Levels[len(gcolor.Levels)-1]
	}
	if pos-float64(lo) > t {
		lo++
	}
	return gcolor.Levels[lo]
}
