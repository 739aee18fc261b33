package render

import (
	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/gcolor"
)

// Common colors for the preview.
var (
	ColorBlack = domain.NewRGB(0, 0, 0)
	ColorWhite = domain.NewRGB(255, 255, 255)
)

// Options controls how surface colours land on the frame.
type Options struct {
	// Quantize snaps every colour to the 64-colour device palette.
	Quantize bool
	// Dither renders the background as an ordered dither of the palette.
	// Text and boxes are quantized.
	Dither bool
}

func (o Options) color(c domain.RGB) domain.RGB {
	if o.Quantize || o.Dither {
		return gcolor.Quantize(c)
	}
	return c
}

// Brightness returns the mean channel value of c.
func Brightness(c domain.RGB) int {
	return (int(c.R) + int(c.G) + int(c.B)) / 3
}
