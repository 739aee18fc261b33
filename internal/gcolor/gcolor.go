// Package gcolor models the 64-color palette of the watch display.
//
// Each channel keeps only its two high bits, so a color is stored in one
// byte as 0bAARRGGBB. Channel levels are 0x00, 0x55, 0xAA and 0xFF.
package gcolor

import (
	"fmt"

	"github.com/isabelacmor/hexwatch/internal/domain"
)

// Levels are the four 8-bit values a 2-bit channel expands to.
var Levels = [4]uint8{0x00, 0x55, 0xAA, 0xFF}

// ARGB8 is a packed palette color: two bits each of alpha, red, green, blue.
type ARGB8 uint8

// FromRGB packs an 8-bit color, dropping all but the top two bits of each channel.
func FromRGB(c domain.RGB) ARGB8 {
	return ARGB8(0b11<<6 | (c.R>>6)<<4 | (c.G>>6)<<2 | c.B>>6)
}

// R returns the 2-bit red component.
func (a ARGB8) R() uint8 { return uint8(a>>4) & 0b11 }

// G returns the 2-bit green component.
func (a ARGB8) G() uint8 { return uint8(a>>2) & 0b11 }

// B returns the 2-bit blue component.
func (a ARGB8) B() uint8 { return uint8(a) & 0b11 }

// RGB expands the palette color back to 8-bit channels.
func (a ARGB8) RGB() domain.RGB {
	return domain.NewRGB(Levels[a.R()], Levels[a.G()], Levels[a.B()])
}

func (a ARGB8) String() string {
	return fmt.Sprintf("0x%02X", uint8(a))
}

// Quantize maps an 8-bit color onto the nearest-below palette color, the same
// way the display does when it is handed an arbitrary RGB value.
func Quantize(c domain.RGB) domain.RGB {
	return FromRGB(c).RGB()
}
