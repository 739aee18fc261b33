package gcolor

import (
	"math"

	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/lucasb-eyer/go-colorful"
)

// Named is a palette color with its display name.
type Named struct {
	Name  string
	Color ARGB8
}

// RGB returns the expanded 8-bit color.
func (n Named) RGB() domain.RGB {
	return n.Color.RGB()
}

func named(name string, r, g, b uint8) Named {
	return Named{Name: name, Color: FromRGB(domain.NewRGB(r, g, b))}
}

// Supported lists the chromatic palette colors in display order. Black, white
// and the two grays are left out.
var Supported = []Named{
	named("Malachite", 0x00, 0xFF, 0x55),
	named("Screamin Green", 0x55, 0xFF, 0x55),
	named("Green", 0x00, 0xFF, 0x00),
	named("Bright Green", 0x55, 0xFF, 0x00),
	named("Spring Bud", 0xAA, 0xFF, 0x00),
	named("Inchworm", 0xAA, 0xFF, 0x55),
	named("Medium Aquamarine", 0x55, 0xFF, 0xAA),
	named("Medium Spring Green", 0x00, 0xFF, 0xAA),
	named("Mint Green", 0xAA, 0xFF, 0xAA),
	named("Celeste", 0xAA, 0xFF, 0xFF),
	named("Electric Blue", 0x55, 0xFF, 0xFF),
	named("Cyan", 0x00, 0xFF, 0xFF),
	named("Tiffany Blue", 0x00, 0xAA, 0xAA),
	named("Cadet Blue", 0x55, 0xAA, 0xAA),
	named("Midnight Green", 0x00, 0x55, 0x55),
	named("Dark Green", 0x00, 0x55, 0x00),
	named("Kelly Green", 0x55, 0xAA, 0x00),
	named("Islamic Green", 0x00, 0xAA, 0x00),
	named("Jaeger Green", 0x00, 0xAA, 0x55),
	named("May Green", 0x55, 0xAA, 0x55),
	named("Brass", 0xAA, 0xAA, 0x55),
	named("Army Green", 0x55, 0x55, 0x00),
	named("Limerick", 0xAA, 0xAA, 0x00),
	named("Pastel Yellow", 0xFF, 0xFF, 0xAA),
	named("Icterine", 0xFF, 0xFF, 0x55),
	named("Yellow", 0xFF, 0xFF, 0x00),
	named("Windsor Tan", 0xAA, 0x55, 0x00),
	named("Chrome Yellow", 0xFF, 0xAA, 0x00),
	named("Rajah", 0xFF, 0xAA, 0x55),
	named("Orange", 0xFF, 0x55, 0x00),
	named("Red", 0xFF, 0x00, 0x00),
	named("Folly", 0xFF, 0x00, 0x55),
	named("Sunset Orange", 0xFF, 0x55, 0x55),
	named("Melon", 0xFF, 0xAA, 0xAA),
	named("Rich Brilliant Lavender", 0xFF, 0xAA, 0xFF),
	named("Brilliant Rose", 0xFF, 0x55, 0xAA),
	named("Shocking Pink", 0xFF, 0x55, 0xFF),
	named("Magenta", 0xFF, 0x00, 0xFF),
	named("Fashion Magenta", 0xFF, 0x00, 0xAA),
	named("Rose Vale", 0xAA, 0x55, 0x55),
	named("Bulgarian Rose", 0x55, 0x00, 0x00),
	named("Dark Candy Apple Red", 0xAA, 0x00, 0x00),
	named("Jazzberry Jam", 0xAA, 0x00, 0x55),
	named("Purple", 0xAA, 0x00, 0xAA),
	named("Vivid Violet", 0xAA, 0x00, 0xFF),
	named("Lavender Indigo", 0xAA, 0x55, 0xFF),
	named("Purpureus", 0xAA, 0x55, 0xAA),
	named("Baby Blue Eyes", 0xAA, 0xAA, 0xFF),
	named("Liberty", 0x55, 0x55, 0xAA),
	named("Indigo", 0x55, 0x00, 0xAA),
	named("Imperial Purple", 0x55, 0x00, 0x55),
	named("Oxford Blue", 0x00, 0x00, 0x55),
	named("Duke Blue", 0x00, 0x00, 0xAA),
	named("Blue", 0x00, 0x00, 0xFF),
	named("Blue Moon", 0x00, 0x55, 0xFF),
	named("Electric Ultramarine", 0x55, 0x00, 0xFF),
	named("Very Light Blue", 0x55, 0x55, 0xFF),
	named("Picton Blue", 0x55, 0xAA, 0xFF),
	named("Vivid Cerulean", 0x00, 0xAA, 0xFF),
	named("Cobalt Blue", 0x00, 0x55, 0xAA),
}

// Achromatic palette entries.
var (
	Black     = named("Black", 0x00, 0x00, 0x00)
	DarkGray  = named("Dark Gray", 0x55, 0x55, 0x55)
	LightGray = named("Light Gray", 0xAA, 0xAA, 0xAA)
	White     = named("White", 0xFF, 0xFF, 0xFF)
)

// All returns the full 64-color palette: the supported colors plus black, white and grays.
func All() []Named {
	all := make([]Named, 0, len(Supported)+4)
	all = append(all, Black, DarkGray, LightGray, White)
	return append(all, Supported...)
}

// Nearest returns the palette color perceptually closest to c (CIE L*a*b* distance).
func Nearest(c domain.RGB, palette []Named) Named {
	target, _ := colorful.MakeColor(c)

	best := Named{}
	bestDist := math.Inf(1)
	for _, n := range palette {
		candidate, _ := colorful.MakeColor(n.RGB())
		if d := target.DistanceLab(candidate); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// NameOf returns the name of the palette color closest to c.
func NameOf(c domain.RGB) string {
	return Nearest(c, All()).Name
}
