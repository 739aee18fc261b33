package render

import (
	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/face"
)

// Slot places one face region on the frame. The box is filled with the region's
// box colour and the text is drawn inside it.
type Slot struct {
	Box   Rect
	Style TextStyle
	Align Align
	Inset int
}

// Layout maps face regions to slots for one display profile.
type Layout struct {
	Profile domain.Profile
	Slots   map[face.Region]Slot
}

// LayoutFor returns the layout for p. Unknown profiles get the basalt layout.
func LayoutFor(p domain.Profile) Layout {
	switch p.Name {
	case domain.ProfilePixoo64.Name:
		return pixooLayout(p)
	default:
		return basaltLayout(p)
	}
}

// basaltLayout follows the watch's text layer frames.
func basaltLayout(p domain.Profile) Layout {
	digits := TextStyle{Font: Block, Scale: 4}
	bar := TextStyle{Font: Tiny, Scale: 3}
	return Layout{
		Profile: p,
		Slots: map[face.Region]Slot{
			face.RegionHour:      {Box: Rect{0, 10, 126, 50}, Style: digits, Align: AlignCenter},
			face.RegionMinute:    {Box: Rect{0, 45, 155, 50}, Style: digits, Align: AlignCenter},
			face.RegionSecond:    {Box: Rect{0, 80, 155, 50}, Style: digits, Align: AlignCenter},
			face.RegionColorName: {Box: Rect{0, 118, 144, 20}, Style: TextStyle{Font: Block, Scale: 1}, Align: AlignCenter, Inset: 6},
			face.RegionDate:      {Box: Rect{0, 145, 144, 25}, Style: bar, Align: AlignRight, Inset: 5},
			face.RegionBattery:   {Box: Rect{4, 145, 144, 25}, Style: bar, Align: AlignLeft, Inset: 5},
		},
	}
}

// pixooLayout is the 64x64 rendition. The colour name does not fit and is omitted.
func pixooLayout(p domain.Profile) Layout {
	digits := TextStyle{Font: Block, Scale: 2}
	bar := TextStyle{Font: Tiny, Scale: 1}
	return Layout{
		Profile: p,
		Slots: map[face.Region]Slot{
			face.RegionHour:    {Box: Rect{0, 1, 64, 16}, Style: digits, Align: AlignCenter},
			face.RegionMinute:  {Box: Rect{0, 17, 64, 16}, Style: digits, Align: AlignCenter},
			face.RegionSecond:  {Box: Rect{0, 33, 64, 16}, Style: digits, Align: AlignCenter},
			face.RegionDate:    {Box: Rect{0, 52, 64, 12}, Style: bar, Align: AlignRight, Inset: 3},
			face.RegionBattery: {Box: Rect{1, 52, 64, 12}, Style: bar, Align: AlignLeft, Inset: 3},
		},
	}
}
