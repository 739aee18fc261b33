package render

import (
	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/isabelacmor/hexwatch/internal/face"
)

// Compose draws the surface onto a new frame sized for the layout's profile.
// Regions are painted in face.Regions order so the battery text lands on the date box.
func Compose(s *face.Surface, layout Layout, opts Options) *domain.Frame {
	size := layout.Profile.Size
	var frame *domain.Frame
	if opts.Dither {
		frame = layout.Profile.NewFrame()
		DitherRect(frame, Rect{0, 0, size.Width, size.Height}, s.Background())
	} else {
		frame = domain.NewFrameWithColor(size.Width, size.Height, opts.color(s.Background()))
	}

	for _, region := range face.Regions {
		slot, ok := layout.Slots[region]
		if !ok {
			continue
		}
		st := s.Region(region)
		if st.HasBox && !slot.Box.Empty() {
			frame.FillRect(slot.Box.X, slot.Box.Y, slot.Box.W, slot.Box.H, opts.color(st.Box))
		}
		if st.Text != "" {
			slot.Style.DrawAligned(frame, st.Text, slot.Box, slot.Align, slot.Inset, opts.color(st.TextColor))
		}
	}

	return frame
}
