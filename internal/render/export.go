package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/isabelacmor/hexwatch/internal/domain"
)

// Scale returns the frame as an image enlarged by factor with nearest-neighbour
// sampling, so each device pixel stays a crisp square.
func Scale(frame *domain.Frame, factor int) *image.RGBA {
	src := frame.Image()
	if factor <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, frame.Width*factor, frame.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes the frame as a PNG enlarged by factor.
func EncodePNG(w io.Writer, frame *domain.Frame, factor int) error {
	if err := png.Encode(w, Scale(frame, factor)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
