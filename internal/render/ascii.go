package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/isabelacmor/hexwatch/internal/domain"
)

// ASCIILegend explains the shading characters used by WriteASCII.
const ASCIILegend = "Legend: █=bright ▓=medium ▒=dim ░=faint ·=very dim (space)=off"

// WriteASCII renders the frame as shaded text. When maxWidth is positive and the
// frame is wider, columns and rows are sampled down to fit.
func WriteASCII(w io.Writer, frame *domain.Frame, maxWidth int) error {
	step := 1
	if maxWidth > 0 {
		for frame.Width/step > maxWidth {
			step++
		}
	}
	cols := (frame.Width + step - 1) / step

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "   ┌%s┐\n", strings.Repeat("─", cols))

	for y := 0; y < frame.Height; y += step {
		fmt.Fprintf(bw, "%3d│", y)
		for x := 0; x < frame.Width; x += step {
			bw.WriteString(shade(frame.GetPixel(x, y)))
		}
		bw.WriteString("│\n")
	}

	fmt.Fprintf(bw, "   └%s┘\n", strings.Repeat("─", cols))
	return bw.Flush()
}

func shade(pixel *domain.RGB) string {
	if pixel == nil {
		return " "
	}
	switch brightness := Brightness(*pixel); {
	case brightness > 200:
		return "█"
	case brightness > 150:
		return "▓"
	case brightness > 100:
		return "▒"
	case brightness > 50:
		return "░"
	case brightness > 10:
		return "·"
	default:
		return " "
	}
}
