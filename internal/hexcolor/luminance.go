package hexcolor

import (
	"fmt"
	"strings"

	"github.com/isabelacmor/hexwatch/internal/domain"
)

// Thresholds used by the two revisions of the face.
//
// Both are tiny compared with the raw score range (0 to 153), so on raw
// channels AccentDark wins for almost every time of day. They only separate
// colors meaningfully on 2-bit device channels, see ScaleGColor8.
const (
	ThresholdTick = 1.9
	ThresholdTap  = 1.5
)

// Accent is the foreground palette chosen for a background color.
type Accent int

const (
	// AccentDark puts dark gray text on a bright background.
	AccentDark Accent = iota
	// AccentLight puts white text on a dark background.
	AccentLight
)

func (a Accent) String() string {
	switch a {
	case AccentDark:
		return "dark"
	case AccentLight:
		return "light"
	default:
		return fmt.Sprintf("Accent(%d)", int(a))
	}
}

// Scale selects which channel values the score is computed on.
type Scale int

const (
	// ScaleRaw scores the 8-bit channels as computed from the clock digits.
	ScaleRaw Scale = iota
	// ScaleGColor8 scores the 2-bit channels the 64-color watch display keeps
	// (value >> 6), which is what the device itself evaluates.
	ScaleGColor8
)

func (s Scale) String() string {
	switch s {
	case ScaleRaw:
		return "raw"
	case ScaleGColor8:
		return "gcolor8"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// ParseScale parses "raw" or "gcolor8".
func ParseScale(s string) (Scale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return ScaleRaw, nil
	case "gcolor8":
		return ScaleGColor8, nil
	default:
		return ScaleRaw, fmt.Errorf("unknown luminance scale %q (use raw or gcolor8)", s)
	}
}

// Score is a crude red/green weighted brightness: (R + R + B + G + G + G) / 6.
func Score(c domain.RGB) float64 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	return float64(r+r+b+g+g+g) / 6.0
}

// Classifier picks an accent for a background color.
type Classifier struct {
	Threshold float64
	Scale     Scale
}

// NewClassifier returns a raw-scale classifier with the given threshold.
func NewClassifier(threshold float64) Classifier {
	return Classifier{Threshold: threshold, Scale: ScaleRaw}
}

// Score returns the brightness score on the classifier's scale.
func (c Classifier) Score(bg domain.RGB) float64 {
	if c.Scale == ScaleGColor8 {
		bg = domain.NewRGB(bg.R>>6, bg.G>>6, bg.B>>6)
	}
	return Score(bg)
}

// Classify returns AccentDark when the score reaches the threshold, AccentLight otherwise.
func (c Classifier) Classify(bg domain.RGB) Accent {
	if c.Score(bg) >= c.Threshold {
		return AccentDark
	}
	return AccentLight
}
