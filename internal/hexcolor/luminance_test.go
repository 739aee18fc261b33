package hexcolor

import (
	"testing"

	"github.com/isabelacmor/hexwatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	assert.InDelta(t, 10.6666, Score(domain.NewRGB(20, 5, 9)), 0.001)
	assert.Equal(t, 0.0, Score(domain.NewRGB(0, 0, 0)))
	assert.Equal(t, 153.0, Score(domain.NewRGB(153, 153, 153)))
}

func TestScoreDoesNotOverflow(t *testing.T) {
	assert.Equal(t, 255.0, Score(domain.NewRGB(255, 255, 255)))
}

func TestClassifyRaw(t *testing.T) {
	c := NewClassifier(ThresholdTick)

	assert.Equal(t, AccentDark, c.Classify(domain.NewRGB(20, 5, 9)))
	assert.Equal(t, AccentLight, c.Classify(domain.NewRGB(0, 0, 0)))
	// 00:00:09 -> (0, 0, 9): score 1.5
	assert.Equal(t, AccentLight, c.Classify(domain.NewRGB(0, 0, 9)))
	// 00:00:12 -> (0, 0, 18): score 3
	assert.Equal(t, AccentDark, c.Classify(domain.NewRGB(0, 0, 18)))
}

func TestClassifyThresholdIsInclusive(t *testing.T) {
	c := NewClassifier(ThresholdTap)

	// score exactly 1.5
	assert.Equal(t, AccentDark, c.Classify(domain.NewRGB(0, 0, 9)))
	assert.Equal(t, AccentLight, c.Classify(domain.NewRGB(0, 0, 8)))
}

func TestClassifyGColor8(t *testing.T) {
	c := Classifier{Threshold: ThresholdTap, Scale: ScaleGColor8}

	// May green (0x55, 0xAA, 0x55) keeps channels (1, 2, 1): score 1.5.
	mayGreen := domain.NewRGB(0x55, 0xAA, 0x55)
	assert.Equal(t, 1.5, c.Score(mayGreen))
	assert.Equal(t, AccentDark, c.Classify(mayGreen))

	// 14:05:09 -> (20, 5, 9) quantizes to (0, 0, 0).
	assert.Equal(t, AccentLight, c.Classify(domain.NewRGB(20, 5, 9)))

	// 23:59:59 -> (0x23, 0x59, 0x59) = (35, 89, 89) -> (0, 1, 1): score 0.66
	assert.Equal(t, AccentLight, c.Classify(domain.NewRGB(0x23, 0x59, 0x59)))
}

func TestParseScale(t *testing.T) {
	s, err := ParseScale("raw")
	require.NoError(t, err)
	assert.Equal(t, ScaleRaw, s)

	s, err = ParseScale("GColor8")
	require.NoError(t, err)
	assert.Equal(t, ScaleGColor8, s)

	s, err = ParseScale("")
	require.NoError(t, err)
	assert.Equal(t, ScaleRaw, s)

	_, err = ParseScale("wcag")
	assert.Error(t, err)
}

func TestAccentString(t *testing.T) {
	assert.Equal(t, "dark", AccentDark.String())
	assert.Equal(t, "light", AccentLight.String())
	assert.Equal(t, "Accent(7)", Accent(7).String())
}

func TestScaleString(t *testing.T) {
	assert.Equal(t, "raw", ScaleRaw.String())
	assert.Equal(t, "gcolor8", ScaleGColor8.String())
}
