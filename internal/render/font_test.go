package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontDimensions(t *testing.T) {
	assert.Equal(t, 5, Block.Width)
	assert.Equal(t, 7, Block.Height)
	assert.Equal(t, 3, Tiny.Width)
	assert.Equal(t, 5, Tiny.Height)
}

func TestGlyph(t *testing.T) {
	// First row of 'A' is 0b01110
	assert.Equal(t, uint8(0b01110), Block.Glyph('A')[0])
}

func TestGlyphUnknown(t *testing.T) {
	assert.Equal(t, Block.Glyph(' '), Block.Glyph('€'))
	assert.False(t, Block.Has('€'))
}

func TestGlyphLowercaseUsesUppercase(t *testing.T) {
	assert.Equal(t, Block.Glyph('Q'), Block.Glyph('q'))
	assert.True(t, Tiny.Has('q'))
}

func TestFaceCharacterSets(t *testing.T) {
	// everything the face writes must be drawable
	for _, font := range []*Font{Block, Tiny} {
		for _, char := range "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ#%.: " {
			assert.True(t, font.Has(char), "%s font missing %q", font.Name, char)
			assert.Len(t, font.Glyph(char), font.Height, "%s font %q", font.Name, char)
		}
	}
}

func TestHasBitSet(t *testing.T) {
	assert.True(t, Block.HasBitSet(0b10000, 0))
	assert.False(t, Block.HasBitSet(0b10000, 1))
	assert.True(t, Tiny.HasBitSet(0b001, 2))
}
