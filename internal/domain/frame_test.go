package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRGB(t *testing.T) {
	rgb := NewRGB(255, 128, 64)
	assert.Equal(t, uint8(255), rgb.R)
	assert.Equal(t, uint8(128), rgb.G)
	assert.Equal(t, uint8(64), rgb.B)
}

func TestRGBEquals(t *testing.T) {
	rgb1 := NewRGB(100, 150, 200)
	rgb2 := NewRGB(100, 150, 200)
	rgb3 := NewRGB(100, 150, 201)

	assert.True(t, rgb1.Equals(rgb2))
	assert.False(t, rgb1.Equals(rgb3))
}

func TestRGBString(t *testing.T) {
	rgb := NewRGB(255, 128, 64)
	assert.Equal(t, "RGB(255, 128, 64)", rgb.String())
}

func TestNewFrame(t *testing.T) {
	frame := NewFrame(64, 64)

	assert.Equal(t, 64, frame.Width)
	assert.Equal(t, 64, frame.Height)
	assert.Equal(t, 64*64*BytesPerPixel, len(frame.Pixels))
}

func TestNewFrameWithColor(t *testing.T) {
	red := NewRGB(255, 0, 0)
	frame := NewFrameWithColor(8, 8, red)

	assert.Equal(t, 8, frame.Width)
	assert.Equal(t, 8, frame.Height)

	// Check all pixels are red
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pixel := frame.GetPixel(x, y)
			require.NotNil(t, pixel)
			assert.True(t, pixel.Equals(red), "Pixel at (%d, %d) should be red", x, y)
		}
	}
}

func TestFrameSetGetPixel(t *testing.T) {
	frame := NewFrame(8, 8)
	blue := NewRGB(0, 0, 255)

	frame.SetPixel(3, 5, blue)
	pixel := frame.GetPixel(3, 5)

	require.NotNil(t, pixel)
	assert.True(t, pixel.Equals(blue))
}

func TestFrameSetPixelOutOfBounds(t *testing.T) {
	frame := NewFrame(8, 8)
	blue := NewRGB(0, 0, 255)

	// Should not panic, silently ignore out of bounds
	frame.SetPixel(-1, 0, blue)
	frame.SetPixel(0, -1, blue)
	frame.SetPixel(8, 0, blue)
	frame.SetPixel(0, 8, blue)
	frame.SetPixel(100, 100, blue)
}

func TestFrameGetPixelOutOfBounds(t *testing.T) {
	frame := NewFrame(8, 8)

	assert.Nil(t, frame.GetPixel(-1, 0))
	assert.Nil(t, frame.GetPixel(0, -1))
	assert.Nil(t, frame.GetPixel(8, 0))
	assert.Nil(t, frame.GetPixel(0, 8))
	assert.Nil(t, frame.GetPixel(100, 100))
}

func TestFrameFill(t *testing.T) {
	frame := NewFrame(4, 4)
	green := NewRGB(0, 255, 0)

	frame.Fill(green)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			pixel := frame.GetPixel(x, y)
			require.NotNil(t, pixel)
			assert.True(t, pixel.Equals(green), "Pixel at (%d, %d) should be green", x, y)
		}
	}
}

func TestFrameFillRect(t *testing.T) {
	frame := NewFrame(10, 10)
	yellow := NewRGB(255, 255, 0)

	frame.FillRect(1, 1, 3, 2, yellow)

	// Check filled area
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 3; x++ {
			assert.True(t, frame.GetPixel(x, y).Equals(yellow), "Pixel at (%d, %d) should be yellow", x, y)
		}
	}

	// Check outside area is still black
	black := NewRGB(0, 0, 0)
	assert.True(t, frame.GetPixel(0, 0).Equals(black))
	assert.True(t, frame.GetPixel(4, 1).Equals(black))
}

func TestBytesPerPixel(t *testing.T) {
	assert.Equal(t, 3, BytesPerPixel)
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#140509", NewRGB(0x14, 0x05, 0x09).Hex())
	assert.Equal(t, "#FFFFFF", NewRGB(255, 255, 255).Hex())
}

func TestRGBImplementsColor(t *testing.T) {
	r, g, b, a := NewRGB(255, 0, 128).RGBA()

	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0x8080), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestFrameImage(t *testing.T) {
	frame := NewFrame(3, 2)
	frame.SetPixel(2, 1, NewRGB(10, 20, 30))

	img := frame.Image()

	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	px := img.RGBAAt(2, 1)
	assert.Equal(t, uint8(10), px.R)
	assert.Equal(t, uint8(20), px.G)
	assert.Equal(t, uint8(30), px.B)
	assert.Equal(t, uint8(255), px.A)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).R)
}
