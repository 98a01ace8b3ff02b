package common

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolidTexture(t *testing.T) {
	tex := SolidTexture(10, 20, 30, 255)
	assert.Equal(t, uint32(1), tex.Width)
	assert.Equal(t, uint32(1), tex.Height)
	assert.Equal(t, []byte{10, 20, 30, 255}, tex.Pixels)
}

func TestCheckerTexture(t *testing.T) {
	white := [4]byte{255, 255, 255, 255}
	black := [4]byte{0, 0, 0, 255}
	tex := CheckerTexture(4, 2, white, black)
	require.Equal(t, uint32(4), tex.Width)
	require.Len(t, tex.Pixels, 4*4*4)

	at := func(x, y uint32) [4]byte {
		i := (y*4 + x) * 4
		return [4]byte{tex.Pixels[i], tex.Pixels[i+1], tex.Pixels[i+2], tex.Pixels[i+3]}
	}

	// 2x2 pixel squares: top-left square is c0, its right neighbor c1.
	assert.Equal(t, white, at(0, 0))
	assert.Equal(t, white, at(1, 1))
	assert.Equal(t, black, at(2, 0))
	assert.Equal(t, black, at(0, 2))
	assert.Equal(t, white, at(2, 2))
}

func TestDecodeTextureBytes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	tex, err := DecodeTextureBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint32(2), tex.Width)
	assert.Equal(t, uint32(1), tex.Height)
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 255, 0, 255}, tex.Pixels)
}

func TestDecodeTextureBytesRejectsGarbage(t *testing.T) {
	_, err := DecodeTextureBytes([]byte("not an image"))
	assert.Error(t, err)
}

func TestDecodeTextureFileMissing(t *testing.T) {
	_, err := DecodeTextureFile("does_not_exist.png")
	assert.Error(t, err)
}
