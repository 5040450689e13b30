package opengl

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/texdisplay"
)

func TestCString(t *testing.T) {
	assert.Equal(t, "position\x00", cString("position"))
	assert.Equal(t, "uv\x00", cString("uv\x00"))
	assert.Equal(t, "\x00", cString(""))
}

func TestGLEnums(t *testing.T) {
	typ, err := glDataType(texdisplay.UnsignedShort)
	require.NoError(t, err)
	assert.EqualValues(t, gl.UNSIGNED_SHORT, typ)

	typ, err = glDataType(texdisplay.Float)
	require.NoError(t, err)
	assert.EqualValues(t, gl.FLOAT, typ)

	_, err = glDataType(texdisplay.DataType(99))
	assert.ErrorIs(t, err, texdisplay.ErrUnsupportedType)

	mode, err := glPrimitive(texdisplay.Triangles)
	require.NoError(t, err)
	assert.EqualValues(t, gl.TRIANGLES, mode)

	target, err := glBufferTarget(texdisplay.ElementArrayBuffer)
	require.NoError(t, err)
	assert.EqualValues(t, gl.ELEMENT_ARRAY_BUFFER, target)

	_, err = glBufferTarget(texdisplay.BufferTarget(0))
	assert.ErrorIs(t, err, texdisplay.ErrUnsupportedType)
}

func TestUniformConversion(t *testing.T) {
	i, err := uniformInt(3)
	require.NoError(t, err)
	assert.Equal(t, int32(3), i)

	_, err = uniformInt(1.5)
	assert.ErrorIs(t, err, texdisplay.ErrUnsupportedType)

	f, err := uniformFloat(0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f)

	_, err = uniformFloat("x")
	assert.ErrorIs(t, err, texdisplay.ErrUnsupportedType)
}

func TestNewBufferRejectsBadData(t *testing.T) {
	_, err := NewBuffer(texdisplay.ArrayBuffer, []uint16{0, 1, 2})
	assert.ErrorIs(t, err, texdisplay.ErrUnsupportedType)

	_, err = NewBuffer(texdisplay.ElementArrayBuffer, []float32{0})
	assert.ErrorIs(t, err, texdisplay.ErrUnsupportedType)

	_, err = NewBuffer(texdisplay.ArrayBuffer, []int{1})
	assert.ErrorIs(t, err, texdisplay.ErrUnsupportedType)

	_, err = NewBuffer(texdisplay.ArrayBuffer, []float32{})
	assert.ErrorIs(t, err, errEmptyBuffer)
}

func TestToRGBAAndFlip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 12, 22))
	src.Set(10, 20, color.NRGBA{R: 255, A: 255}) // top-left red
	src.Set(11, 21, color.NRGBA{B: 255, A: 255}) // bottom-right blue

	rgba := toRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 2, 2), rgba.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, rgba.RGBAAt(1, 1))

	flipped := flipRows(rgba)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, flipped.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, flipped.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, rgba.RGBAAt(0, 0), "source is untouched")
}

func TestToRGBAKeepsPackedImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, src, toRGBA(src))
}
