package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"
)

// Texture is a 2D RGBA texture. It satisfies texdisplay.Texture; whoever
// creates it disposes it.
type Texture struct {
	id            uint32
	width, height int
}

// NewTexture uploads img. Rows are flipped so the top of the image lands at
// v = 1, matching texture coordinates whose origin is bottom-left.
func NewTexture(img image.Image) (*Texture, error) {
	rgba := flipRows(toRGBA(img))
	b := rgba.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("opengl: empty texture image %v", b)
	}
	return newTexture(b.Dx(), b.Dy(), rgba.Pix), nil
}

// NewEmptyTexture allocates a width x height texture with undefined contents.
func NewEmptyTexture(width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("opengl: invalid texture size %dx%d", width, height)
	}
	return newTexture(width, height, nil), nil
}

func newTexture(width, height int, pix []uint8) *Texture {
	t := &Texture{width: width, height: height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	var ptr unsafe.Pointer
	if len(pix) > 0 {
		ptr = gl.Ptr(pix)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	logger.Debug("texture uploaded", "texture", t.id, "width", width, "height", height)
	return t
}

// ID returns the GL texture name.
func (t *Texture) ID() uint32 { return t.id }

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (width, height int) { return t.width, t.height }

// Bind activates the given texture unit, binds the texture to it and
// returns unit.
func (t *Texture) Bind(unit int) int {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	return unit
}

// Dispose deletes the texture.
func (t *Texture) Dispose() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// toRGBA returns img as a tightly packed RGBA image with origin (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// flipRows returns a copy of img with the rows in reverse order.
func flipRows(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	h := b.Dy()
	rowLen := 4 * b.Dx()
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		dst := out.Pix[(h-1-y)*out.Stride : (h-1-y)*out.Stride+rowLen]
		copy(dst, src)
	}
	return out
}
