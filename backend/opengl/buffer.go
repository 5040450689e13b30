package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/texdisplay"
)

var errEmptyBuffer = errors.New("opengl: empty buffer data")

// Buffer is a static GL buffer object.
type Buffer struct {
	id     uint32
	target uint32
	length int
}

// NewBuffer uploads data with STATIC_DRAW usage. ArrayBuffer takes []float32,
// ElementArrayBuffer takes []uint16. The buffer is left bound.
func NewBuffer(target texdisplay.BufferTarget, data any) (*Buffer, error) {
	glTarget, err := glBufferTarget(target)
	if err != nil {
		return nil, err
	}

	var (
		ptr    unsafe.Pointer
		size   int
		length int
	)
	switch v := data.(type) {
	case []float32:
		if target != texdisplay.ArrayBuffer {
			return nil, fmt.Errorf("%w: []float32 for %v", texdisplay.ErrUnsupportedType, target)
		}
		length, size = len(v), len(v)*4
		if length > 0 {
			ptr = gl.Ptr(v)
		}
	case []uint16:
		if target != texdisplay.ElementArrayBuffer {
			return nil, fmt.Errorf("%w: []uint16 for %v", texdisplay.ErrUnsupportedType, target)
		}
		length, size = len(v), len(v)*2
		if length > 0 {
			ptr = gl.Ptr(v)
		}
	default:
		return nil, fmt.Errorf("%w: buffer data %T", texdisplay.ErrUnsupportedType, data)
	}
	if length == 0 {
		return nil, errEmptyBuffer
	}

	b := &Buffer{target: glTarget, length: length}
	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(b.target, b.id)
	gl.BufferData(b.target, size, ptr, gl.STATIC_DRAW)

	logger.Debug("buffer uploaded", "buffer", b.id, "target", target, "len", length)
	return b, nil
}

// ID returns the GL buffer name.
func (b *Buffer) ID() uint32 { return b.id }

// Bind binds the buffer to its target.
func (b *Buffer) Bind() {
	gl.BindBuffer(b.target, b.id)
}

// Len returns the number of elements uploaded.
func (b *Buffer) Len() int { return b.length }

// Dispose deletes the buffer object.
func (b *Buffer) Dispose() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}
