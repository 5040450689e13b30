// Package opengl provides an OpenGL 4.1 core backend for texdisplay.
//
// Every call expects a current GL context on the calling thread, created for
// example with OpenWindow.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/texdisplay"
)

// Device issues texdisplay calls against the current GL context.
type Device struct{}

var (
	_ texdisplay.Device  = (*Device)(nil)
	_ texdisplay.Program = (*Program)(nil)
	_ texdisplay.Buffer  = (*Buffer)(nil)
	_ texdisplay.Texture = (*Texture)(nil)
)

// NewDevice returns a device for the current context. gl.Init must have run.
func NewDevice() *Device {
	return &Device{}
}

// NewProgram implements texdisplay.Device.
func (d *Device) NewProgram(vertexSource, fragmentSource string) (texdisplay.Program, error) {
	p, err := NewProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NewBuffer implements texdisplay.Device.
func (d *Device) NewBuffer(target texdisplay.BufferTarget, data any) (texdisplay.Buffer, error) {
	b, err := NewBuffer(target, data)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// DrawElements implements texdisplay.Device.
func (d *Device) DrawElements(mode texdisplay.Primitive, count int, typ texdisplay.DataType, offset int) error {
	glMode, err := glPrimitive(mode)
	if err != nil {
		return err
	}
	glType, err := glDataType(typ)
	if err != nil {
		return err
	}
	gl.DrawElementsWithOffset(glMode, int32(count), glType, uintptr(offset))
	return nil
}

func glPrimitive(mode texdisplay.Primitive) (uint32, error) {
	switch mode {
	case texdisplay.Triangles:
		return gl.TRIANGLES, nil
	default:
		return 0, fmt.Errorf("%w: primitive %d", texdisplay.ErrUnsupportedType, mode)
	}
}

func glDataType(typ texdisplay.DataType) (uint32, error) {
	switch typ {
	case texdisplay.Float:
		return gl.FLOAT, nil
	case texdisplay.Int:
		return gl.INT, nil
	case texdisplay.UnsignedShort:
		return gl.UNSIGNED_SHORT, nil
	default:
		return 0, fmt.Errorf("%w: %v", texdisplay.ErrUnsupportedType, typ)
	}
}

func glBufferTarget(target texdisplay.BufferTarget) (uint32, error) {
	switch target {
	case texdisplay.ArrayBuffer:
		return gl.ARRAY_BUFFER, nil
	case texdisplay.ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER, nil
	default:
		return 0, fmt.Errorf("%w: %v", texdisplay.ErrUnsupportedType, target)
	}
}
