package texdisplay_test

import (
	"fmt"

	"github.com/go-theft-auto/texdisplay"
)

// fakeDevice records binding state the way a GL context would.
type fakeDevice struct {
	nextID int
	calls  []string

	currentProgram *fakeProgram
	arrayBinding   *fakeBuffer
	elementBinding *fakeBuffer
	activeUnit     int
	unitTextures   map[int]*fakeTexture

	programs []*fakeProgram
	buffers  []*fakeBuffer
	draws    []drawCall

	failProgram   error
	failBufferNth int // 1-based; 0 disables
	failDraw      error
}

type drawCall struct {
	mode   texdisplay.Primitive
	count  int
	typ    texdisplay.DataType
	offset int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{unitTextures: make(map[int]*fakeTexture)}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) NewProgram(vertexSource, fragmentSource string) (texdisplay.Program, error) {
	if d.failProgram != nil {
		return nil, d.failProgram
	}
	d.nextID++
	p := &fakeProgram{
		device:         d,
		id:             d.nextID,
		vertexSource:   vertexSource,
		fragmentSource: fragmentSource,
		attributes:     make(map[string]int),
		uniforms:       make(map[string]texdisplay.DataType),
		uniformValues:  make(map[string]any),
		pointers:       make(map[string]*fakeBuffer),
	}
	d.programs = append(d.programs, p)
	d.record("program.new")
	return p, nil
}

func (d *fakeDevice) NewBuffer(target texdisplay.BufferTarget, data any) (texdisplay.Buffer, error) {
	if d.failBufferNth > 0 && len(d.buffers)+1 == d.failBufferNth {
		return nil, fmt.Errorf("out of memory")
	}
	d.nextID++
	b := &fakeBuffer{device: d, id: d.nextID, target: target}
	switch v := data.(type) {
	case []float32:
		b.floats = append([]float32(nil), v...)
		b.length = len(v)
	case []uint16:
		b.indices = append([]uint16(nil), v...)
		b.length = len(v)
	default:
		return nil, texdisplay.ErrUnsupportedType
	}
	d.buffers = append(d.buffers, b)
	d.record("buffer.new %s", target)
	return b, nil
}

func (d *fakeDevice) DrawElements(mode texdisplay.Primitive, count int, typ texdisplay.DataType, offset int) error {
	if d.failDraw != nil {
		return d.failDraw
	}
	d.draws = append(d.draws, drawCall{mode: mode, count: count, typ: typ, offset: offset})
	d.record("draw %d", count)
	return nil
}

type fakeProgram struct {
	device         *fakeDevice
	id             int
	vertexSource   string
	fragmentSource string
	attributes     map[string]int
	uniforms       map[string]texdisplay.DataType
	uniformValues  map[string]any
	pointers       map[string]*fakeBuffer
	disposed       bool
}

func (p *fakeProgram) AddAttribute(name string, size int, typ texdisplay.DataType) error {
	p.attributes[name] = size
	return nil
}

func (p *fakeProgram) AddUniform(name string, typ texdisplay.DataType) error {
	p.uniforms[name] = typ
	return nil
}

func (p *fakeProgram) Bind() {
	p.device.currentProgram = p
	p.device.record("program.bind")
}

func (p *fakeProgram) SetAttributePointer(name string) error {
	if _, ok := p.attributes[name]; !ok {
		return texdisplay.ErrUnknownAttribute
	}
	p.pointers[name] = p.device.arrayBinding
	p.device.record("pointer %s", name)
	return nil
}

func (p *fakeProgram) SetUniform(name string, value any) error {
	if _, ok := p.uniforms[name]; !ok {
		return texdisplay.ErrUnknownUniform
	}
	p.uniformValues[name] = value
	p.device.record("uniform %s=%v", name, value)
	return nil
}

func (p *fakeProgram) Dispose() {
	p.disposed = true
	p.device.record("program.dispose")
}

type fakeBuffer struct {
	device   *fakeDevice
	id       int
	target   texdisplay.BufferTarget
	floats   []float32
	indices  []uint16
	length   int
	disposed bool
}

func (b *fakeBuffer) Bind() {
	if b.target == texdisplay.ElementArrayBuffer {
		b.device.elementBinding = b
	} else {
		b.device.arrayBinding = b
	}
	b.device.record("buffer.bind %d", b.id)
}

func (b *fakeBuffer) Dispose() {
	b.disposed = true
	b.device.record("buffer.dispose %d", b.id)
}

func (b *fakeBuffer) Len() int { return b.length }

type fakeTexture struct {
	device *fakeDevice
	handle int
}

func (t *fakeTexture) Bind(unit int) int {
	t.device.activeUnit = unit
	t.device.unitTextures[unit] = t
	t.device.record("texture.bind %d", unit)
	return unit
}
