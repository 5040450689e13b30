package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/texdisplay"
)

type attribute struct {
	location uint32
	size     int32
	typ      uint32
}

type uniform struct {
	location int32
	typ      texdisplay.DataType
}

// Program is a linked shader program together with the vertex array object
// its attribute pointers are recorded in. Core profile needs a bound VAO for
// attribute setup and indexed draws, so Bind binds both.
type Program struct {
	id  uint32
	vao uint32

	attributes map[string]attribute
	uniforms   map[string]uniform
}

// NewProgram compiles and links a vertex/fragment shader pair.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	id, err := createShaderProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	p := &Program{
		id:         id,
		attributes: make(map[string]attribute),
		uniforms:   make(map[string]uniform),
	}
	gl.GenVertexArrays(1, &p.vao)

	logger.Debug("program linked", "program", p.id, "vao", p.vao)
	return p, nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 { return p.id }

// AddAttribute looks up an active attribute and records its layout.
func (p *Program) AddAttribute(name string, size int, typ texdisplay.DataType) error {
	glType, err := glDataType(typ)
	if err != nil {
		return err
	}
	loc := gl.GetAttribLocation(p.id, gl.Str(cString(name)))
	if loc < 0 {
		return fmt.Errorf("%w: %q", texdisplay.ErrUnknownAttribute, name)
	}
	p.attributes[name] = attribute{location: uint32(loc), size: int32(size), typ: glType}
	return nil
}

// AddUniform looks up an active uniform.
func (p *Program) AddUniform(name string, typ texdisplay.DataType) error {
	if typ != texdisplay.Int && typ != texdisplay.Float {
		return fmt.Errorf("%w: uniform %q of type %v", texdisplay.ErrUnsupportedType, name, typ)
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(cString(name)))
	if loc < 0 {
		return fmt.Errorf("%w: %q", texdisplay.ErrUnknownUniform, name)
	}
	p.uniforms[name] = uniform{location: loc, typ: typ}
	return nil
}

// Bind makes the program and its vertex array current.
func (p *Program) Bind() {
	gl.UseProgram(p.id)
	gl.BindVertexArray(p.vao)
}

// SetAttributePointer points the attribute at the bound array buffer.
func (p *Program) SetAttributePointer(name string) error {
	a, ok := p.attributes[name]
	if !ok {
		return fmt.Errorf("%w: %q", texdisplay.ErrUnknownAttribute, name)
	}
	gl.EnableVertexAttribArray(a.location)
	gl.VertexAttribPointerWithOffset(a.location, a.size, a.typ, false, 0, 0)
	return nil
}

// SetUniform sets a registered uniform on the current program.
func (p *Program) SetUniform(name string, value any) error {
	u, ok := p.uniforms[name]
	if !ok {
		return fmt.Errorf("%w: %q", texdisplay.ErrUnknownUniform, name)
	}

	switch u.typ {
	case texdisplay.Int:
		v, err := uniformInt(value)
		if err != nil {
			return fmt.Errorf("uniform %q: %w", name, err)
		}
		gl.Uniform1i(u.location, v)
	case texdisplay.Float:
		v, err := uniformFloat(value)
		if err != nil {
			return fmt.Errorf("uniform %q: %w", name, err)
		}
		gl.Uniform1f(u.location, v)
	}
	return nil
}

// Dispose deletes the program and its vertex array.
func (p *Program) Dispose() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		logger.Debug("program deleted", "program", p.id)
		p.id = 0
	}
}

func uniformInt(value any) (int32, error) {
	switch v := value.(type) {
	case int:
		return int32(v), nil
	case int32:
		return v, nil
	case uint32:
		return int32(v), nil
	default:
		return 0, fmt.Errorf("%w: %T for int uniform", texdisplay.ErrUnsupportedType, value)
	}
}

func uniformFloat(value any) (float32, error) {
	switch v := value.(type) {
	case float32:
		return v, nil
	case float64:
		return float32(v), nil
	default:
		return 0, fmt.Errorf("%w: %T for float uniform", texdisplay.ErrUnsupportedType, value)
	}
}

// cString null-terminates s for the gl string helpers.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", strings.TrimRight(string(log), "\x00"))
	}

	// Detached shaders are freed by the deferred deletes.
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(cString(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, errors.New(strings.TrimRight(string(log), "\x00"))
	}
	return shader, nil
}
