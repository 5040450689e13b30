package texdisplay

import "fmt"

// Attribute and uniform names used by the display program.
const (
	AttrPosition   = "position"
	AttrUV         = "uv"
	UniformSampler = "textureSampler"
)

const vertexShaderSource = `
#version 410 core
in vec3 position;
in vec2 uv;

out vec2 vUv;

void main() {
    vUv = uv;
    gl_Position = vec4(position, 1.0);
}
`

const fragmentShaderSource = `
#version 410 core
uniform sampler2D textureSampler;

in vec2 vUv;

out vec4 fragColor;

void main() {
    fragColor = texture(textureSampler, vUv);
}
`

// TextureDisplay draws a texture on a quad placed in a fixed region of the
// viewport. It owns its program and buffers; the device and the texture stay
// with the caller.
//
// Lifecycle is New, any number of Render calls, then one Dispose.
type TextureDisplay struct {
	device  Device
	texture Texture

	program  Program
	vertices Buffer
	uvs      Buffer
	faces    Buffer

	disposed bool
}

// New builds the program and uploads the placed quad.
//
// If a step fails, resources created by earlier steps are not released.
func New(device Device, texture Texture, opts ...Option) (*TextureDisplay, error) {
	cfg := buildConfig(opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	program, err := device.NewProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	if err := program.AddAttribute(AttrPosition, 3, Float); err != nil {
		return nil, fmt.Errorf("add attribute %q: %w", AttrPosition, err)
	}
	if err := program.AddAttribute(AttrUV, 2, Float); err != nil {
		return nil, fmt.Errorf("add attribute %q: %w", AttrUV, err)
	}
	if err := program.AddUniform(UniformSampler, Int); err != nil {
		return nil, fmt.Errorf("add uniform %q: %w", UniformSampler, err)
	}

	plane := PlaceGeometry(cfg)

	d := &TextureDisplay{
		device:  device,
		texture: texture,
		program: program,
	}
	if d.vertices, err = device.NewBuffer(ArrayBuffer, plane.Vertices); err != nil {
		return nil, fmt.Errorf("failed to upload vertices: %w", err)
	}
	if d.uvs, err = device.NewBuffer(ArrayBuffer, plane.UVs); err != nil {
		return nil, fmt.Errorf("failed to upload uvs: %w", err)
	}
	if d.faces, err = device.NewBuffer(ElementArrayBuffer, plane.Indices); err != nil {
		return nil, fmt.Errorf("failed to upload faces: %w", err)
	}

	logger.Debug("texture display created",
		"width", cfg.Width, "height", cfg.Height,
		"left", cfg.Left, "top", cfg.Top,
		"bounds", plane.Bounds())

	return d, nil
}

// Render draws the quad with the texture bound to the given unit.
// Binding state is left as Render set it.
func (d *TextureDisplay) Render(unit int) error {
	if d.disposed {
		return ErrDisposed
	}

	d.program.Bind()
	d.vertices.Bind()
	if err := d.program.SetAttributePointer(AttrPosition); err != nil {
		return err
	}
	d.uvs.Bind()
	if err := d.program.SetAttributePointer(AttrUV); err != nil {
		return err
	}
	d.faces.Bind()

	if err := d.program.SetUniform(UniformSampler, d.texture.Bind(unit)); err != nil {
		return err
	}

	return d.device.DrawElements(Triangles, d.faces.Len(), UnsignedShort, 0)
}

// Dispose releases the program and the three buffers. The texture is left
// alone. Calling Dispose again does nothing.
func (d *TextureDisplay) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true

	d.program.Dispose()
	d.vertices.Dispose()
	d.uvs.Dispose()
	d.faces.Dispose()

	logger.Debug("texture display disposed")
}

// Program returns the owned shader program.
func (d *TextureDisplay) Program() Program { return d.program }

// Buffers returns the owned vertex, uv and face buffers.
func (d *TextureDisplay) Buffers() (vertices, uvs, faces Buffer) {
	return d.vertices, d.uvs, d.faces
}

// Texture returns the texture passed to New.
func (d *TextureDisplay) Texture() Texture { return d.texture }
