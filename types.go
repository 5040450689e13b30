package texdisplay

// BufferTarget selects what a GPU buffer is bound as.
type BufferTarget int

const (
	ArrayBuffer        BufferTarget = iota + 1 // Per-vertex attribute data ([]float32)
	ElementArrayBuffer                         // Triangle indices ([]uint16)
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "ArrayBuffer"
	case ElementArrayBuffer:
		return "ElementArrayBuffer"
	default:
		return "BufferTarget(?)"
	}
}

// DataType is the component type of an attribute, uniform or index buffer.
type DataType int

const (
	Float DataType = iota + 1
	Int
	UnsignedShort
)

func (t DataType) String() string {
	switch t {
	case Float:
		return "Float"
	case Int:
		return "Int"
	case UnsignedShort:
		return "UnsignedShort"
	default:
		return "DataType(?)"
	}
}

// Primitive is the topology used by a draw call.
type Primitive int

const (
	Triangles Primitive = iota + 1
)

// Device is the rendering-context handle. A TextureDisplay borrows it for its
// whole lifetime and never releases it.
//
// Calls mutate process-wide binding state (current program, buffer bindings,
// active texture unit). Nothing is saved or restored, so code interleaving its
// own drawing must re-bind whatever it needs afterwards.
type Device interface {
	// NewProgram compiles and links a vertex/fragment shader pair.
	NewProgram(vertexSource, fragmentSource string) (Program, error)

	// NewBuffer uploads data into a new GPU buffer. data must be []float32
	// for ArrayBuffer and []uint16 for ElementArrayBuffer.
	NewBuffer(target BufferTarget, data any) (Buffer, error)

	// DrawElements issues one indexed draw using the bound element buffer.
	DrawElements(mode Primitive, count int, typ DataType, offset int) error
}

// Program wraps a linked shader program.
type Program interface {
	AddAttribute(name string, size int, typ DataType) error
	AddUniform(name string, typ DataType) error

	// Bind makes the program current.
	Bind()

	// SetAttributePointer wires the currently bound array buffer to the
	// named attribute.
	SetAttributePointer(name string) error
	SetUniform(name string, value any) error
	Dispose()
}

// Buffer wraps a single GPU buffer object.
type Buffer interface {
	Bind()
	Dispose()

	// Len returns the number of elements uploaded.
	Len() int
}

// Texture is a caller-owned texture. Bind attaches it to the given texture
// unit and returns the unit index to feed to a sampler uniform.
type Texture interface {
	Bind(unit int) int
}

// Vec2 is a 2D point in normalized device coordinates.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle in normalized device coordinates.
// Y grows upwards, so Min is the bottom-left corner.
type Rect struct {
	Min, Max Vec2
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X < other.Max.X && r.Max.X > other.Min.X &&
		r.Min.Y < other.Max.Y && r.Max.Y > other.Min.Y
}

// Viewport is the full NDC space.
var Viewport = Rect{Min: Vec2{X: -1, Y: -1}, Max: Vec2{X: 1, Y: 1}}
