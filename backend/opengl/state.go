package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// State is a snapshot of the bindings a texture display touches.
type State struct {
	ActiveTexture      int // unit index, not the TEXTURE0-based enum
	Texture2D          uint32
	Program            uint32
	VertexArray        uint32
	ArrayBuffer        uint32
	ElementArrayBuffer uint32
}

// QueryState reads the current bindings from the context.
func QueryState() State {
	var activeTexture, texture2D, program, vao, arrayBuffer, elementBuffer int32
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &activeTexture)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &texture2D)
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &program)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &vao)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &arrayBuffer)
	gl.GetIntegerv(gl.ELEMENT_ARRAY_BUFFER_BINDING, &elementBuffer)

	return State{
		ActiveTexture:      int(activeTexture) - gl.TEXTURE0,
		Texture2D:          uint32(texture2D),
		Program:            uint32(program),
		VertexArray:        uint32(vao),
		ArrayBuffer:        uint32(arrayBuffer),
		ElementArrayBuffer: uint32(elementBuffer),
	}
}

// IsProgram reports whether id names a live program object.
func IsProgram(id uint32) bool { return gl.IsProgram(id) }

// IsBuffer reports whether id names a live buffer object.
func IsBuffer(id uint32) bool { return gl.IsBuffer(id) }

// IsTexture reports whether id names a live texture object.
func IsTexture(id uint32) bool { return gl.IsTexture(id) }
