package opengl_test

import (
	"image/color"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/texdisplay"
	"github.com/go-theft-auto/texdisplay/backend/opengl"
	"github.com/go-theft-auto/texdisplay/internal/pattern"
)

// withContext runs fn with a hidden window's context current. The tests need
// a display and a GL 4.1 driver, so they only run with TEXDISPLAY_GL_TESTS=1.
func withContext(t *testing.T, fn func()) {
	t.Helper()
	if os.Getenv("TEXDISPLAY_GL_TESTS") != "1" {
		t.Skip("set TEXDISPLAY_GL_TESTS=1 to run OpenGL tests")
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  64,
		Height: 64,
		Title:  "texdisplay-test",
		Hidden: true,
	})
	require.NoError(t, err)
	defer window.Close()

	fn()
}

func TestRenderBindsContextState(t *testing.T) {
	withContext(t, func() {
		tex, err := opengl.NewEmptyTexture(512, 512)
		require.NoError(t, err)
		defer tex.Dispose()

		d, err := texdisplay.New(opengl.NewDevice(), tex)
		require.NoError(t, err)
		defer d.Dispose()

		require.NoError(t, d.Render(1))

		program := d.Program().(*opengl.Program)
		_, uvs, faces := d.Buffers()

		state := opengl.QueryState()
		assert.Equal(t, 1, state.ActiveTexture)
		assert.Equal(t, tex.ID(), state.Texture2D)
		assert.Equal(t, program.ID(), state.Program)
		assert.Equal(t, uvs.(*opengl.Buffer).ID(), state.ArrayBuffer)
		assert.Equal(t, faces.(*opengl.Buffer).ID(), state.ElementArrayBuffer)
		assert.Equal(t, 6, faces.Len())
	})
}

func TestDisposeKeepsTexture(t *testing.T) {
	withContext(t, func() {
		tex, err := opengl.NewTexture(pattern.Checkerboard(32, 8, color.White, color.Black))
		require.NoError(t, err)
		defer tex.Dispose()

		d, err := texdisplay.New(opengl.NewDevice(), tex, texdisplay.WithSize(0.5, 0.5))
		require.NoError(t, err)
		require.NoError(t, d.Render(0))

		programID := d.Program().(*opengl.Program).ID()
		vertices, uvs, faces := d.Buffers()
		bufferIDs := []uint32{
			vertices.(*opengl.Buffer).ID(),
			uvs.(*opengl.Buffer).ID(),
			faces.(*opengl.Buffer).ID(),
		}

		d.Dispose()

		assert.False(t, opengl.IsProgram(programID))
		for _, id := range bufferIDs {
			assert.False(t, opengl.IsBuffer(id))
		}
		assert.NotZero(t, tex.ID())
		assert.True(t, opengl.IsTexture(tex.ID()))
	})
}

func TestProgramRejectsUnknownNames(t *testing.T) {
	withContext(t, func() {
		p, err := opengl.NewProgram(`
#version 410 core
in vec3 position;
void main() { gl_Position = vec4(position, 1.0); }
`, `
#version 410 core
out vec4 fragColor;
void main() { fragColor = vec4(1.0); }
`)
		require.NoError(t, err)
		defer p.Dispose()

		require.NoError(t, p.AddAttribute("position", 3, texdisplay.Float))
		assert.ErrorIs(t, p.AddAttribute("missing", 2, texdisplay.Float), texdisplay.ErrUnknownAttribute)
		assert.ErrorIs(t, p.AddUniform("missing", texdisplay.Int), texdisplay.ErrUnknownUniform)
		assert.ErrorIs(t, p.SetAttributePointer("uv"), texdisplay.ErrUnknownAttribute)
	})
}

func TestProgramCompileError(t *testing.T) {
	withContext(t, func() {
		_, err := opengl.NewProgram("#version 410 core\nvoid main() { nope }", "#version 410 core\nvoid main() {}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vertex shader compilation failed")
	})
}
