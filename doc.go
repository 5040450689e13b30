/*
Package texdisplay draws a texture on a single quad placed in a fixed region
of the viewport. It is meant for debug views: showing a shadow map, a render
target or a font atlas in a corner of the screen.

# Quick Start

	window, _ := opengl.OpenWindow(opengl.WindowConfig{Width: 800, Height: 600, Title: "demo"})
	defer window.Close()

	tex, _ := opengl.NewTexture(img)
	defer tex.Dispose()

	display, err := texdisplay.New(opengl.NewDevice(), tex,
	    texdisplay.WithSize(0.25, 0.25),
	    texdisplay.WithOffset(0, 0),
	)
	if err != nil {
	    return err
	}
	defer display.Dispose()

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    window.BeginFrame(0, 0, 0, 1)
	    display.Render(0)
	    window.SwapBuffers()
	}

# Placement

All values are in normalized device coordinates, where the viewport spans
[-1, 1] on both axes.

	Width, Height   half-extent fractions; 0.25 covers half the viewport
	Left, Top       shift away from the top-left corner, applied doubled

With zero offsets the quad's top-left corner sits on the viewport's top-left
corner. Left = 0.25 moves it right by 0.5 in NDC, i.e. a quarter of the
viewport width. Nothing is clamped: large sizes or offsets simply push the
quad off-surface. Placement is computed once in New.

# Ownership

The Device and the Texture belong to the caller. A TextureDisplay owns one
Program and three Buffers (vertices, uvs, faces) and releases them in Dispose,
in that order. Dispose never touches the texture.

If New fails part-way, resources created before the failure are not released.

# Binding state

Render binds the program, the vertex and uv buffers (wired to the position
and uv attributes), the index buffer and the texture on the requested unit,
then issues one indexed triangle draw with 16-bit indices. Previous bindings
are not saved or restored; other rendering code sharing the context must
re-bind what it needs. All calls are synchronous and must happen on the
thread owning the context.

# Debug Logging

SetVerbose(true) enables slog debug records for construction and disposal.
backend/opengl has its own SetVerbose for program, buffer and texture events.
*/
package texdisplay
