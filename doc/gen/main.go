// Command gen renders a few texture display placements offscreen, captures
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/texdisplay"
	"github.com/go-theft-auto/texdisplay/backend/opengl"
	"github.com/go-theft-auto/texdisplay/internal/pattern"
)

const (
	shotWidth  = 400
	shotHeight = 300
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single placement to capture.
type screenshot struct {
	name string
	cfg  texdisplay.Config
}

func run() error {
	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  shotWidth,
		Height: shotHeight,
		Title:  "screenshot-gen",
		Hidden: true,
	})
	if err != nil {
		return err
	}
	defer window.Close()

	tex, err := opengl.NewTexture(pattern.Corners(128))
	if err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	defer tex.Dispose()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "default", cfg: texdisplay.DefaultConfig()},
		{name: "offset", cfg: texdisplay.Config{Width: 0.25, Height: 0.25, Left: 0.25, Top: 0.25}},
		{name: "wide", cfg: texdisplay.Config{Width: 1, Height: 0.2, Top: 0.4}},
		{name: "oversized", cfg: texdisplay.Config{Width: 1.5, Height: 1.5}},
	}

	device := opengl.NewDevice()
	for _, s := range shots {
		if err := capture(device, tex, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg bounds=%+v\n", s.name, texdisplay.Bounds(s.cfg))
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(device *opengl.Device, tex *opengl.Texture, s screenshot, outDir string) error {
	// Fresh display per screenshot; placement is fixed at construction.
	display, err := texdisplay.New(device, tex, texdisplay.WithConfig(s.cfg))
	if err != nil {
		return err
	}
	defer display.Dispose()

	gl.Viewport(0, 0, shotWidth, shotHeight)
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if err := display.Render(0); err != nil {
		return err
	}

	// Read pixels
	pixels := make([]byte, shotWidth*shotHeight*4)
	gl.ReadPixels(0, 0, shotWidth, shotHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := shotWidth * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < shotHeight/2; y++ {
		top := y * rowLen
		bot := (shotHeight - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, shotWidth, shotHeight))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
