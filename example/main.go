// Example shows an image in a corner of a window using a TextureDisplay.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Flags:
//
//	-image path    image to show (png, jpeg, gif, bmp, webp); a test pattern otherwise
//	-layout path   TOML file with placement, see layout.go
//	-v             debug logging
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/texdisplay"
	"github.com/go-theft-auto/texdisplay/backend/opengl"
	"github.com/go-theft-auto/texdisplay/internal/pattern"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "texdisplay example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	imagePath := flag.String("image", "", "image to display")
	layoutPath := flag.String("layout", "", "TOML layout file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	texdisplay.SetVerbose(*verbose)
	opengl.SetVerbose(*verbose)

	if err := run(*imagePath, *layoutPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(imagePath, layoutPath string) error {
	l, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}
	if imagePath != "" {
		l.Image = imagePath
	}

	var img image.Image = pattern.Checkerboard(256, 32, color.White, color.RGBA{R: 200, G: 40, B: 40, A: 255})
	if l.Image != "" {
		if img, err = loadImage(l.Image); err != nil {
			return err
		}
	}

	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Width:  windowWidth,
		Height: windowHeight,
		Title:  windowTitle,
		VSync:  true,
	})
	if err != nil {
		return err
	}
	defer window.Close()

	tex, err := opengl.NewTexture(img)
	if err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	defer tex.Dispose()

	display, err := texdisplay.New(opengl.NewDevice(), tex, texdisplay.WithConfig(l.Display))
	if err != nil {
		return fmt.Errorf("texture display: %w", err)
	}
	defer display.Dispose()

	for !window.ShouldClose() {
		glfw.PollEvents()

		window.BeginFrame(0.12, 0.12, 0.14, 1.0)
		if err := display.Render(l.Unit); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
