package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pelletier/go-toml/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/go-theft-auto/texdisplay"
)

// layout is the optional TOML file passed with -layout:
//
//	image = "photo.png"
//	unit = 0
//
//	[display]
//	width = 0.25
//	height = 0.25
//	left = 0
//	top = 0
type layout struct {
	Image   string            `toml:"image"`
	Unit    int               `toml:"unit"`
	Display texdisplay.Config `toml:"display"`
}

func defaultLayout() layout {
	return layout{Display: texdisplay.DefaultConfig()}
}

// loadLayout reads path over the defaults. An empty path yields the defaults.
func loadLayout(path string) (layout, error) {
	l := defaultLayout()
	if path == "" {
		return l, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return l, fmt.Errorf("read layout: %w", err)
	}
	if err := toml.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if l.Unit < 0 {
		return l, errors.New("layout: unit must not be negative")
	}
	if err := l.Display.Validate(); err != nil {
		return l, fmt.Errorf("layout %s: %w", path, err)
	}
	return l, nil
}

// loadImage decodes png, jpeg, gif, bmp or webp.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
