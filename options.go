package texdisplay

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Config places the quad in the viewport.
//
// Width and Height are half-extent fractions of the viewport: 0.25 makes the
// quad span half the viewport in that direction. Left and Top shift the quad
// away from the top-left corner; a shift of 0.5 moves it by a full viewport
// half, so offsets act at twice the scale of Width and Height.
type Config struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Left   float32 `toml:"left"`
	Top    float32 `toml:"top"`
}

// DefaultConfig returns the default placement: a quarter-size quad anchored
// at the top-left corner.
func DefaultConfig() Config {
	return Config{Width: 0.25, Height: 0.25}
}

// Validate reports whether the config can produce a quad.
// Sizes of 1 or more are allowed and simply push the quad off-surface.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"left", c.Left},
		{"top", c.Top},
	} {
		if math32.IsNaN(f.v) || math32.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidPlacement, f.name, f.v)
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %vx%v must be positive", ErrInvalidPlacement, c.Width, c.Height)
	}
	return nil
}

// Option configures a TextureDisplay.
type Option func(*Config)

// WithSize sets the half-extent fractions.
func WithSize(width, height float32) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithOffset sets the left/top offsets.
func WithOffset(left, top float32) Option {
	return func(c *Config) {
		c.Left = left
		c.Top = top
	}
}

// WithConfig replaces the whole placement, e.g. one decoded from a file.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
