// Package pattern generates placeholder texture images.
package pattern

import (
	"image"
	"image/color"
)

// Checkerboard returns a size x size image of cell-sized squares alternating
// between a and b, starting with a in the top-left corner.
func Checkerboard(size, cell int, a, b color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cell <= 0 {
		cell = 1
	}
	ca := color.RGBAModel.Convert(a).(color.RGBA)
	cb := color.RGBAModel.Convert(b).(color.RGBA)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, ca)
			} else {
				img.SetRGBA(x, y, cb)
			}
		}
	}
	return img
}

// Corners returns a size x size image whose quadrants are red (top-left),
// green (top-right), blue (bottom-left) and white (bottom-right). Useful to
// check orientation on screen.
func Corners(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var c color.RGBA
			switch {
			case x < half && y < half:
				c = color.RGBA{R: 255, A: 255}
			case y < half:
				c = color.RGBA{G: 255, A: 255}
			case x < half:
				c = color.RGBA{B: 255, A: 255}
			default:
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
