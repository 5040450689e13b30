package texdisplay

// PlacementOffsets returns the amounts subtracted from x and added to y to
// move an origin-centred plane into place.
//
// With zero offsets the quad's top-left corner sits on the viewport's
// top-left corner. Left and Top are doubled before being applied.
func PlacementOffsets(cfg Config) (offsetLeft, offsetTop float32) {
	planeWidth := 2 * cfg.Width
	planeHeight := 2 * cfg.Height
	offsetLeft = (1 - planeWidth/2) - 2*cfg.Left
	offsetTop = 1 - planeHeight/2 - 2*cfg.Top
	return offsetLeft, offsetTop
}

// PlaceGeometry generates the plane for cfg and moves it into place.
// No clamping is done; large sizes or offsets may leave the viewport.
func PlaceGeometry(cfg Config) PlaneGeometry {
	g := NewPlaneGeometry(2*cfg.Width, 2*cfg.Height)
	offsetLeft, offsetTop := PlacementOffsets(cfg)
	g.Translate(-offsetLeft, offsetTop)
	return g
}

// Bounds returns the NDC rectangle the quad for cfg covers.
func Bounds(cfg Config) Rect {
	return PlaceGeometry(cfg).Bounds()
}
