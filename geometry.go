package texdisplay

// PlaneGeometry holds the flat arrays of an axis-aligned rectangle.
type PlaneGeometry struct {
	Vertices []float32 // x, y, z per vertex
	UVs      []float32 // u, v per vertex
	Indices  []uint16  // two triangles
}

// NewPlaneGeometry returns a width x height rectangle centred at the origin.
// Vertices are ordered top-left, top-right, bottom-left, bottom-right and the
// triangles wind counter-clockwise.
func NewPlaneGeometry(width, height float32) PlaneGeometry {
	hw, hh := width/2, height/2
	return PlaneGeometry{
		Vertices: []float32{
			-hw, hh, 0,
			hw, hh, 0,
			-hw, -hh, 0,
			hw, -hh, 0,
		},
		UVs: []float32{
			0, 1,
			1, 1,
			0, 0,
			1, 0,
		},
		Indices: []uint16{
			0, 2, 1,
			2, 3, 1,
		},
	}
}

// VertexCount returns the number of vertices.
func (g PlaneGeometry) VertexCount() int {
	return len(g.Vertices) / 3
}

// Translate shifts every vertex by (dx, dy) in place.
func (g PlaneGeometry) Translate(dx, dy float32) {
	for i := 0; i+1 < len(g.Vertices); i += 3 {
		g.Vertices[i] += dx
		g.Vertices[i+1] += dy
	}
}

// Bounds returns the rectangle spanned by the vertices.
func (g PlaneGeometry) Bounds() Rect {
	if len(g.Vertices) < 3 {
		return Rect{}
	}
	r := Rect{
		Min: Vec2{X: g.Vertices[0], Y: g.Vertices[1]},
		Max: Vec2{X: g.Vertices[0], Y: g.Vertices[1]},
	}
	for i := 3; i+1 < len(g.Vertices); i += 3 {
		x, y := g.Vertices[i], g.Vertices[i+1]
		r.Min.X = min(r.Min.X, x)
		r.Min.Y = min(r.Min.Y, y)
		r.Max.X = max(r.Max.X, x)
		r.Max.Y = max(r.Max.Y, y)
	}
	return r
}
