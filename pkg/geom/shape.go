package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default angular resolution for curved shapes.
const (
	sphereSegmentsU = 16 // around the equator
	sphereSegmentsV = 16 // pole to pole
	torusSegmentsU  = 16 // around the axis
	torusSegmentsV  = 16 // around the pipe
)

// Box is an axis-aligned box centered at Center.
type Box struct {
	Center               mgl32.Vec3
	Width, Height, Depth float32
}

// NewBox creates a box with the given dimensions centered at the origin.
func NewBox(width, height, depth float32) *Box {
	return &Box{Width: width, Height: height, Depth: depth}
}

// Kind implements Data.
func (b *Box) Kind() Kind { return KindShape }

// Tessellate returns the box as a mesh of 8 vertices and 6 quad faces
// with outward-facing winding.
func (b *Box) Tessellate() *Mesh {
	hw := b.Width / 2
	hh := b.Height / 2
	hd := b.Depth / 2
	c := b.Center

	m := NewMesh()
	var ids [8]int
	corners := [8][3]float32{
		{-hw, -hh, -hd}, {+hw, -hh, -hd}, {+hw, +hh, -hd}, {-hw, +hh, -hd},
		{-hw, -hh, +hd}, {+hw, -hh, +hd}, {+hw, +hh, +hd}, {-hw, +hh, +hd},
	}
	for i, p := range corners {
		ids[i] = m.AddVertex(c.X()+p[0], c.Y()+p[1], c.Z()+p[2])
	}
	quads := [6][4]int{
		{0, 3, 2, 1}, // bottom (z-)
		{4, 5, 6, 7}, // top (z+)
		{0, 1, 5, 4}, // front
		{1, 2, 6, 5}, // right
		{2, 3, 7, 6}, // back
		{3, 0, 4, 7}, // left
	}
	for _, q := range quads {
		m.AddFace(ids[q[0]], ids[q[1]], ids[q[2]], ids[q[3]])
	}
	return m
}

// Sphere is a sphere defined by center and radius.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// NewSphere creates a sphere.
func NewSphere(center mgl32.Vec3, radius float32) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Kind implements Data.
func (s *Sphere) Kind() Kind { return KindShape }

// Tessellate returns a UV sphere: triangle fans at the poles and quad rings
// in between.
func (s *Sphere) Tessellate() *Mesh {
	m := NewMesh()
	c := s.Center
	r := s.Radius

	top := m.AddVertex(c.X(), c.Y(), c.Z()+r)
	bottom := m.AddVertex(c.X(), c.Y(), c.Z()-r)

	// Interior rings, v = 1 .. V-1 from the top pole.
	rings := make([][]int, 0, sphereSegmentsV-1)
	for v := 1; v < sphereSegmentsV; v++ {
		phi := math32.Pi * float32(v) / sphereSegmentsV
		ring := make([]int, 0, sphereSegmentsU)
		for u := 0; u < sphereSegmentsU; u++ {
			theta := 2 * math32.Pi * float32(u) / sphereSegmentsU
			x := c.X() + r*math32.Sin(phi)*math32.Cos(theta)
			y := c.Y() + r*math32.Sin(phi)*math32.Sin(theta)
			z := c.Z() + r*math32.Cos(phi)
			ring = append(ring, m.AddVertex(x, y, z))
		}
		rings = append(rings, ring)
	}

	first := rings[0]
	last := rings[len(rings)-1]
	for u := 0; u < sphereSegmentsU; u++ {
		un := (u + 1) % sphereSegmentsU
		m.AddFace(top, first[u], first[un])
		m.AddFace(bottom, last[un], last[u])
	}
	for v := 0; v < len(rings)-1; v++ {
		for u := 0; u < sphereSegmentsU; u++ {
			un := (u + 1) % sphereSegmentsU
			m.AddFace(rings[v][u], rings[v+1][u], rings[v+1][un], rings[v][un])
		}
	}
	return m
}

// Torus is a torus around an axis through Center parallel to Z.
type Torus struct {
	Center     mgl32.Vec3
	RadiusAxis float32 // distance from center to the middle of the pipe
	RadiusPipe float32 // radius of the pipe
}

// NewTorus creates a torus.
func NewTorus(center mgl32.Vec3, radiusAxis, radiusPipe float32) *Torus {
	return &Torus{Center: center, RadiusAxis: radiusAxis, RadiusPipe: radiusPipe}
}

// Kind implements Data.
func (t *Torus) Kind() Kind { return KindShape }

// Tessellate returns the torus as a closed grid of quad faces.
func (t *Torus) Tessellate() *Mesh {
	m := NewMesh()
	c := t.Center

	grid := make([][]int, torusSegmentsU)
	for u := 0; u < torusSegmentsU; u++ {
		theta := 2 * math32.Pi * float32(u) / torusSegmentsU
		grid[u] = make([]int, torusSegmentsV)
		for v := 0; v < torusSegmentsV; v++ {
			phi := 2 * math32.Pi * float32(v) / torusSegmentsV
			d := t.RadiusAxis + t.RadiusPipe*math32.Cos(phi)
			x := c.X() + d*math32.Cos(theta)
			y := c.Y() + d*math32.Sin(theta)
			z := c.Z() + t.RadiusPipe*math32.Sin(phi)
			grid[u][v] = m.AddVertex(x, y, z)
		}
	}
	for u := 0; u < torusSegmentsU; u++ {
		un := (u + 1) % torusSegmentsU
		for v := 0; v < torusSegmentsV; v++ {
			vn := (v + 1) % torusSegmentsV
			m.AddFace(grid[u][v], grid[un][v], grid[un][vn], grid[u][vn])
		}
	}
	return m
}
