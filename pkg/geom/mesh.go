package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a face-vertex mesh. Faces are ordered vertex-id loops; the viewer
// supports triangular and quadrilateral faces.
type Mesh struct {
	verts  []int
	coords map[int]mgl32.Vec3
	faces  [][]int
	nextID int
}

// NewMesh creates an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{
		coords: make(map[int]mgl32.Vec3),
	}
}

// Kind implements Data.
func (m *Mesh) Kind() Kind { return KindMesh }

// AddVertex adds a vertex at the given position and returns its id.
func (m *Mesh) AddVertex(x, y, z float32) int {
	id := m.nextID
	m.nextID++
	m.verts = append(m.verts, id)
	m.coords[id] = mgl32.Vec3{x, y, z}
	return id
}

// AddFace adds a face from an ordered vertex-id loop.
func (m *Mesh) AddFace(ids ...int) error {
	if len(ids) < 3 {
		return fmt.Errorf("mesh face needs at least 3 vertices, got %d", len(ids))
	}
	for _, id := range ids {
		if _, ok := m.coords[id]; !ok {
			return fmt.Errorf("mesh face: vertex %d does not exist", id)
		}
	}
	face := make([]int, len(ids))
	copy(face, ids)
	m.faces = append(m.faces, face)
	return nil
}

// Vertices returns vertex ids in insertion order.
func (m *Mesh) Vertices() []int { return m.verts }

// Faces returns the face loops in insertion order.
func (m *Mesh) Faces() [][]int { return m.faces }

// VertexCoord returns the position of a vertex.
func (m *Mesh) VertexCoord(id int) (mgl32.Vec3, bool) {
	xyz, ok := m.coords[id]
	return xyz, ok
}

// Edges returns the unique undirected edges of the mesh, derived from its
// faces, in first-seen order.
func (m *Mesh) Edges() [][2]int {
	seen := make(map[[2]int]bool)
	var edges [][2]int
	for _, face := range m.faces {
		for i := range face {
			u := face[i]
			v := face[(i+1)%len(face)]
			key := [2]int{u, v}
			if u > v {
				key = [2]int{v, u}
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, [2]int{u, v})
		}
	}
	return edges
}

// NumVertices returns the vertex count.
func (m *Mesh) NumVertices() int { return len(m.verts) }

// NumFaces returns the face count.
func (m *Mesh) NumFaces() int { return len(m.faces) }
