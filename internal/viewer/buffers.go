package viewer

import (
	"errors"
	"fmt"

	"github.com/calder3d/geomview/pkg/geom"
)

// ErrUnsupportedGeometry reports a face the renderer cannot triangulate.
// Only triangular and quadrilateral faces are supported.
var ErrUnsupportedGeometry = errors.New("viewer: unsupported geometry")

// bufferSet is the CPU-side form of one draw pass: interleaved-by-buffer
// position and color data, three floats per vertex each. Building happens
// entirely before any GL call so a failed build leaves no GPU allocation.
type bufferSet struct {
	positions []float32
	colors    []float32
}

// vertexCount returns the number of vertices in the set.
func (b bufferSet) vertexCount() int32 {
	return int32(len(b.positions) / 3)
}

func appendVec(dst []float32, x, y, z float32) []float32 {
	return append(dst, x, y, z)
}

// networkNodeBuffers collects one point per network node.
func networkNodeBuffers(n *geom.Network, color [3]float32) bufferSet {
	var set bufferSet
	for _, id := range n.Nodes() {
		xyz, _ := n.NodeCoord(id)
		set.positions = appendVec(set.positions, xyz.X(), xyz.Y(), xyz.Z())
		set.colors = appendVec(set.colors, color[0], color[1], color[2])
	}
	return set
}

// networkEdgeBuffers collects two points per network edge.
func networkEdgeBuffers(n *geom.Network, color [3]float32) bufferSet {
	var set bufferSet
	for _, e := range n.Edges() {
		for _, id := range e {
			xyz, _ := n.NodeCoord(id)
			set.positions = appendVec(set.positions, xyz.X(), xyz.Y(), xyz.Z())
			set.colors = appendVec(set.colors, color[0], color[1], color[2])
		}
	}
	return set
}

// meshVertexBuffers collects one point per mesh vertex.
func meshVertexBuffers(m *geom.Mesh, color [3]float32) bufferSet {
	var set bufferSet
	for _, id := range m.Vertices() {
		xyz, _ := m.VertexCoord(id)
		set.positions = appendVec(set.positions, xyz.X(), xyz.Y(), xyz.Z())
		set.colors = appendVec(set.colors, color[0], color[1], color[2])
	}
	return set
}

// meshEdgeBuffers collects two points per unique mesh edge.
func meshEdgeBuffers(m *geom.Mesh, color [3]float32) bufferSet {
	var set bufferSet
	for _, e := range m.Edges() {
		for _, id := range e {
			xyz, _ := m.VertexCoord(id)
			set.positions = appendVec(set.positions, xyz.X(), xyz.Y(), xyz.Z())
			set.colors = appendVec(set.colors, color[0], color[1], color[2])
		}
	}
	return set
}

// meshFaceBuffers triangulates the mesh faces into a flat triangle list.
// Quads split into (a,b,c),(a,c,d); with reverse set the vertex order of
// each face loop is flipped first, producing the back-facing pass. Any face
// arity other than 3 or 4 fails with ErrUnsupportedGeometry.
func meshFaceBuffers(m *geom.Mesh, color [3]float32, reverse bool) (bufferSet, error) {
	var set bufferSet

	coord := func(id int) (x, y, z float32) {
		xyz, _ := m.VertexCoord(id)
		return xyz.X(), xyz.Y(), xyz.Z()
	}
	emit := func(ids ...int) {
		for _, id := range ids {
			x, y, z := coord(id)
			set.positions = appendVec(set.positions, x, y, z)
			set.colors = appendVec(set.colors, color[0], color[1], color[2])
		}
	}

	for fi, face := range m.Faces() {
		loop := face
		if reverse {
			loop = make([]int, len(face))
			for i, id := range face {
				loop[len(face)-1-i] = id
			}
		}
		switch len(loop) {
		case 3:
			emit(loop[0], loop[1], loop[2])
		case 4:
			emit(loop[0], loop[1], loop[2])
			emit(loop[0], loop[2], loop[3])
		default:
			return bufferSet{}, fmt.Errorf("%w: face %d has %d vertices, want 3 or 4",
				ErrUnsupportedGeometry, fi, len(loop))
		}
	}
	return set, nil
}
