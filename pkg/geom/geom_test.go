package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNetworkCounts(t *testing.T) {
	n := NewNetwork()
	a := n.AddNode(0, 0, 0)
	b := n.AddNode(1, 0, 0)
	c := n.AddNode(0, 1, 0)
	d := n.AddNode(0, 0, 1)

	for _, e := range [][2]int{{a, b}, {a, c}, {a, d}} {
		if err := n.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	if n.NumNodes() != 4 {
		t.Errorf("expected 4 nodes, got %d", n.NumNodes())
	}
	if n.NumEdges() != 3 {
		t.Errorf("expected 3 edges, got %d", n.NumEdges())
	}
}

func TestNetworkEdgeMissingNode(t *testing.T) {
	n := NewNetwork()
	a := n.AddNode(0, 0, 0)
	if err := n.AddEdge(a, 99); err == nil {
		t.Error("expected error for edge to missing node")
	}
}

func TestMeshEdgesUnique(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)
	c := m.AddVertex(1, 1, 0)
	d := m.AddVertex(0, 1, 0)

	// Two triangles sharing the diagonal a-c.
	if err := m.AddFace(a, b, c); err != nil {
		t.Fatalf("AddFace: %v", err)
	}
	if err := m.AddFace(a, c, d); err != nil {
		t.Fatalf("AddFace: %v", err)
	}

	edges := m.Edges()
	if len(edges) != 5 {
		t.Errorf("expected 5 unique edges, got %d: %v", len(edges), edges)
	}
}

func TestMeshFaceValidation(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)

	if err := m.AddFace(a, b); err == nil {
		t.Error("expected error for 2-vertex face")
	}
	if err := m.AddFace(a, b, 42); err == nil {
		t.Error("expected error for missing vertex id")
	}
}

func TestBoxTessellate(t *testing.T) {
	box := NewBox(2, 4, 6)
	m := box.Tessellate()

	if m.NumVertices() != 8 {
		t.Errorf("expected 8 vertices, got %d", m.NumVertices())
	}
	if m.NumFaces() != 6 {
		t.Errorf("expected 6 faces, got %d", m.NumFaces())
	}
	if len(m.Edges()) != 12 {
		t.Errorf("expected 12 edges, got %d", len(m.Edges()))
	}
	for _, face := range m.Faces() {
		if len(face) != 4 {
			t.Errorf("expected quad face, got %d vertices", len(face))
		}
	}
}

func TestSphereTessellate(t *testing.T) {
	s := NewSphere(mgl32.Vec3{1, 2, 3}, 5)
	m := s.Tessellate()

	// 2 poles + (V-1) rings of U vertices.
	wantVerts := 2 + (sphereSegmentsV-1)*sphereSegmentsU
	if m.NumVertices() != wantVerts {
		t.Errorf("expected %d vertices, got %d", wantVerts, m.NumVertices())
	}

	// 2*U pole triangles + (V-2)*U ring quads.
	tris, quads := 0, 0
	for _, face := range m.Faces() {
		switch len(face) {
		case 3:
			tris++
		case 4:
			quads++
		default:
			t.Fatalf("unexpected face arity %d", len(face))
		}
	}
	if tris != 2*sphereSegmentsU {
		t.Errorf("expected %d pole triangles, got %d", 2*sphereSegmentsU, tris)
	}
	if quads != (sphereSegmentsV-2)*sphereSegmentsU {
		t.Errorf("expected %d ring quads, got %d", (sphereSegmentsV-2)*sphereSegmentsU, quads)
	}

	// Every vertex sits on the sphere.
	for _, id := range m.Vertices() {
		xyz, _ := m.VertexCoord(id)
		dist := xyz.Sub(s.Center).Len()
		if math32.Abs(dist-s.Radius) > 1e-4 {
			t.Fatalf("vertex %d is %f from center, want %f", id, dist, s.Radius)
		}
	}
}

func TestTorusTessellate(t *testing.T) {
	torus := NewTorus(mgl32.Vec3{}, 10, 2)
	m := torus.Tessellate()

	if m.NumVertices() != torusSegmentsU*torusSegmentsV {
		t.Errorf("expected %d vertices, got %d", torusSegmentsU*torusSegmentsV, m.NumVertices())
	}
	if m.NumFaces() != torusSegmentsU*torusSegmentsV {
		t.Errorf("expected %d faces, got %d", torusSegmentsU*torusSegmentsV, m.NumFaces())
	}
	for _, face := range m.Faces() {
		if len(face) != 4 {
			t.Fatalf("expected quad face, got %d vertices", len(face))
		}
	}
}
