// Package geom provides the geometry data structures the viewer consumes:
// node/edge networks, vertex/face meshes, and parametric shapes that can be
// tessellated into meshes. The viewer only reads this data; it never
// mutates it.
package geom

// Kind identifies the closed set of geometry kinds the viewer can display.
type Kind int

const (
	KindNetwork Kind = iota
	KindMesh
	KindShape
)

// String returns the kind name for logs.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindMesh:
		return "mesh"
	case KindShape:
		return "shape"
	default:
		return "unknown"
	}
}

// Data is the common interface of all displayable geometry.
type Data interface {
	Kind() Kind
}

// Shape is a parametric solid that can be approximated by a mesh.
type Shape interface {
	Data
	Tessellate() *Mesh
}
