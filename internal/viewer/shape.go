package viewer

import (
	"github.com/calder3d/geomview/pkg/geom"
)

// DefaultShapeColors returns the mesh palette used for tessellated shapes.
// Shapes render with muted face colors so hand-built meshes stand out.
func DefaultShapeColors() MeshColors {
	return MeshColors{
		Vertices: [3]float32{0.1, 0.1, 0.1},
		Edges:    [3]float32{0.2, 0.2, 0.2},
		Front:    [3]float32{0.6, 0.6, 0.6},
		Back:     [3]float32{0.4, 0.4, 0.4},
	}
}

// ShapeObject renders a parametric shape. The shape is tessellated into a
// mesh once, at construction; from then on it behaves as a mesh object.
type ShapeObject struct {
	MeshObject
	shape geom.Shape
}

// NewShapeObject tessellates the shape and wraps the result for display.
func NewShapeObject(shape geom.Shape, opts Options) *ShapeObject {
	o := &ShapeObject{
		MeshObject: MeshObject{
			data:   shape.Tessellate(),
			opts:   opts,
			colors: DefaultShapeColors(),
		},
		shape: shape,
	}
	return o
}

// Kind implements Object.
func (o *ShapeObject) Kind() geom.Kind { return geom.KindShape }
