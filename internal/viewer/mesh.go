package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/calder3d/geomview/pkg/geom"
)

// MeshColors are the pass colors of a mesh object.
type MeshColors struct {
	Vertices [3]float32
	Edges    [3]float32
	Front    [3]float32
	Back     [3]float32
}

// DefaultMeshColors returns the standard mesh palette.
func DefaultMeshColors() MeshColors {
	return MeshColors{
		Vertices: [3]float32{0.1, 0.1, 0.1},
		Edges:    [3]float32{0.2, 0.2, 0.2},
		Front:    [3]float32{0.8, 0.8, 0.8},
		Back:     [3]float32{1.0, 0.5, 0.7},
	}
}

// MeshObject renders a face-vertex mesh in four passes: points, lines, and
// front/back triangle lists. The back pass holds the same faces with the
// winding reversed and its own color, so inward-facing geometry stays
// visible under back-face culling.
type MeshObject struct {
	data   *geom.Mesh
	opts   Options
	colors MeshColors

	vertices pass
	edges    pass
	front    pass
	back     pass
	ready    bool
}

// NewMeshObject wraps a mesh for display.
func NewMeshObject(data *geom.Mesh, opts Options) *MeshObject {
	return &MeshObject{
		data:   data,
		opts:   opts,
		colors: DefaultMeshColors(),
	}
}

// Kind implements Object.
func (o *MeshObject) Kind() geom.Kind { return geom.KindMesh }

// SetColors overrides the default palette. Effective before Init only;
// buffers snapshot the colors at upload.
func (o *MeshObject) SetColors(c MeshColors) {
	o.colors = c
}

// Init builds all four buffer sets, then uploads them. The CPU-side build
// completes before the first GL call, so a triangulation failure leaves no
// partial GPU allocation.
func (o *MeshObject) Init() error {
	frontSet, err := meshFaceBuffers(o.data, o.colors.Front, false)
	if err != nil {
		return err
	}
	backSet, err := meshFaceBuffers(o.data, o.colors.Back, true)
	if err != nil {
		return err
	}
	vertexSet := meshVertexBuffers(o.data, o.colors.Vertices)
	edgeSet := meshEdgeBuffers(o.data, o.colors.Edges)

	o.front = newPass(gl.TRIANGLES, frontSet)
	o.back = newPass(gl.TRIANGLES, backSet)
	o.vertices = newPass(gl.POINTS, vertexSet)
	o.edges = newPass(gl.LINES, edgeSet)
	o.ready = true
	return nil
}

// Draw implements Object. The selection highlight wraps only the face
// passes: the uniform is raised before the front draw and dropped right
// after the back draw.
func (o *MeshObject) Draw(p *program) {
	if !o.ready {
		return
	}
	if o.opts.ShowFaces {
		if o.opts.Selected {
			gl.Uniform1i(p.locSelected, 1)
		}
		o.front.draw()
		o.back.draw()
		if o.opts.Selected {
			gl.Uniform1i(p.locSelected, 0)
		}
	}
	if o.opts.ShowEdges {
		o.edges.draw()
	}
	if o.opts.ShowVertices {
		o.vertices.draw()
	}
}

// Release frees the object's GPU resources.
func (o *MeshObject) Release() {
	o.front.release()
	o.back.release()
	o.vertices.release()
	o.edges.release()
	o.ready = false
}
