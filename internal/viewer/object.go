package viewer

import (
	"fmt"

	"github.com/calder3d/geomview/pkg/geom"
)

// Object pairs a piece of external geometry with its GPU buffers and draw
// logic. Init takes a static snapshot of the geometry; later mutations of
// the underlying data are not picked up.
type Object interface {
	Kind() geom.Kind

	// Init uploads the geometry snapshot and builds the per-pass vertex
	// arrays. Requires a current GL context. On error no GPU resources
	// remain allocated.
	Init() error

	// Draw issues the object's draw calls. Requires Init to have succeeded.
	Draw(p *program)

	// Release frees the object's GPU resources.
	Release()
}

// Options control how an object is displayed.
type Options struct {
	Name         string
	Selected     bool
	ShowVertices bool
	ShowEdges    bool
	ShowFaces    bool
}

// defaultOptions shows every pass.
func defaultOptions() Options {
	return Options{
		ShowVertices: true,
		ShowEdges:    true,
		ShowFaces:    true,
	}
}

// Option customizes the display of an added object.
type Option func(*Options)

// WithName attaches a display name, used in logs.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithSelected marks the object selected, drawing its faces in the
// highlight color.
func WithSelected() Option {
	return func(o *Options) { o.Selected = true }
}

// WithoutVertices hides the vertex pass.
func WithoutVertices() Option {
	return func(o *Options) { o.ShowVertices = false }
}

// WithoutEdges hides the edge pass.
func WithoutEdges() Option {
	return func(o *Options) { o.ShowEdges = false }
}

// WithoutFaces hides the face passes.
func WithoutFaces() Option {
	return func(o *Options) { o.ShowFaces = false }
}

// Factory builds a renderable object for one geometry kind.
type Factory func(data geom.Data, opts Options) (Object, error)

// Registry maps geometry kinds to object factories. It is an explicit
// instance handed to the viewer at construction; there is no process-wide
// registration.
type Registry struct {
	factories map[geom.Kind]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[geom.Kind]Factory),
	}
}

// Register installs a factory for a kind, replacing any previous one.
func (r *Registry) Register(kind geom.Kind, f Factory) {
	r.factories[kind] = f
}

// New builds an object for the given data using the registered factory.
func (r *Registry) New(data geom.Data, opts Options) (Object, error) {
	f, ok := r.factories[data.Kind()]
	if !ok {
		return nil, fmt.Errorf("viewer: no renderer registered for %s geometry", data.Kind())
	}
	return f(data, opts)
}

// DefaultRegistry returns a registry with the built-in renderers for
// networks, meshes, and shapes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(geom.KindNetwork, func(data geom.Data, opts Options) (Object, error) {
		n, ok := data.(*geom.Network)
		if !ok {
			return nil, fmt.Errorf("viewer: network renderer got %T", data)
		}
		return NewNetworkObject(n, opts), nil
	})
	r.Register(geom.KindMesh, func(data geom.Data, opts Options) (Object, error) {
		m, ok := data.(*geom.Mesh)
		if !ok {
			return nil, fmt.Errorf("viewer: mesh renderer got %T", data)
		}
		return NewMeshObject(m, opts), nil
	})
	r.Register(geom.KindShape, func(data geom.Data, opts Options) (Object, error) {
		s, ok := data.(geom.Shape)
		if !ok {
			return nil, fmt.Errorf("viewer: shape renderer got %T", data)
		}
		return NewShapeObject(s, opts), nil
	})
	return r
}
