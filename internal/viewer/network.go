package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/calder3d/geomview/pkg/geom"
)

// NetworkColors are the pass colors of a network object.
type NetworkColors struct {
	Nodes [3]float32
	Edges [3]float32
}

// DefaultNetworkColors returns the standard network palette.
func DefaultNetworkColors() NetworkColors {
	return NetworkColors{
		Nodes: [3]float32{0.1, 0.1, 0.1},
		Edges: [3]float32{0.4, 0.4, 0.4},
	}
}

// NetworkObject renders a node/edge graph as points and lines.
type NetworkObject struct {
	data   *geom.Network
	opts   Options
	colors NetworkColors

	nodes pass
	edges pass
	ready bool
}

// NewNetworkObject wraps a network for display.
func NewNetworkObject(data *geom.Network, opts Options) *NetworkObject {
	return &NetworkObject{
		data:   data,
		opts:   opts,
		colors: DefaultNetworkColors(),
	}
}

// Kind implements Object.
func (o *NetworkObject) Kind() geom.Kind { return geom.KindNetwork }

// Init uploads the node and edge buffers.
func (o *NetworkObject) Init() error {
	nodeSet := networkNodeBuffers(o.data, o.colors.Nodes)
	edgeSet := networkEdgeBuffers(o.data, o.colors.Edges)

	o.nodes = newPass(gl.POINTS, nodeSet)
	o.edges = newPass(gl.LINES, edgeSet)
	o.ready = true
	return nil
}

// Draw implements Object.
func (o *NetworkObject) Draw(p *program) {
	if !o.ready {
		return
	}
	if o.opts.ShowEdges {
		o.edges.draw()
	}
	if o.opts.ShowVertices {
		o.nodes.draw()
	}
}

// Release frees the object's GPU resources.
func (o *NetworkObject) Release() {
	o.nodes.release()
	o.edges.release()
	o.ready = false
}
