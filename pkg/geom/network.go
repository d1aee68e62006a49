package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Network is a graph of 3D nodes connected by edges.
type Network struct {
	nodes  []int
	coords map[int]mgl32.Vec3
	edges  [][2]int
	nextID int
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		coords: make(map[int]mgl32.Vec3),
	}
}

// Kind implements Data.
func (n *Network) Kind() Kind { return KindNetwork }

// AddNode adds a node at the given position and returns its id.
func (n *Network) AddNode(x, y, z float32) int {
	id := n.nextID
	n.nextID++
	n.nodes = append(n.nodes, id)
	n.coords[id] = mgl32.Vec3{x, y, z}
	return id
}

// AddEdge connects two existing nodes.
func (n *Network) AddEdge(u, v int) error {
	if _, ok := n.coords[u]; !ok {
		return fmt.Errorf("network edge (%d,%d): node %d does not exist", u, v, u)
	}
	if _, ok := n.coords[v]; !ok {
		return fmt.Errorf("network edge (%d,%d): node %d does not exist", u, v, v)
	}
	n.edges = append(n.edges, [2]int{u, v})
	return nil
}

// Nodes returns node ids in insertion order.
func (n *Network) Nodes() []int { return n.nodes }

// Edges returns edges as node-id pairs in insertion order.
func (n *Network) Edges() [][2]int { return n.edges }

// NodeCoord returns the position of a node.
func (n *Network) NodeCoord(id int) (mgl32.Vec3, bool) {
	xyz, ok := n.coords[id]
	return xyz, ok
}

// NumNodes returns the node count.
func (n *Network) NumNodes() int { return len(n.nodes) }

// NumEdges returns the edge count.
func (n *Network) NumEdges() int { return len(n.edges) }
