// Package scene provides a flat scene graph of drawable nodes.
package scene

import (
	"github.com/buildsight/bimview/internal/engine/picking"
	"github.com/buildsight/bimview/pkg/math"
)

// Kind selects the geometry a node is drawn with.
type Kind int

const (
	// KindBox is a solid unit cube scaled and translated into place.
	KindBox Kind = iota
	// KindWireBox is a wireframe unit cube (12 edges).
	KindWireBox
)

// Node is a drawable object. The local geometry is a unit cube centered at
// the origin; the world transform is Translate(Position) * Scale(Scale).
type Node struct {
	Name     string
	Kind     Kind
	Position math.Vec3
	Scale    math.Vec3
	Color    [4]float32
	Visible  bool
}

// WorldTransform returns the node's model matrix.
func (n *Node) WorldTransform() math.Mat4 {
	return math.Translate(n.Position).Mul(math.Scale(n.Scale))
}

// AABB returns the node's world-space bounding box.
func (n *Node) AABB() picking.AABB {
	half := n.Scale.Scale(0.5)
	return picking.AABB{
		Min: n.Position.Sub(half),
		Max: n.Position.Add(half),
	}
}

// Graph is an ordered collection of nodes.
type Graph struct {
	nodes []*Node
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add appends a node. Adding the same node twice is a no-op.
func (g *Graph) Add(n *Node) {
	for _, existing := range g.nodes {
		if existing == n {
			return
		}
	}
	g.nodes = append(g.nodes, n)
}

// Remove deletes a node from the graph.
func (g *Graph) Remove(n *Node) {
	for i, existing := range g.nodes {
		if existing == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			return
		}
	}
}

// Traverse calls fn for every node in insertion order.
func (g *Graph) Traverse(fn func(*Node)) {
	for _, n := range g.nodes {
		fn(n)
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Bounds returns the union AABB of all visible solid nodes. The returned
// box is empty when the graph has no visible solid geometry.
func (g *Graph) Bounds() picking.AABB {
	var box picking.AABB
	first := true
	for _, n := range g.nodes {
		if !n.Visible || n.Kind != KindBox {
			continue
		}
		nb := n.AABB()
		if first {
			box = nb
			first = false
			continue
		}
		box.Min = box.Min.Min(nb.Min)
		box.Max = box.Max.Max(nb.Max)
	}
	return box
}
