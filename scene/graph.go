// Package scene holds the transform hierarchy as an arena of nodes addressed
// by stable handles. Poses are position plus yaw about the vertical axis.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/convoy/common"
)

var (
	ErrInvalidHandle = errors.New("scene: invalid node handle")
	ErrRoot          = errors.New("scene: root node cannot be reparented")
	ErrCycle         = errors.New("scene: reparent would create a cycle")
)

// Handle addresses a node in a Graph. The zero value is never valid.
type Handle uint32

// Root is the handle of every graph's root node.
const Root Handle = 1

func (h Handle) Valid() bool {
	return h > 0
}

type node struct {
	name     string
	position mgl64.Vec3
	yaw      float64
	parent   Handle
	children map[Handle]struct{}
}

// Graph owns every transform node. Each node other than the root has
// exactly one parent and the parent edges are acyclic.
type Graph struct {
	nodes []node
}

func NewGraph() *Graph {
	g := &Graph{}
	g.nodes = append(g.nodes, node{name: "root", children: map[Handle]struct{}{}})
	return g
}

func (g *Graph) get(h Handle) (*node, bool) {
	if g == nil || h == 0 || int(h) > len(g.nodes) {
		return nil, false
	}
	return &g.nodes[h-1], true
}

// Len returns the number of nodes including the root.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// NewNode creates a node under parent at the given local pose.
func (g *Graph) NewNode(name string, parent Handle, position mgl64.Vec3, yaw float64) (Handle, error) {
	p, ok := g.get(parent)
	if !ok {
		return 0, fmt.Errorf("%w: parent %d", ErrInvalidHandle, parent)
	}
	h := Handle(len(g.nodes) + 1)
	p.children[h] = struct{}{}
	g.nodes = append(g.nodes, node{
		name:     name,
		position: position,
		yaw:      common.WrapAngle(yaw),
		parent:   parent,
		children: map[Handle]struct{}{},
	})
	return h, nil
}

// Name returns the debug name of a node.
func (g *Graph) Name(h Handle) string {
	n, ok := g.get(h)
	if !ok {
		return ""
	}
	return n.name
}

// Parent returns the parent handle; the root has none.
func (g *Graph) Parent(h Handle) (Handle, bool) {
	n, ok := g.get(h)
	if !ok || h == Root {
		return 0, false
	}
	return n.parent, true
}

// Children returns the direct children of h.
func (g *Graph) Children(h Handle) []Handle {
	n, ok := g.get(h)
	if !ok {
		return nil
	}
	out := make([]Handle, 0, len(n.children))
	for c := range n.children {
		out = append(out, c)
	}
	return out
}

// Local returns the pose of h relative to its parent.
func (g *Graph) Local(h Handle) (mgl64.Vec3, float64) {
	n, ok := g.get(h)
	if !ok {
		return mgl64.Vec3{}, 0
	}
	return n.position, n.yaw
}

// SetLocal replaces the pose of h relative to its parent.
func (g *Graph) SetLocal(h Handle, position mgl64.Vec3, yaw float64) {
	n, ok := g.get(h)
	if !ok {
		return
	}
	n.position = position
	n.yaw = common.WrapAngle(yaw)
}

// SetLocalPosition keeps the current yaw.
func (g *Graph) SetLocalPosition(h Handle, position mgl64.Vec3) {
	if n, ok := g.get(h); ok {
		n.position = position
	}
}

// SetLocalYaw keeps the current position.
func (g *Graph) SetLocalYaw(h Handle, yaw float64) {
	if n, ok := g.get(h); ok {
		n.yaw = common.WrapAngle(yaw)
	}
}

// Translate moves h along its own forward axis by distance.
func (g *Graph) Translate(h Handle, axis mgl64.Vec3, distance float64) {
	n, ok := g.get(h)
	if !ok || distance == 0 {
		return
	}
	rotated := mgl64.HomogRotate3DY(n.yaw).Mul4x1(axis.Vec4(0)).Vec3()
	n.position = n.position.Add(rotated.Mul(distance))
}

func localMatrix(n *node) mgl64.Mat4 {
	return mgl64.Translate3D(n.position.X(), n.position.Y(), n.position.Z()).Mul4(mgl64.HomogRotate3DY(n.yaw))
}

// World returns the full local-to-world matrix of h.
func (g *Graph) World(h Handle) mgl64.Mat4 {
	m := mgl64.Ident4()
	for cur := h; cur.Valid(); {
		n, ok := g.get(cur)
		if !ok {
			break
		}
		m = localMatrix(n).Mul4(m)
		if cur == Root {
			break
		}
		cur = n.parent
	}
	return m
}

// WorldPosition returns the world-space position of h.
func (g *Graph) WorldPosition(h Handle) mgl64.Vec3 {
	return g.World(h).Col(3).Vec3()
}

// WorldYaw returns the world-space yaw of h in [0, 2π).
func (g *Graph) WorldYaw(h Handle) float64 {
	return yawOf(g.World(h))
}

// SetWorldPosition moves h so that its world position is p.
func (g *Graph) SetWorldPosition(h Handle, p mgl64.Vec3) {
	n, ok := g.get(h)
	if !ok {
		return
	}
	if h == Root {
		n.position = p
		return
	}
	inv := g.World(n.parent).Inv()
	n.position = mgl64.TransformCoordinate(p, inv)
}

func yawOf(m mgl64.Mat4) float64 {
	return common.WrapAngle(math.Atan2(m.At(0, 2), m.At(0, 0)))
}

// IsAncestor reports whether a is h or one of its ancestors.
func (g *Graph) IsAncestor(a, h Handle) bool {
	for cur := h; cur.Valid(); {
		if cur == a {
			return true
		}
		n, ok := g.get(cur)
		if !ok || cur == Root {
			return false
		}
		cur = n.parent
	}
	return false
}

// Reparent moves child under newParent, recomputing its local pose so its
// world position and yaw are unchanged at the instant of the swap.
func (g *Graph) Reparent(child, newParent Handle) error {
	c, ok := g.get(child)
	if !ok {
		return fmt.Errorf("%w: child %d", ErrInvalidHandle, child)
	}
	p, ok := g.get(newParent)
	if !ok {
		return fmt.Errorf("%w: parent %d", ErrInvalidHandle, newParent)
	}
	if child == Root {
		return ErrRoot
	}
	if g.IsAncestor(child, newParent) {
		return fmt.Errorf("%w: %s under %s", ErrCycle, c.name, p.name)
	}

	local := g.World(newParent).Inv().Mul4(g.World(child))

	if old, ok := g.get(c.parent); ok {
		delete(old.children, child)
	}
	p.children[child] = struct{}{}
	c.parent = newParent
	c.position = local.Col(3).Vec3()
	c.yaw = yawOf(local)
	return nil
}
