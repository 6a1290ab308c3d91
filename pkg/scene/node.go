package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/pkoziol/kine/pkg/render"
)

// Node is one element of the scene tree. A node owns its children
// exclusively; the parent pointer is a non-owning back-reference used only
// for traversal. The cached world transform is written by the Scene alone
// during propagation.
type Node struct {
	id         uuid.UUID
	parent     *Node
	children   []*Node
	local      Transform
	world      mgl32.Mat4
	renderable render.Handle
	radius     float32
	active     bool
}

func NewNode() *Node {
	return &Node{
		id:     uuid.New(),
		local:  NewTransform(),
		world:  mgl32.Ident4(),
		active: true,
	}
}

func (n *Node) ID() uuid.UUID { return n.id }

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Children() []*Node { return n.children }

// AttachChild takes exclusive ownership of child. Attaching a node that
// already has a parent is a contract violation.
func (n *Node) AttachChild(child *Node) *Node {
	if child == nil {
		panic("scene: nil child")
	}
	if child.parent != nil {
		panic("scene: node already has a parent")
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// DetachChild releases child from the tree and returns it, or nil if child
// is not a direct child of n. The caller becomes the owner of the subtree.
func (n *Node) DetachChild(child *Node) *Node {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return child
		}
	}
	return nil
}

// Local exposes the node-local transform for mutation. Setter calls mark the
// node for propagation on the next update.
func (n *Node) Local() *Transform {
	return &n.local
}

// Translate offsets the local translation by delta.
func (n *Node) Translate(delta mgl32.Vec3) {
	n.local.SetTranslation(n.local.Translation().Add(delta))
}

// World returns the cached world transform as of the last propagation.
func (n *Node) World() mgl32.Mat4 {
	return n.world
}

func (n *Node) SetRenderable(h render.Handle) { n.renderable = h }

func (n *Node) Renderable() render.Handle { return n.renderable }

func (n *Node) SetBoundingRadius(r float32) { n.radius = r }

func (n *Node) BoundingRadius() float32 { return n.radius }

// SetActive toggles the node and its subtree in and out of visibility.
func (n *Node) SetActive(active bool) { n.active = active }

func (n *Node) Active() bool { return n.active }

func (n *Node) needsUpdate() bool {
	return n.local.NeedsUpdate()
}

// setWorld is the Scene-only write path for the world-transform cache.
// Keeping it unexported is this package's version of a friend-only mutation
// key: external code can read World but never bypass propagation.
func (n *Node) setWorld(m mgl32.Mat4) {
	n.world = m
}
