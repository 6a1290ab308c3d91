// Package scene implements a hierarchical scene graph: an owning node tree
// with lazy world-transform propagation, pluggable visibility culling and
// immutable per-frame snapshots for the render backend.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/pkoziol/kine/pkg/render"
)

// worldEpsilon is the component-wise tolerance under which two world
// matrices count as the same and propagation is not forced downward.
const worldEpsilon = 1e-4

// Scene owns the root node and drives top-down world-transform propagation.
// The root carries no renderable and is never itself visible.
type Scene struct {
	root   *Node
	culler Culler
	log    *zap.Logger
}

func New(culler Culler, log *zap.Logger) *Scene {
	if culler == nil {
		culler = CullNone{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{
		root:   NewNode(),
		culler: culler,
		log:    log,
	}
}

func (s *Scene) Root() *Node {
	return s.root
}

func (s *Scene) SetCuller(culler Culler) {
	if culler == nil {
		culler = CullNone{}
	}
	s.culler = culler
}

// UpdateNodes propagates dirty world transforms top-down. A node whose local
// transform changed recomputes its world matrix; a real change forces
// unconditional propagation into the subtree, while a change that lands
// within epsilon of the cached world matrix falls through to the selective
// path, leaving descendants untouched. Clean nodes recurse selectively with
// their own cached world matrix.
func (s *Scene) UpdateNodes() {
	s.updateNode(s.root, mgl32.Ident4(), false)
}

func (s *Scene) updateNode(n *Node, parentWorld mgl32.Mat4, force bool) {
	if force || n.needsUpdate() {
		newWorld := parentWorld.Mul4(n.local.Matrix())
		if mat4AlmostEqual(newWorld, n.world, worldEpsilon) {
			for _, c := range n.children {
				s.updateNode(c, n.world, false)
			}
			return
		}
		n.setWorld(newWorld)
		for _, c := range n.children {
			s.updateNode(c, newWorld, true)
		}
		return
	}
	for _, c := range n.children {
		s.updateNode(c, n.world, false)
	}
}

// FindVisibleNodes completes transform propagation, then delegates to the
// configured culler. Propagation always runs first so culling never reads a
// stale world transform.
func (s *Scene) FindVisibleNodes(cam *Camera) []*Node {
	s.UpdateNodes()
	return s.culler.Visible(cam, s.root)
}

// CreateSnapshot captures the visible renderable-carrying nodes with their
// resolved world matrices, bundled with the camera matrices, into an
// immutable value the render backend consumes.
func (s *Scene) CreateSnapshot(cam *Camera) Snapshot {
	visible := s.FindVisibleNodes(cam)
	items := make([]render.Item, 0, len(visible))
	for _, n := range visible {
		if n.renderable.IsZero() {
			continue
		}
		items = append(items, render.Item{Renderable: n.renderable, World: n.world})
	}
	s.log.Debug("snapshot created",
		zap.Int("visible", len(visible)),
		zap.Int("items", len(items)))
	return Snapshot{
		Projection: cam.Projection(),
		View:       cam.View(),
		Items:      items,
	}
}

func mat4AlmostEqual(a, b mgl32.Mat4, eps float32) bool {
	for i := 0; i < 16; i++ {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > eps {
			return false
		}
	}
	return true
}
