package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pkoziol/kine/pkg/render"
)

// SnapshotItem holds a weak renderable reference and its resolved world
// matrix. The reference is weak on purpose: the tree may drop a renderable
// between capture and consumption, and a missing renderable at render time
// means skip, not fail.
type SnapshotItem = render.Item

// Snapshot is the immutable per-frame capture of the visible set, handed to
// the render backend together with the camera matrices.
type Snapshot struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Items      []SnapshotItem
}
