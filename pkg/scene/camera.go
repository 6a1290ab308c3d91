package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera produces the projection and view matrices carried by snapshots.
// The aspect ratio is the only windowing-derived input; it follows viewport
// resizes.
type Camera struct {
	fovyDeg float32
	aspect  float32
	near    float32
	far     float32

	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	projection mgl32.Mat4
	view       mgl32.Mat4
	dirty      bool
}

func NewCamera(fovyDeg, aspect, near, far float32) *Camera {
	return &Camera{
		fovyDeg: fovyDeg,
		aspect:  aspect,
		near:    near,
		far:     far,
		eye:     mgl32.Vec3{0, 0, 5},
		up:      mgl32.Vec3{0, 1, 0},
		dirty:   true,
	}
}

func (c *Camera) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.aspect = aspect
	c.dirty = true
}

// AspectFromViewport derives the aspect ratio from viewport dimensions.
func (c *Camera) AspectFromViewport(width, height int) {
	if height <= 0 {
		return
	}
	c.SetAspect(float32(width) / float32(height))
}

func (c *Camera) LookAt(eye, target, up mgl32.Vec3) {
	c.eye, c.target, c.up = eye, target, up
	c.dirty = true
}

func (c *Camera) Eye() mgl32.Vec3 { return c.eye }

func (c *Camera) Projection() mgl32.Mat4 {
	c.rebuild()
	return c.projection
}

func (c *Camera) View() mgl32.Mat4 {
	c.rebuild()
	return c.view
}

func (c *Camera) rebuild() {
	if !c.dirty {
		return
	}
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fovyDeg), c.aspect, c.near, c.far)
	c.view = mgl32.LookAtV(c.eye, c.target, c.up)
	c.dirty = false
}

// CameraNode anchors a camera in the tree so it inherits transforms. Camera
// nodes are leaves by contract.
type CameraNode struct {
	Node
	camera *Camera
}

func NewCameraNode(cam *Camera) *CameraNode {
	if cam == nil {
		panic("scene: camera node requires a camera")
	}
	n := &CameraNode{camera: cam}
	n.Node = *NewNode()
	return n
}

func (n *CameraNode) Camera() *Camera {
	return n.camera
}

// AttachChild always panics: a camera node cannot have children.
func (n *CameraNode) AttachChild(*Node) *Node {
	panic("scene: camera node cannot have children")
}
