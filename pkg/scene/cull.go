package scene

import "github.com/go-gl/mathgl/mgl32"

// Culler is the visibility policy a Scene delegates to.
type Culler interface {
	Visible(cam *Camera, root *Node) []*Node
}

// CullNone yields every active node depth-first. Inactive nodes hide their
// subtree. The root is never included.
type CullNone struct{}

func (CullNone) Visible(_ *Camera, root *Node) []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.children {
			if !c.active {
				continue
			}
			out = append(out, c)
			walk(c)
		}
	}
	walk(root)
	return out
}

// FrustumCuller keeps nodes whose bounding sphere intersects the camera
// frustum. Planes come from the combined projection*view matrix; a culled
// node does not cull its children, which may extend back into the frustum.
type FrustumCuller struct{}

func (FrustumCuller) Visible(cam *Camera, root *Node) []*Node {
	planes := frustumPlanes(cam.Projection().Mul4(cam.View()))
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, c := range n.children {
			if !c.active {
				continue
			}
			if sphereInFrustum(planes, c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

func frustumPlanes(m mgl32.Mat4) [6]mgl32.Vec4 {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	planes := [6]mgl32.Vec4{
		r3.Add(r0), // left
		r3.Sub(r0), // right
		r3.Add(r1), // bottom
		r3.Sub(r1), // top
		r3.Add(r2), // near
		r3.Sub(r2), // far
	}
	for i, p := range planes {
		if l := p.Vec3().Len(); l > 0 {
			planes[i] = p.Mul(1 / l)
		}
	}
	return planes
}

func sphereInFrustum(planes [6]mgl32.Vec4, n *Node) bool {
	world := n.World()
	center := world.Col(3).Vec3()
	radius := n.radius * maxAxisScale(world)
	for _, p := range planes {
		if p.Vec3().Dot(center)+p.W() < -radius {
			return false
		}
	}
	return true
}

func maxAxisScale(m mgl32.Mat4) float32 {
	s := m.Col(0).Vec3().Len()
	if l := m.Col(1).Vec3().Len(); l > s {
		s = l
	}
	if l := m.Col(2).Vec3().Len(); l > s {
		s = l
	}
	return s
}
