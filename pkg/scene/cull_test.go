package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func lookDownNegZ() *Camera {
	cam := NewCamera(60, 16.0/9.0, 0.1, 100)
	cam.LookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	return cam
}

func nodeAt(pos mgl32.Vec3, radius float32) *Node {
	n := NewNode()
	n.Local().SetTranslation(pos)
	n.SetBoundingRadius(radius)
	return n
}

func TestCullNoneReturnsActiveNodes(t *testing.T) {
	s := New(CullNone{}, nil)
	a := s.Root().AttachChild(nodeAt(mgl32.Vec3{0, 0, -5}, 1))
	b := a.AttachChild(nodeAt(mgl32.Vec3{0, 0, -1}, 1))
	hidden := s.Root().AttachChild(nodeAt(mgl32.Vec3{1, 0, 0}, 1))
	hidden.AttachChild(nodeAt(mgl32.Vec3{2, 0, 0}, 1))
	hidden.SetActive(false)

	visible := s.FindVisibleNodes(lookDownNegZ())
	assert.ElementsMatch(t, []*Node{a, b}, visible,
		"inactive subtree is skipped, root never included")
}

func TestFrustumCullerDropsNodesBehindCamera(t *testing.T) {
	s := New(FrustumCuller{}, nil)
	front := s.Root().AttachChild(nodeAt(mgl32.Vec3{0, 0, -10}, 1))
	behind := s.Root().AttachChild(nodeAt(mgl32.Vec3{0, 0, 10}, 1))

	visible := s.FindVisibleNodes(lookDownNegZ())
	assert.Contains(t, visible, front)
	assert.NotContains(t, visible, behind)
}

func TestFrustumCullerRecursesIntoCulledParents(t *testing.T) {
	s := New(FrustumCuller{}, nil)
	behind := s.Root().AttachChild(nodeAt(mgl32.Vec3{0, 0, 10}, 1))
	reEnter := behind.AttachChild(nodeAt(mgl32.Vec3{0, 0, -20}, 1))

	visible := s.FindVisibleNodes(lookDownNegZ())
	assert.NotContains(t, visible, behind)
	assert.Contains(t, visible, reEnter,
		"a child may extend back into the frustum")
}

func TestFrustumCullerScaledRadius(t *testing.T) {
	s := New(FrustumCuller{}, nil)
	// Center is off to the left of the frustum, but the scaled bounding
	// sphere reaches in.
	edge := s.Root().AttachChild(nodeAt(mgl32.Vec3{-12, 0, -10}, 1))
	edge.Local().SetScale(mgl32.Vec3{8, 8, 8})

	visible := s.FindVisibleNodes(lookDownNegZ())
	assert.Contains(t, visible, edge)

	far := s.Root().AttachChild(nodeAt(mgl32.Vec3{-80, 0, -10}, 1))
	visible = s.FindVisibleNodes(lookDownNegZ())
	assert.NotContains(t, visible, far)
}
