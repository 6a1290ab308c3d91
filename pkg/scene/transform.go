package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is a node-local affine transform: scale, rotation, translation,
// with a lazily rebuilt composed matrix. Composition order is T * (R * S),
// translation outermost.
type Transform struct {
	rotation    mgl32.Mat4
	scale       mgl32.Vec3
	translation mgl32.Vec3
	cached      mgl32.Mat4
	dirty       bool
}

func NewTransform() Transform {
	return Transform{
		rotation: mgl32.Ident4(),
		scale:    mgl32.Vec3{1, 1, 1},
		cached:   mgl32.Ident4(),
	}
}

func (t *Transform) SetRotation(r mgl32.Mat4) {
	t.rotation = r
	t.dirty = true
}

func (t *Transform) SetScale(s mgl32.Vec3) {
	t.scale = s
	t.dirty = true
}

func (t *Transform) SetTranslation(v mgl32.Vec3) {
	t.translation = v
	t.dirty = true
}

func (t *Transform) Rotation() mgl32.Mat4 { return t.rotation }

func (t *Transform) Scale() mgl32.Vec3 { return t.scale }

func (t *Transform) Translation() mgl32.Vec3 { return t.translation }

// Matrix returns the composed local matrix, rebuilding the cache only when a
// setter ran since the last rebuild.
func (t *Transform) Matrix() mgl32.Mat4 {
	if t.dirty {
		rs := t.rotation.Mul4(mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z()))
		t.cached = mgl32.Translate3D(t.translation.X(), t.translation.Y(), t.translation.Z()).Mul4(rs)
		t.dirty = false
	}
	return t.cached
}

// NeedsUpdate reports whether the cached matrix is stale.
func (t *Transform) NeedsUpdate() bool {
	return t.dirty
}
