package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestTransformComposeOrder(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(mgl32.Vec3{2, 2, 2})
	tr.SetRotation(mgl32.HomogRotate3DZ(mgl32.DegToRad(90)))
	tr.SetTranslation(mgl32.Vec3{1, 2, 3})

	// T * (R * S): the unit X vector scales to 2, rotates onto +Y, then
	// translates.
	got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, tr.Matrix())
	assert.InDelta(t, 1.0, got.X(), 1e-5)
	assert.InDelta(t, 4.0, got.Y(), 1e-5)
	assert.InDelta(t, 3.0, got.Z(), 1e-5)

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(90)).Mul4(mgl32.Scale3D(2, 2, 2)))
	assert.Equal(t, want, tr.Matrix())
}

func TestTransformLazyCache(t *testing.T) {
	tr := NewTransform()
	assert.False(t, tr.NeedsUpdate())
	assert.Equal(t, mgl32.Ident4(), tr.Matrix())

	tr.SetTranslation(mgl32.Vec3{4, 0, 0})
	assert.True(t, tr.NeedsUpdate())

	first := tr.Matrix()
	assert.False(t, tr.NeedsUpdate(), "cache rebuilt and cleared")
	assert.Equal(t, first, tr.Matrix(), "clean matrix is served from cache")

	tr.SetScale(mgl32.Vec3{3, 3, 3})
	assert.True(t, tr.NeedsUpdate(), "every setter marks dirty")
}
