package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderable(t *testing.T, name string) *Renderable {
	t.Helper()
	mat, err := NewMaterial(&Shader{Name: "s"})
	require.NoError(t, err)
	r, err := NewRenderable(&Mesh{Name: name}, mat)
	require.NoError(t, err)
	return r
}

func TestConstructorContracts(t *testing.T) {
	_, err := NewMaterial(nil)
	assert.Error(t, err)

	mat, _ := NewMaterial(&Shader{})
	_, err = NewRenderable(nil, mat)
	assert.Error(t, err)
	_, err = NewRenderable(&Mesh{}, nil)
	assert.Error(t, err)
}

func TestTableResolve(t *testing.T) {
	table := NewTable()
	r := newRenderable(t, "cube")
	h := table.Add(r)

	got, ok := table.Resolve(h)
	require.True(t, ok)
	assert.Same(t, r, got)
	assert.Equal(t, 1, table.Len())

	var zero Handle
	_, ok = table.Resolve(zero)
	assert.False(t, ok, "the zero handle never resolves")
}

func TestTableReleaseExpiresHandles(t *testing.T) {
	table := NewTable()
	h := table.Add(newRenderable(t, "cube"))

	assert.True(t, table.Release(h))
	_, ok := table.Resolve(h)
	assert.False(t, ok, "released slot stops resolving")
	assert.False(t, table.Release(h), "double release is a no-op")
	assert.Equal(t, 0, table.Len())
}

func TestTableSlotReuse(t *testing.T) {
	table := NewTable()
	old := table.Add(newRenderable(t, "a"))
	table.Release(old)

	fresh := table.Add(newRenderable(t, "b"))
	got, ok := table.Resolve(fresh)
	require.True(t, ok)
	assert.Equal(t, "b", got.Mesh.Name)

	_, ok = table.Resolve(old)
	assert.False(t, ok, "stale handle must not see the reused slot")
}
