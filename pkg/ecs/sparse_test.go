package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type health struct {
	HP int
}

func TestSparseSetNoOverwrite(t *testing.T) {
	s := NewSparseSet[health]()

	first := s.Emplace(7, health{HP: 100})
	require.NotNil(t, first)

	second := s.Emplace(7, health{HP: 1})
	assert.Nil(t, second, "emplace must not overwrite")
	assert.Equal(t, 100, s.Get(7).HP)
	assert.Equal(t, 1, s.Len())
}

func TestSparseSetSwapRemove(t *testing.T) {
	s := NewSparseSet[health]()
	s.Emplace(1, health{HP: 10})
	s.Emplace(2, health{HP: 20})
	s.Emplace(3, health{HP: 30})
	s.Emplace(4, health{HP: 40})

	assert.True(t, s.Remove(1))

	assert.Nil(t, s.Get(1))
	require.NotNil(t, s.Get(2))
	require.NotNil(t, s.Get(3))
	require.NotNil(t, s.Get(4))
	assert.Equal(t, 20, s.Get(2).HP)
	assert.Equal(t, 30, s.Get(3).HP)
	assert.Equal(t, 40, s.Get(4).HP)
	assert.Equal(t, 3, s.Len())
}

func TestSparseSetRemoveGuard(t *testing.T) {
	s := NewSparseSet[health]()
	s.Emplace(5, health{HP: 50})

	s.SetRemoveGuard(func(*health) bool { return false })
	assert.False(t, s.Remove(5), "guard vetoes removal")
	require.NotNil(t, s.Get(5))
	assert.Equal(t, 50, s.Get(5).HP)

	s.SetRemoveGuard(func(*health) bool { return true })
	assert.True(t, s.Remove(5))
	assert.Nil(t, s.Get(5))
}

func TestSparseSetRemoveAbsent(t *testing.T) {
	s := NewSparseSet[health]()
	assert.False(t, s.Remove(9))
	s.Emplace(1, health{HP: 1})
	assert.False(t, s.Remove(9), "id beyond sparse table")
}

func TestSparseSetEach(t *testing.T) {
	s := NewSparseSet[health]()
	s.Emplace(3, health{HP: 3})
	s.Emplace(8, health{HP: 8})

	seen := map[uint32]int{}
	s.Each(func(id uint32, v *health) bool {
		seen[id] = v.HP
		return true
	})
	assert.Equal(t, map[uint32]int{3: 3, 8: 8}, seen)

	count := 0
	s.Each(func(uint32, *health) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count, "early stop")
}
