package ecs

const tombstone = -1

// SparseSet stores one component type densely, indexed by entity ID through a
// sparse indirection table. Insert, lookup and removal are O(1); removal
// swaps the last dense entry into the vacated slot and fixes its sparse
// index, so the dense array never has holes.
type SparseSet[T any] struct {
	dense    []T
	entities []uint32
	sparse   []int32
	guard    func(*T) bool
}

func NewSparseSet[T any]() *SparseSet[T] {
	return &SparseSet[T]{}
}

// Emplace inserts value for id and returns a pointer to the stored copy.
// It returns nil without overwriting if id is already present. The returned
// pointer is invalidated by any subsequent Emplace or Remove on this set.
func (s *SparseSet[T]) Emplace(id uint32, value T) *T {
	if s.slot(id) != tombstone {
		return nil
	}
	for int(id) >= len(s.sparse) {
		s.sparse = append(s.sparse, tombstone)
	}
	s.dense = append(s.dense, value)
	s.entities = append(s.entities, id)
	s.sparse[id] = int32(len(s.dense) - 1)
	return &s.dense[len(s.dense)-1]
}

// Get returns the stored component for id, or nil if absent.
func (s *SparseSet[T]) Get(id uint32) *T {
	i := s.slot(id)
	if i == tombstone {
		return nil
	}
	return &s.dense[i]
}

func (s *SparseSet[T]) Has(id uint32) bool {
	return s.slot(id) != tombstone
}

func (s *SparseSet[T]) Len() int {
	return len(s.dense)
}

// SetRemoveGuard installs the removal veto callback. Single slot: the new
// guard replaces any previous one. A nil guard allows every removal.
func (s *SparseSet[T]) SetRemoveGuard(fn func(*T) bool) {
	s.guard = fn
}

// Remove deletes id from the set. It returns false with no mutation if id is
// absent or the remove guard vetoes.
func (s *SparseSet[T]) Remove(id uint32) bool {
	i := s.slot(id)
	if i == tombstone {
		return false
	}
	if s.guard != nil && !s.guard(&s.dense[i]) {
		return false
	}
	last := int32(len(s.dense) - 1)
	if i != last {
		s.dense[i] = s.dense[last]
		s.entities[i] = s.entities[last]
		s.sparse[s.entities[i]] = i
	}
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	s.sparse[id] = tombstone
	return true
}

// Each visits every stored component in dense order. Structural mutation
// during iteration is undefined.
func (s *SparseSet[T]) Each(fn func(id uint32, value *T) bool) {
	for i := range s.dense {
		if !fn(s.entities[i], &s.dense[i]) {
			return
		}
	}
}

func (s *SparseSet[T]) slot(id uint32) int32 {
	if int(id) >= len(s.sparse) {
		return tombstone
	}
	return s.sparse[id]
}

// store is the type-erased face the Manager and views see.

func (s *SparseSet[T]) removeIndex(id uint32) bool { return s.Remove(id) }
func (s *SparseSet[T]) hasIndex(id uint32) bool    { return s.Has(id) }
func (s *SparseSet[T]) size() int                  { return s.Len() }
func (s *SparseSet[T]) indexAt(i int) uint32       { return s.entities[i] }
