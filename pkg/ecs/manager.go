package ecs

import "reflect"

// ComponentID is a dense index assigned to each component type on first use.
type ComponentID int

// store is the type-erased face of a SparseSet, enough for the Manager to
// destroy entities and for views to pick an iteration driver.
type store interface {
	removeIndex(id uint32) bool
	hasIndex(id uint32) bool
	size() int
	indexAt(i int) uint32
}

// Manager composes an entity registry with one SparseSet per component type.
// Sets are created lazily on the first reference to a type. The Manager owns
// the registry and every set exclusively.
type Manager struct {
	registry *registry
	masks    []Bitmask
	stores   map[ComponentID]store
	typeIDs  map[reflect.Type]ComponentID
}

func NewManager() *Manager {
	return &Manager{
		registry: newRegistry(),
		stores:   make(map[ComponentID]store),
		typeIDs:  make(map[reflect.Type]ComponentID),
	}
}

func (m *Manager) Create() Entity {
	e := m.registry.create()
	for int(e.ID) >= len(m.masks) {
		m.masks = append(m.masks, nil)
	}
	m.masks[e.ID] = Bitmask{}
	return e
}

// Destroy removes e from every component set it participates in, honoring
// each set's remove guard, then retires the handle in the registry. It
// returns false for a stale handle and when any guard refused removal. A
// refusing set keeps its value, but the handle is retired either way, so the
// component is no longer reachable through the Manager.
func (m *Manager) Destroy(e Entity) bool {
	if !m.registry.valid(e) {
		return false
	}
	ok := true
	m.masks[e.ID].ForEachSet(func(id ComponentID) {
		st := m.stores[id]
		if !st.removeIndex(e.ID) && st.hasIndex(e.ID) {
			ok = false
			return
		}
		m.masks[e.ID] = m.masks[e.ID].Clear(id)
	})
	m.registry.destroy(e)
	return ok
}

// Valid reports whether e is a live handle.
func (m *Manager) Valid(e Entity) bool {
	return m.registry.valid(e)
}

func registerComponent[T any](m *Manager) ComponentID {
	var zero T
	t := reflect.TypeOf(zero)
	if id, ok := m.typeIDs[t]; ok {
		return id
	}
	id := ComponentID(len(m.typeIDs))
	m.typeIDs[t] = id
	m.stores[id] = NewSparseSet[T]()
	return id
}

// Set returns the storage for component type T, creating it on first use.
func Set[T any](m *Manager) *SparseSet[T] {
	id := registerComponent[T](m)
	return m.stores[id].(*SparseSet[T])
}

// Emplace attaches value to e as its T component. It returns nil if e is
// stale or T is already present; the existing component is never overwritten.
func Emplace[T any](m *Manager, e Entity, value T) *T {
	if !m.registry.valid(e) {
		return nil
	}
	id := registerComponent[T](m)
	p := m.stores[id].(*SparseSet[T]).Emplace(e.ID, value)
	if p != nil {
		m.masks[e.ID] = m.masks[e.ID].Set(id)
	}
	return p
}

// Get returns e's T component, or nil if e is stale or T absent.
func Get[T any](m *Manager, e Entity) *T {
	if !m.registry.valid(e) {
		return nil
	}
	return Set[T](m).Get(e.ID)
}

func Has[T any](m *Manager, e Entity) bool {
	return m.registry.valid(e) && Set[T](m).Has(e.ID)
}

// Remove detaches e's T component, honoring the set's remove guard.
func Remove[T any](m *Manager, e Entity) bool {
	if !m.registry.valid(e) {
		return false
	}
	id := registerComponent[T](m)
	if !m.stores[id].(*SparseSet[T]).Remove(e.ID) {
		return false
	}
	m.masks[e.ID] = m.masks[e.ID].Clear(id)
	return true
}

// SetRemoveGuard installs the removal veto callback for T's set.
func SetRemoveGuard[T any](m *Manager, fn func(*T) bool) {
	Set[T](m).SetRemoveGuard(fn)
}
