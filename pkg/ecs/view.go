package ecs

import "reflect"

// View selects entities that carry every component type it was built from.
// Filtering is evaluated lazily per advance; nothing is materialized.
type View struct {
	mask Bitmask
	ids  []ComponentID
}

// NewView builds a view over the given component instances. Types must have
// been registered (referenced through Emplace or Set) beforehand.
func (m *Manager) NewView(components ...any) View {
	var v View
	for _, c := range components {
		t := reflect.TypeOf(c)
		id, ok := m.typeIDs[t]
		if !ok {
			panic("ecs: component " + t.String() + " must be registered before creating a View")
		}
		v.mask = v.mask.Set(id)
		v.ids = append(v.ids, id)
	}
	return v
}

// Each calls fn for every live entity matching v, driven by the smallest
// member set. Structural mutation of the iterated component types during
// Each is undefined; defer it through a command buffer.
func (m *Manager) Each(v View, fn func(e Entity)) {
	driver := m.smallestStore(v)
	if driver == nil {
		return
	}
	for i := 0; i < driver.size(); i++ {
		idx := driver.indexAt(i)
		if !m.registry.alive[idx] {
			continue
		}
		if !m.masks[idx].Matches(v.mask) {
			continue
		}
		fn(Entity{ID: idx, Version: m.registry.versions[idx]})
	}
}

func (m *Manager) smallestStore(v View) store {
	var driver store
	for _, id := range v.ids {
		st := m.stores[id]
		if driver == nil || st.size() < driver.size() {
			driver = st
		}
	}
	return driver
}
