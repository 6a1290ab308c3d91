package ecs

// registry allocates entity indices and tracks their current generation.
// Destroyed indices go onto a free list and are reissued with the bumped
// generation, which retires every previously issued handle for that index.
type registry struct {
	versions []uint32
	alive    []bool
	freeList []uint32
}

func newRegistry() *registry {
	return &registry{}
}

func (r *registry) create() Entity {
	if n := len(r.freeList); n > 0 {
		idx := r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
		r.alive[idx] = true
		return Entity{ID: idx, Version: r.versions[idx]}
	}
	idx := uint32(len(r.versions))
	r.versions = append(r.versions, 1)
	r.alive = append(r.alive, true)
	return Entity{ID: idx, Version: 1}
}

func (r *registry) destroy(e Entity) bool {
	if !r.valid(e) {
		return false
	}
	r.versions[e.ID]++
	r.alive[e.ID] = false
	r.freeList = append(r.freeList, e.ID)
	return true
}

func (r *registry) valid(e Entity) bool {
	if int(e.ID) >= len(r.versions) {
		return false
	}
	return r.alive[e.ID] && r.versions[e.ID] == e.Version
}
