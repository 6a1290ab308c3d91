package ecs

// Entity identifies a logical world object as an (index, generation) pair.
// A handle is valid only while the registry's current generation for its ID
// matches Version. The zero Entity is never valid: generations start at 1.
type Entity struct {
	ID      uint32
	Version uint32
}
