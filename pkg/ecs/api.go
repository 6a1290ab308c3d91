// Package ecs provides generational entity handles, sparse-set component
// storage and filtered iteration for a single-threaded game world.
package ecs

import "time"

type (
	// System is a unit of per-tick game logic.
	System interface {
		Init(SystemAPI)
		Update(SystemAPI, time.Duration)
	}

	// SystemAPI is the surface systems see during Init and Update.
	SystemAPI interface {
		NewView(components ...any) View
		Each(v View, fn func(e Entity))
		Manager() *Manager
	}
)

// Storage returns T's sparse set through a system's API handle.
func Storage[T any](api SystemAPI) *SparseSet[T] {
	return Set[T](api.Manager())
}
