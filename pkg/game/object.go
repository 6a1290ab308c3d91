// Package game ties GUID-addressed game objects to ECS entities and scene
// nodes, runs systems per tick and applies deferred mutations at a safe
// point between traversals.
package game

import (
	"github.com/google/uuid"

	"github.com/pkoziol/kine/pkg/ecs"
	"github.com/pkoziol/kine/pkg/scene"
)

// Object is the GUID-addressed unit commands and lookups operate on. It
// bridges an ECS entity (component data) and an optional scene node
// (spatial presence).
type Object struct {
	guid   uuid.UUID
	entity ecs.Entity
	node   *scene.Node
}

func (o *Object) GUID() uuid.UUID { return o.guid }

func (o *Object) Entity() ecs.Entity { return o.entity }

// Node returns the object's scene node, or nil for logic-only objects.
func (o *Object) Node() *scene.Node { return o.node }
