package game

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pkoziol/kine/pkg/ecs"
	"github.com/pkoziol/kine/pkg/scene"
)

// World owns the entity manager, the GUID index over game objects, the
// system scheduler and the command buffer. One Update call is one
// simulation tick: systems first, then the deferred-command flush.
type World struct {
	manager   *ecs.Manager
	scheduler *ecs.Scheduler
	objects   map[uuid.UUID]*Object
	commands  *CommandBuffer
	log       *zap.Logger
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	manager := ecs.NewManager()
	return &World{
		manager:   manager,
		scheduler: ecs.NewScheduler(manager),
		objects:   make(map[uuid.UUID]*Object),
		commands:  NewCommandBuffer(log),
		log:       log,
	}
}

func (w *World) Manager() *ecs.Manager { return w.manager }

func (w *World) Commands() *CommandBuffer { return w.commands }

func (w *World) RegisterSystems(systems ...ecs.System) {
	w.scheduler.Register(systems...)
}

// Spawn creates a game object with a fresh entity. node may be nil for
// logic-only objects.
func (w *World) Spawn(node *scene.Node) *Object {
	obj := &Object{
		guid:   uuid.New(),
		entity: w.manager.Create(),
		node:   node,
	}
	w.objects[obj.guid] = obj
	return obj
}

// Despawn destroys the object's entity and drops it from the GUID index.
// A component remove-guard refusal is logged; the object is gone either way.
func (w *World) Despawn(guid uuid.UUID) bool {
	obj, ok := w.objects[guid]
	if !ok {
		return false
	}
	if !w.manager.Destroy(obj.entity) {
		w.log.Warn("component removal vetoed during despawn",
			zap.String("guid", guid.String()))
	}
	delete(w.objects, guid)
	return true
}

// Find resolves a GUID against the live object store.
func (w *World) Find(guid uuid.UUID) (*Object, bool) {
	obj, ok := w.objects[guid]
	return obj, ok
}

func (w *World) Len() int {
	return len(w.objects)
}

// Update runs one tick: systems mutate component data, then buffered
// commands apply structural changes at the safe point.
func (w *World) Update(dt time.Duration) {
	w.scheduler.Update(dt)
	w.commands.Flush(w)
}
