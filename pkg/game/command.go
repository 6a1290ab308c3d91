package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Command mutates a resolved game object when the buffer flushes.
type Command interface {
	Execute(obj *Object) error
}

// CommandFunc adapts a function to the Command interface.
type CommandFunc func(obj *Object) error

func (f CommandFunc) Execute(obj *Object) error {
	return f(obj)
}

type pendingCommand struct {
	target uuid.UUID
	cmd    Command
}

// CommandBuffer defers structural and behavioral mutations out of the middle
// of a traversal. Systems push during iteration; the world flushes once the
// tick's traversals are done, so the live store never mutates under an
// active iterator.
type CommandBuffer struct {
	pending []pendingCommand
	log     *zap.Logger
}

func NewCommandBuffer(log *zap.Logger) *CommandBuffer {
	if log == nil {
		log = zap.NewNop()
	}
	return &CommandBuffer{log: log}
}

func (b *CommandBuffer) Push(target uuid.UUID, cmd Command) {
	if cmd == nil {
		return
	}
	b.pending = append(b.pending, pendingCommand{target: target, cmd: cmd})
}

func (b *CommandBuffer) Len() int {
	return len(b.pending)
}

// Flush resolves each target against the live object store and executes its
// command. A missing target is logged and skipped, a failing command is
// logged and isolated; neither aborts the flush. The buffer is cleared
// unconditionally.
func (b *CommandBuffer) Flush(w *World) {
	pending := b.pending
	b.pending = nil
	for _, p := range pending {
		obj, ok := w.Find(p.target)
		if !ok {
			b.log.Warn("command target not found, skipping",
				zap.String("guid", p.target.String()))
			continue
		}
		if err := p.cmd.Execute(obj); err != nil {
			b.log.Error("command failed",
				zap.String("guid", p.target.String()),
				zap.Error(err))
		}
	}
}
