package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Item pairs a weak renderable reference with its resolved world matrix.
// Scene snapshots carry items; the pass factory consumes them.
type Item struct {
	Renderable Handle
	World      mgl32.Mat4
}

// Command is one device-agnostic draw: which shader, which mesh, and the
// merged uniform values for the object.
type Command struct {
	Shader   *Shader
	Mesh     *Mesh
	Uniforms map[string]any
}

// Pass is the per-frame input to a Device.
type Pass struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Commands   []Command
}

// PassFactory converts snapshot items into render commands, resolving weak
// renderable handles against its table. Items whose renderable expired
// between capture and consumption are skipped.
type PassFactory struct {
	table *Table
	log   *zap.Logger
}

func NewPassFactory(table *Table, log *zap.Logger) *PassFactory {
	if table == nil {
		panic("render: pass factory requires a table")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PassFactory{table: table, log: log}
}

func (f *PassFactory) Build(projection, view mgl32.Mat4, items []Item) *Pass {
	pass := &Pass{
		Projection: projection,
		View:       view,
		Commands:   make([]Command, 0, len(items)),
	}
	for _, item := range items {
		r, ok := f.table.Resolve(item.Renderable)
		if !ok {
			f.log.Warn("renderable expired between snapshot and render, skipping",
				zap.Uint32("slot", item.Renderable.index))
			continue
		}
		uniforms := make(map[string]any, len(r.Material.Uniforms)+1)
		for k, v := range r.Material.Uniforms {
			uniforms[k] = v
		}
		uniforms["uModel"] = item.World
		pass.Commands = append(pass.Commands, Command{
			Shader:   r.Material.Shader,
			Mesh:     r.Mesh,
			Uniforms: uniforms,
		})
	}
	return pass
}
