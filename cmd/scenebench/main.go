package main

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/profile"

	"github.com/pkoziol/kine/pkg/render"
	"github.com/pkoziol/kine/pkg/scene"
)

const (
	branches   = 64
	depth      = 16
	iterations = 2000
)

// Builds a tree of branches*depth nodes, dirties one spine per iteration and
// measures propagation plus snapshot capture under a CPU profile.
func main() {
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()

	table := render.NewTable()
	material, err := render.NewMaterial(&render.Shader{Name: "flat"})
	if err != nil {
		panic(err)
	}
	renderable, err := render.NewRenderable(&render.Mesh{Name: "unit"}, material)
	if err != nil {
		panic(err)
	}
	handle := table.Add(renderable)

	sc := scene.New(scene.CullNone{}, nil)
	spines := make([]*scene.Node, 0, branches)
	for b := 0; b < branches; b++ {
		parent := sc.Root().AttachChild(scene.NewNode())
		parent.Local().SetTranslation(mgl32.Vec3{float32(b), 0, 0})
		spines = append(spines, parent)
		for d := 0; d < depth; d++ {
			child := parent.AttachChild(scene.NewNode())
			child.Local().SetTranslation(mgl32.Vec3{0, 1, 0})
			child.SetRenderable(handle)
			parent = child
		}
	}

	cam := scene.NewCamera(60, 16.0/9.0, 0.1, 1000)
	factory := render.NewPassFactory(table, nil)

	start := time.Now()
	commands := 0
	for i := 0; i < iterations; i++ {
		spine := spines[i%branches]
		spine.Translate(mgl32.Vec3{0, 0, 0.01})
		snap := sc.CreateSnapshot(cam)
		pass := factory.Build(snap.Projection, snap.View, snap.Items)
		commands += len(pass.Commands)
	}
	elapsed := time.Since(start)

	fmt.Printf("%d iterations over %d nodes: %s (%.1f us/frame, %d commands)\n",
		iterations, branches*depth, elapsed,
		float64(elapsed.Microseconds())/float64(iterations), commands)
}
