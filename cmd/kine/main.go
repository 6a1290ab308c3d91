package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/pkoziol/kine/internal/config"
	"github.com/pkoziol/kine/internal/platform"
	"github.com/pkoziol/kine/pkg/app"
	"github.com/pkoziol/kine/pkg/ecs"
	"github.com/pkoziol/kine/pkg/game"
	"github.com/pkoziol/kine/pkg/render"
	"github.com/pkoziol/kine/pkg/scene"
)

// Spin makes a node rotate about Y at a fixed angular speed.
type Spin struct {
	DegPerSec float32
	Angle     float32
}

type spinSystem struct {
	view  ecs.View
	spins *ecs.SparseSet[Spin]
	nodes map[ecs.Entity]*scene.Node
}

func (s *spinSystem) Init(api ecs.SystemAPI) {
	s.spins = ecs.Storage[Spin](api)
	s.view = api.NewView(Spin{})
}

func (s *spinSystem) Update(api ecs.SystemAPI, dt time.Duration) {
	secs := float32(dt.Seconds())
	api.Each(s.view, func(e ecs.Entity) {
		spin := s.spins.Get(e.ID)
		spin.Angle += spin.DegPerSec * secs
		if node := s.nodes[e]; node != nil {
			node.Local().SetRotation(mgl32.HomogRotate3DY(mgl32.DegToRad(spin.Angle)))
		}
	})
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to kine.toml (defaults when empty)")
	frames := flag.Int("frames", 300, "number of frames to simulate")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer log.Sync()

	table := render.NewTable()
	cube, err := cubeRenderable()
	if err != nil {
		return err
	}
	handle := table.Add(cube)

	var culler scene.Culler
	switch cfg.Scene.Culling {
	case "none":
		culler = scene.CullNone{}
	default:
		culler = scene.FrustumCuller{}
	}

	sc := scene.New(culler, log)
	cam := scene.NewCamera(cfg.Camera.FovDeg, 1, cfg.Camera.Near, cfg.Camera.Far)
	cam.LookAt(mgl32.Vec3{0, 8, 20}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})

	world := game.NewWorld(log)
	system := &spinSystem{nodes: make(map[ecs.Entity]*scene.Node)}
	rng := rand.New(rand.NewSource(1))
	for x := -3; x <= 3; x++ {
		for z := -3; z <= 3; z++ {
			node := sc.Root().AttachChild(scene.NewNode())
			node.Local().SetTranslation(mgl32.Vec3{float32(x) * 3, 0, float32(z) * 3})
			node.SetBoundingRadius(1)
			node.SetRenderable(handle)
			obj := world.Spawn(node)
			ecs.Emplace(world.Manager(), obj.Entity(), Spin{DegPerSec: 30 + rng.Float32()*60})
			system.nodes[obj.Entity()] = node
		}
	}
	world.RegisterSystems(system)

	win := platform.NewHeadless(platform.WindowConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
	})
	dev := render.NewNullDevice()

	engine, err := app.New(app.Config{
		Window:    win,
		Device:    dev,
		World:     world,
		Scene:     sc,
		Camera:    cam,
		Factory:   render.NewPassFactory(table, log),
		TargetFPS: cfg.Frame.TargetFPS,
		Log:       log,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < *frames; i++ {
		engine.Step(time.Second / time.Duration(cfg.Frame.TargetFPS))
	}
	log.Info("demo finished",
		zap.Int("frames", dev.Frames()),
		zap.Int("draw_commands", dev.Commands()),
		zap.Int("objects", world.Len()),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func cubeRenderable() (*render.Renderable, error) {
	material, err := render.NewMaterial(&render.Shader{Name: "lit"})
	if err != nil {
		return nil, err
	}
	material.Uniforms["uColor"] = [3]float32{0.8, 0.4, 0.2}
	return render.NewRenderable(&render.Mesh{Name: "cube", VertexCount: 24, IndexCount: 36}, material)
}
