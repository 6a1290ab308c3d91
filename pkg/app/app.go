// Package app wires the engine core into a single-threaded frame loop:
// poll input, update the world, flush deferred commands, propagate scene
// transforms, snapshot, render, pace.
package app

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pkoziol/kine/internal/platform"
	"github.com/pkoziol/kine/pkg/game"
	"github.com/pkoziol/kine/pkg/render"
	"github.com/pkoziol/kine/pkg/scene"
)

type Config struct {
	Window    platform.Window
	Device    render.Device
	World     *game.World
	Scene     *scene.Scene
	Camera    *scene.Camera
	Factory   *render.PassFactory
	TargetFPS int
	Log       *zap.Logger
}

type App struct {
	window  platform.Window
	device  render.Device
	world   *game.World
	scene   *scene.Scene
	camera  *scene.Camera
	factory *render.PassFactory
	pacer   *Pacer
	log     *zap.Logger
	last    time.Time
}

// New validates the assembled capabilities and initializes the device.
// Setup failures propagate; per-frame failures later do not.
func New(conf Config) (*App, error) {
	switch {
	case conf.Window == nil:
		return nil, errors.New("app: window is required")
	case conf.Device == nil:
		return nil, errors.New("app: device is required")
	case conf.World == nil:
		return nil, errors.New("app: world is required")
	case conf.Scene == nil:
		return nil, errors.New("app: scene is required")
	case conf.Camera == nil:
		return nil, errors.New("app: camera is required")
	case conf.Factory == nil:
		return nil, errors.New("app: pass factory is required")
	}
	if conf.Log == nil {
		conf.Log = zap.NewNop()
	}
	if err := conf.Device.Init(); err != nil {
		return nil, err
	}
	w, h := conf.Window.Size()
	conf.Device.SetViewport(0, 0, w, h)
	conf.Camera.AspectFromViewport(w, h)
	return &App{
		window:  conf.Window,
		device:  conf.Device,
		world:   conf.World,
		scene:   conf.Scene,
		camera:  conf.Camera,
		factory: conf.Factory,
		pacer:   NewPacer(conf.TargetFPS),
		log:     conf.Log,
	}, nil
}

// Step runs exactly one frame without pacing. A render failure is logged
// and isolated; the loop survives it.
func (a *App) Step(dt time.Duration) {
	for _, ev := range a.window.PollEvents() {
		switch e := ev.(type) {
		case platform.Resize:
			a.camera.AspectFromViewport(e.Width, e.Height)
			a.device.SetViewport(0, 0, e.Width, e.Height)
		case platform.CloseRequested:
			a.log.Info("close requested")
		}
	}
	a.world.Update(dt)
	snap := a.scene.CreateSnapshot(a.camera)
	pass := a.factory.Build(snap.Projection, snap.View, snap.Items)
	if err := a.device.Render(pass); err != nil {
		a.log.Error("render failed, frame dropped", zap.Error(err))
	}
}

// Run drives the frame loop until the window closes or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.last = time.Now()
	for !a.window.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		now := time.Now()
		dt := now.Sub(a.last)
		a.last = now
		a.Step(dt)
		a.pacer.Wait()
	}
	return nil
}
