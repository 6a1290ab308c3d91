package ecs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoziol/kine/pkg/ecs"
)

// components

type Position struct {
	X, Y, Z float32
}

type Velocity struct {
	DX, DY, DZ float32
}

// system

type MovementSystem struct {
	view      ecs.View
	positions *ecs.SparseSet[Position]
	velocity  *ecs.SparseSet[Velocity]
	moved     int
}

func (s *MovementSystem) Init(api ecs.SystemAPI) {
	s.positions = ecs.Storage[Position](api)
	s.velocity = ecs.Storage[Velocity](api)
	s.view = api.NewView(Position{}, Velocity{})
	s.moved = 0
}

func (s *MovementSystem) Update(api ecs.SystemAPI, dt time.Duration) {
	secs := float32(dt.Seconds())
	api.Each(s.view, func(e ecs.Entity) {
		pos := s.positions.Get(e.ID)
		vel := s.velocity.Get(e.ID)
		pos.X += vel.DX * secs
		pos.Y += vel.DY * secs
		pos.Z += vel.DZ * secs
		s.moved++
	})
}

func TestSchedulerUseCase(t *testing.T) {
	m := ecs.NewManager()
	sched := ecs.NewScheduler(m)

	mover := m.Create()
	ecs.Emplace(m, mover, Position{})
	ecs.Emplace(m, mover, Velocity{DX: 2, DY: 0, DZ: -1})

	still := m.Create()
	ecs.Emplace(m, still, Position{X: 5})

	movement := &MovementSystem{}
	sched.Register(movement)
	sched.Update(time.Second)

	assert.Equal(t, 1, movement.moved, "only the entity with both components moves")

	got := ecs.Get[Position](m, mover)
	require.NotNil(t, got)
	assert.InDelta(t, 2.0, got.X, 1e-6)
	assert.InDelta(t, -1.0, got.Z, 1e-6)
	assert.Equal(t, float32(5), ecs.Get[Position](m, still).X)

	m.Destroy(mover)
	sched.Update(time.Second)
	assert.Equal(t, 1, movement.moved, "destroyed entity leaves the view")
}
