package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kinetic/internal/application/system"
	"github.com/younwookim/kinetic/internal/domain/movement"
	"github.com/younwookim/kinetic/internal/logger"
)

func createTestSystem() *MovementSystem {
	s := NewMovementSystem()
	s.SetLogger(logger.Discard())
	return s
}

func stepN(s *MovementSystem, w *World, n int, raw map[EntityID]system.RawInput) []StepReport {
	var reports []StepReport
	for i := 0; i < n; i++ {
		reports = s.Update(w, raw, system.Tick{Time: float64(i) * dt, DeltaTime: dt})
	}
	return reports
}

func TestMovementSystem_SettlesOnFloor(t *testing.T) {
	w := createTestWorld()
	id := w.CreateCharacter(createTestCharacter("player", 0), createTestMode(), dt)

	reports := stepN(createTestSystem(), w, 60, nil)

	require.Len(t, reports, 1)
	r := reports[0]
	assert.Equal(t, id, r.ID)
	assert.False(t, r.Skipped)
	assert.True(t, r.Grounded)
	assert.True(t, r.State.Has(movement.Grounded))
	assert.InDelta(t, 0, r.Position.Y(), 1e-9)
	assert.Equal(t, w.Body[id].Position, r.Position)
}

func TestMovementSystem_AscendingOrder(t *testing.T) {
	w := createTestWorld()
	for _, x := range []float64{-4, 0, 4} {
		w.CreateCharacter(createTestCharacter("c", x), createTestMode(), dt)
	}

	reports := createTestSystem().Update(w, nil, system.Tick{DeltaTime: dt})

	require.Len(t, reports, 3)
	for i, r := range reports {
		assert.Equal(t, EntityID(i+1), r.ID)
	}
}

func TestMovementSystem_RoutesInputPerEntity(t *testing.T) {
	w := createTestWorld()
	walker := w.CreateCharacter(createTestCharacter("walker", -3), createTestMode(), dt)
	idle := w.CreateCharacter(createTestCharacter("idle", 3), createTestMode(), dt)

	raw := map[EntityID]system.RawInput{walker: {MoveZ: 1}}
	stepN(createTestSystem(), w, 60, raw)

	assert.Greater(t, w.Body[walker].Position.Z(), 3.0)
	assert.InDelta(t, 0, w.Body[idle].Position.Z(), 1e-9)
	assert.InDelta(t, 3, w.Body[idle].Position.X(), 1e-9)
}

func TestMovementSystem_BodyColliderFollows(t *testing.T) {
	w := createTestWorld()
	id := w.CreateCharacter(createTestCharacter("player", 0), createTestMode(), dt)

	stepN(createTestSystem(), w, 30, map[EntityID]system.RawInput{id: {MoveX: 1}})

	col, ok := w.Stage.Collider(w.Character[id].Collider)
	require.True(t, ok)
	pos := w.Body[id].Position
	assert.Equal(t, pos.Add(mgl64.Vec3{-0.5, 0, -0.5}), col.Box.Min)
	assert.Equal(t, pos.Add(mgl64.Vec3{0.5, 2, 0.5}), col.Box.Max)
}

func TestMovementSystem_MisconfiguredCharacterIsolated(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(w *World, id EntityID)
		reason string
	}{
		{"missing body", func(w *World, id EntityID) { delete(w.Body, id) }, "no body"},
		{"missing resolver", func(w *World, id EntityID) { delete(w.Resolver, id) }, "no resolver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createTestWorld()
			broken := w.CreateCharacter(createTestCharacter("broken", -3), createTestMode(), dt)
			healthy := w.CreateCharacter(createTestCharacter("healthy", 3), createTestMode(), dt)
			tt.mutate(w, broken)

			reports := stepN(createTestSystem(), w, 30, nil)

			require.Len(t, reports, 2)
			assert.True(t, reports[0].Skipped)
			assert.Equal(t, tt.reason, reports[0].Reason)
			assert.Equal(t, healthy, reports[1].ID)
			assert.False(t, reports[1].Skipped)
			assert.True(t, reports[1].Grounded)
		})
	}
}

func TestMovementSystem_MissingInputTrackerRecreated(t *testing.T) {
	w := createTestWorld()
	id := w.CreateCharacter(createTestCharacter("player", 0), createTestMode(), dt)
	delete(w.Input, id)

	reports := createTestSystem().Update(w, nil, system.Tick{DeltaTime: dt})

	assert.False(t, reports[0].Skipped)
	assert.NotNil(t, w.Input[id])
}

func TestMovementSystem_CharactersIgnoreEachOther(t *testing.T) {
	w := createTestWorld()
	runner := w.CreateCharacter(createTestCharacter("runner", 0), createTestMode(), dt)
	w.CreateCharacter(createTestCharacter("blocker", 2), createTestMode(), dt)

	// body colliders sit on layer 8, outside the characters' masks
	stepN(createTestSystem(), w, 60, map[EntityID]system.RawInput{runner: {MoveX: 1}})

	assert.Greater(t, w.Body[runner].Position.X(), 3.0)
}
