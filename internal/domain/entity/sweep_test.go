package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func createTestStage() *Stage {
	s := NewStage("test")
	s.AddCollider(Collider{ID: 1, Name: "floor", Box: Box{Min: mgl64.Vec3{-10, -1, -10}, Max: mgl64.Vec3{10, 0, 10}}})
	s.AddCollider(Collider{ID: 2, Name: "wall", Box: Box{Min: mgl64.Vec3{2, 0, -10}, Max: mgl64.Vec3{3, 4, 10}}})
	s.AddCollider(Collider{ID: 3, Name: "trigger", Trigger: true, Box: Box{Min: mgl64.Vec3{-3, 0, -1}, Max: mgl64.Vec3{-2, 2, 1}}})
	s.AddCollider(Collider{ID: 4, Name: "ghost", Layer: 5, Box: Box{Min: mgl64.Vec3{-1, 0, 2}, Max: mgl64.Vec3{1, 2, 3}}})
	return s
}

func TestSphereCastAll_Floor(t *testing.T) {
	s := createTestStage()

	hits := s.SphereCastAll(mgl64.Vec3{0, 2, 0}, 0.5, mgl64.Vec3{0, -1, 0}, 4, LayerMaskAll, TriggersIgnore)
	require.Len(t, hits, 1)

	h := hits[0]
	assert.Equal(t, ColliderID(1), h.Collider)
	assert.Equal(t, ColliderID(1), h.Root)
	assert.InDelta(t, 1.5, h.Distance, eps)
	assert.InDelta(t, 0, h.Point.Y(), eps)
	assert.InDelta(t, 1, h.Normal.Y(), eps)
}

func TestSphereCastAll_Wall(t *testing.T) {
	s := createTestStage()

	hits := s.SphereCastAll(mgl64.Vec3{0, 1, 0}, 0.5, mgl64.Vec3{1, 0, 0}, 5, LayerMaskAll, TriggersIgnore)
	require.Len(t, hits, 1)

	assert.Equal(t, ColliderID(2), hits[0].Collider)
	assert.InDelta(t, 1.5, hits[0].Distance, eps)
	assert.InDelta(t, -1, hits[0].Normal.X(), eps)
}

func TestSphereCastAll_Corner(t *testing.T) {
	s := NewStage("corner")
	s.AddCollider(Collider{Box: Box{Min: mgl64.Vec3{1, 0, 1}, Max: mgl64.Vec3{2, 1, 2}}})

	dir := mgl64.Vec3{1, 0, 1}.Normalize()
	hits := s.SphereCastAll(mgl64.Vec3{0, 0.5, 0}, 0.5, dir, 5, LayerMaskAll, TriggersIgnore)
	require.Len(t, hits, 1)

	// sphere touches the vertical edge at (1, y, 1)
	want := math.Sqrt2 - 0.5
	assert.InDelta(t, want, hits[0].Distance, 1e-4)
	assert.InDelta(t, -dir.X(), hits[0].Normal.X(), 1e-3)
	assert.InDelta(t, -dir.Z(), hits[0].Normal.Z(), 1e-3)
}

func TestSphereCastAll_Filtering(t *testing.T) {
	s := createTestStage()

	tests := []struct {
		name     string
		origin   mgl64.Vec3
		dir      mgl64.Vec3
		mask     LayerMask
		triggers TriggerInteraction
		want     []ColliderID
	}{
		{"trigger ignored", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{-1, 0, 0}, LayerMaskAll, TriggersIgnore, nil},
		{"trigger collides", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{-1, 0, 0}, LayerMaskAll, TriggersCollide, []ColliderID{3}},
		{"layer in mask", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}, LayerMaskAll, TriggersIgnore, []ColliderID{4}},
		{"layer outside mask", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}, LayerMask(1), TriggersIgnore, nil},
		{"out of range", mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0}, LayerMaskAll, TriggersIgnore, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxDist := 3.0
			if tt.name == "out of range" {
				maxDist = 1
			}
			var got []ColliderID
			for _, h := range s.SphereCastAll(tt.origin, 0.5, tt.dir, maxDist, tt.mask, tt.triggers) {
				got = append(got, h.Collider)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSphereCastAll_StartOverlap(t *testing.T) {
	s := createTestStage()

	hits := s.SphereCastAll(mgl64.Vec3{0, 0.2, 0}, 0.5, mgl64.Vec3{0, 0, 1}, 0.1, LayerMaskAll, TriggersIgnore)
	require.Len(t, hits, 1)
	assert.Equal(t, ColliderID(1), hits[0].Collider)
	assert.Equal(t, 0.0, hits[0].Distance)
	assert.Equal(t, mgl64.Vec3{0, 0, -1}, hits[0].Normal)
}

func TestSphereCastAll_Degenerate(t *testing.T) {
	s := createTestStage()
	assert.Empty(t, s.SphereCastAll(mgl64.Vec3{0, 2, 0}, 0.5, mgl64.Vec3{}, 4, LayerMaskAll, TriggersIgnore))
	assert.Empty(t, s.SphereCastAll(mgl64.Vec3{0, 2, 0}, 0.5, mgl64.Vec3{0, -1, 0}, 0, LayerMaskAll, TriggersIgnore))
}

func TestCapsuleCastAll_EarliestSample(t *testing.T) {
	s := NewStage("ledge")
	// overhang that only the top of the capsule reaches
	s.AddCollider(Collider{ID: 1, Box: Box{Min: mgl64.Vec3{1, 1.5, -1}, Max: mgl64.Vec3{2, 3, 1}}})

	p1 := mgl64.Vec3{0, 0.5, 0}
	p2 := mgl64.Vec3{0, 1.5, 0}
	hits := s.CapsuleCastAll(p1, p2, 0.4, mgl64.Vec3{1, 0, 0}, 3, LayerMaskAll, TriggersIgnore)
	require.Len(t, hits, 1)
	assert.InDelta(t, 0.6, hits[0].Distance, eps)
	assert.InDelta(t, -1, hits[0].Normal.X(), eps)

	// a sphere at the bottom alone misses it
	assert.Empty(t, s.SphereCastAll(p1, 0.4, mgl64.Vec3{1, 0, 0}, 3, LayerMaskAll, TriggersIgnore))
}

func TestCapsuleCastAll_Order(t *testing.T) {
	s := NewStage("order")
	s.AddCollider(Collider{ID: 7, Box: Box{Min: mgl64.Vec3{1, 0, -1}, Max: mgl64.Vec3{2, 2, 1}}})
	s.AddCollider(Collider{ID: 3, Box: Box{Min: mgl64.Vec3{4, 0, -1}, Max: mgl64.Vec3{5, 2, 1}}})

	hits := s.CapsuleCastAll(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 1.5, 0}, 0.4, mgl64.Vec3{1, 0, 0}, 10, LayerMaskAll, TriggersIgnore)
	require.Len(t, hits, 2)
	assert.Equal(t, ColliderID(3), hits[0].Collider)
	assert.Equal(t, ColliderID(7), hits[1].Collider)
	assert.Less(t, hits[1].Distance, hits[0].Distance)
}
