package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	contactEpsilon  = 1e-6
	maxAdvanceSteps = 64
	dirEpsilon      = 1e-12
)

// SphereCastAll sweeps a sphere from origin along dir for maxDist and reports
// every collider it touches, one hit per collider, in ascending collider order.
// A sphere that already overlaps a collider reports it at distance 0.
func (s *Stage) SphereCastAll(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask LayerMask, triggers TriggerInteraction) []Hit {
	d, ok := unit(dir)
	if !ok || maxDist <= 0 {
		return nil
	}

	var hits []Hit
	for _, id := range s.order {
		c := s.colliders[id]
		if !s.accepts(c, mask, triggers) {
			continue
		}
		h, ok := sweepSphereBox(origin, radius, d, maxDist, c.Box)
		if !ok {
			continue
		}
		h.Collider = id
		h.Root = s.Root(id)
		hits = append(hits, h)
	}
	return hits
}

// CapsuleCastAll sweeps a capsule between sphere centers p1 and p2 along dir.
// The capsule is sampled as spheres spaced at most one radius apart along its
// axis; the earliest contact per collider is reported.
func (s *Stage) CapsuleCastAll(p1, p2 mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, mask LayerMask, triggers TriggerInteraction) []Hit {
	d, ok := unit(dir)
	if !ok || maxDist <= 0 {
		return nil
	}
	samples := capsuleSamples(p1, p2, radius)

	var hits []Hit
	for _, id := range s.order {
		c := s.colliders[id]
		if !s.accepts(c, mask, triggers) {
			continue
		}
		best := Hit{Distance: math.Inf(1)}
		found := false
		for _, p := range samples {
			h, ok := sweepSphereBox(p, radius, d, maxDist, c.Box)
			if ok && h.Distance < best.Distance {
				best = h
				found = true
			}
		}
		if !found {
			continue
		}
		best.Collider = id
		best.Root = s.Root(id)
		hits = append(hits, best)
	}
	return hits
}

func capsuleSamples(p1, p2 mgl64.Vec3, radius float64) []mgl64.Vec3 {
	axis := p2.Sub(p1)
	length := axis.Len()
	if length <= contactEpsilon || radius <= 0 {
		return []mgl64.Vec3{p1}
	}
	n := int(math.Ceil(length/radius)) + 1
	out := make([]mgl64.Vec3, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		out[i] = p1.Add(axis.Mul(t))
	}
	return out
}

// sweepSphereBox finds the first contact of a moving sphere with a box using
// a slab test on the inflated box followed by conservative advancement.
func sweepSphereBox(origin mgl64.Vec3, radius float64, dir mgl64.Vec3, maxDist float64, box Box) (Hit, bool) {
	if box.Distance(origin) <= radius {
		return Hit{
			Distance: 0,
			Point:    box.ClosestPoint(origin),
			Normal:   dir.Mul(-1),
		}, true
	}

	tEnter, tExit, ok := raySlab(origin, dir, box.Inflate(radius))
	if !ok || tExit < 0 || tEnter > maxDist {
		return Hit{}, false
	}

	t := math.Max(tEnter, 0)
	for i := 0; i < maxAdvanceSteps; i++ {
		center := origin.Add(dir.Mul(t))
		gap := box.Distance(center) - radius
		if gap <= contactEpsilon {
			point := box.ClosestPoint(center)
			normal, ok := unit(center.Sub(point))
			if !ok {
				normal = dir.Mul(-1)
			}
			return Hit{Distance: t, Point: point, Normal: normal}, true
		}
		t += gap
		if t > tExit || t > maxDist {
			return Hit{}, false
		}
	}
	return Hit{}, false
}

// raySlab intersects a ray with a box, returning entry and exit distances
func raySlab(origin, dir mgl64.Vec3, box Box) (tEnter, tExit float64, ok bool) {
	tEnter = math.Inf(-1)
	tExit = math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < dirEpsilon {
			if origin[i] < box.Min[i] || origin[i] > box.Max[i] {
				return 0, 0, false
			}
			continue
		}
		t1 := (box.Min[i] - origin[i]) / dir[i]
		t2 := (box.Max[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tEnter = math.Max(tEnter, t1)
		tExit = math.Min(tExit, t2)
		if tEnter > tExit {
			return 0, 0, false
		}
	}
	return tEnter, tExit, true
}

func unit(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l <= dirEpsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}
