package movement

import "sort"

// Keyframe is a single (time, value) sample on a Curve
type Keyframe struct {
	Time  float64
	Value float64
}

// Curve is a piecewise-linear function sampled from keyframes.
// Sampling clamps to the first and last key outside the keyed range.
type Curve struct {
	keys []Keyframe
}

// NewCurve creates a curve from keys in any order
func NewCurve(keys ...Keyframe) Curve {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return Curve{keys: sorted}
}

// Constant returns a curve that evaluates to v everywhere
func Constant(v float64) Curve {
	return NewCurve(Keyframe{Time: 0, Value: v})
}

// Linear returns a curve ramping from v0 at t0 to v1 at t1
func Linear(t0, v0, t1, v1 float64) Curve {
	return NewCurve(Keyframe{Time: t0, Value: v0}, Keyframe{Time: t1, Value: v1})
}

// Keys returns a copy of the curve's keyframes
func (c Curve) Keys() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

// Evaluate samples the curve at t. An empty curve evaluates to 0.
func (c Curve) Evaluate(t float64) float64 {
	n := len(c.keys)
	if n == 0 {
		return 0
	}
	if t <= c.keys[0].Time {
		return c.keys[0].Value
	}
	if t >= c.keys[n-1].Time {
		return c.keys[n-1].Value
	}

	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > t })
	a, b := c.keys[i-1], c.keys[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}
	return a.Value + (b.Value-a.Value)*(t-a.Time)/span
}
