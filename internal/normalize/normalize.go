// Package normalize maps raw shot features into [0, 1] using fixed
// per-feature bounds, and back again for reporting. The bounds are
// configuration, never recomputed from a dataset, so training and
// inference always see the same scale.
package normalize

import (
	"github.com/irodriguez/neurogoalkeeper/internal/nn"
)

// Feature indices within a shot vector.
const (
	Distance = iota
	Speed
	X
	Y

	NumFeatures
)

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Bounds holds one Range per shot feature.
type Bounds struct {
	Distance Range
	Speed    Range
	X        Range
	Y        Range
}

// GoalDefaults returns the handball defaults: shot distances up to the
// backcourt, professional shot speeds, and the goal mouth as drawn on
// the shot map (3.16 m x 2.08 m including the posts).
func GoalDefaults() Bounds {
	return Bounds{
		Distance: Range{Min: 0, Max: 15},
		Speed:    Range{Min: 0, Max: 130},
		X:        Range{Min: 0, Max: 3.16},
		Y:        Range{Min: 0, Max: 2.08},
	}
}

// Normalizer rescales feature vectors to [0, 1] and back.
type Normalizer struct {
	ranges [NumFeatures]Range
}

// New validates the bounds and builds a Normalizer.
func New(b Bounds) (*Normalizer, error) {
	ranges := [NumFeatures]Range{b.Distance, b.Speed, b.X, b.Y}
	for i, r := range ranges {
		if r.Max <= r.Min {
			return nil, nn.Configf("normalize: feature %d bounds invalid: max %v <= min %v", i, r.Max, r.Min)
		}
	}
	return &Normalizer{ranges: ranges}, nil
}

// Normalize maps one raw feature value into [0, 1]. Values outside the
// declared bounds are clamped, not rejected.
func (n *Normalizer) Normalize(feature int, v float64) float64 {
	r := n.ranges[feature]
	if v < r.Min {
		v = r.Min
	} else if v > r.Max {
		v = r.Max
	}
	return (v - r.Min) / (r.Max - r.Min)
}

// Denormalize maps a value in [0, 1] back to the feature's raw scale.
// It is the inverse of Normalize for in-bounds inputs; clamped inputs
// round-trip exactly onto the bound.
func (n *Normalizer) Denormalize(feature int, v float64) float64 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	r := n.ranges[feature]
	return r.Min + v*(r.Max-r.Min)
}

// Vector normalizes a full feature vector into dst, allocating when
// dst is nil or too short.
func (n *Normalizer) Vector(features []float64, dst []float64) []float64 {
	if cap(dst) < len(features) {
		dst = make([]float64, len(features))
	}
	dst = dst[:len(features)]
	for i, v := range features {
		dst[i] = n.Normalize(i, v)
	}
	return dst
}
