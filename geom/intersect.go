package geom

import "math"

// SegmentIntersect returns the intersection point of segments a and b
// when they cross at parameters t,u both in [0,1] along a and b
// respectively, per §4.1. It returns ok=false when the segments are
// (numerically) parallel — |denom| < ParallelEPS — or when the crossing
// falls outside either segment's [0,1] range.
//
// t and u are also returned so callers (the welder) can classify a
// crossing as strictly interior (t,u away from 0/1 by more than an
// endpoint tolerance) versus an endpoint touch.
//
// Complexity: O(1).
func SegmentIntersect(a, b Segment) (point Vec2, t, u float64, ok bool) {
	r := a.Vector()
	s := b.Vector()
	denom := r.Cross(s)
	if math.Abs(denom) < ParallelEPS {
		return Vec2{}, 0, 0, false
	}
	qp := b.A.Sub(a.A)
	t = qp.Cross(s) / denom
	u = qp.Cross(r) / denom
	if t < -LineParamEPS || t > 1+LineParamEPS || u < -LineParamEPS || u > 1+LineParamEPS {
		return Vec2{}, t, u, false
	}
	return a.PointAt(t), t, u, true
}

// InteriorCrossing reports whether an accepted SegmentIntersect result
// lies strictly interior to both segments: farther than epsDist from
// every one of the four endpoints. This is the predicate the welder uses
// (§4.4 step 2) to decide whether a candidate crossing is a true mid-span
// split versus an incidental touch at an existing endpoint.
func InteriorCrossing(a, b Segment, point Vec2, epsDist float64) bool {
	for _, end := range [4]Vec2{a.A, a.B, b.A, b.B} {
		if point.Dist(end) <= epsDist {
			return false
		}
	}
	return true
}

// AngleBetween returns the unsigned angle in radians between directions
// u and v, in [0, pi]. Zero-length inputs return 0.
func AngleBetween(u, v Vec2) float64 {
	lu, lv := u.Len(), v.Len()
	if lu < equalEPS || lv < equalEPS {
		return 0
	}
	cos := u.Dot(v) / (lu * lv)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}
