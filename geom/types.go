package geom

import "math"

// Default tolerances used across the kernel. Individual functions that
// accept an explicit epsilon parameter may be called with a different
// value; these are the defaults used by the zero-argument call sites.
const (
	// ParallelEPS bounds the segment-intersection denominator below which
	// two segments are treated as parallel (no unique intersection).
	ParallelEPS = 1e-3

	// EdgeOverlapEPS is the distance tolerance used when deciding whether
	// a parcel edge lies "on" a block edge (frontage matching).
	EdgeOverlapEPS = 2.0

	// LineParamEPS bounds how close an intersection parameter must be to
	// an endpoint (t or u near 0 or 1) before it is treated as a touch at
	// the endpoint rather than a proper interior crossing.
	LineParamEPS = 1e-4

	// equalEPS is the default tolerance for Vec2 equality comparisons.
	equalEPS = 1e-9
)

// Vec2 is a point or free vector in the plane, in meters.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the scalar 2D cross product (z-component of v×w in 3D).
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and w.
func (v Vec2) Dist(w Vec2) float64 { return v.Sub(w).Len() }

// Normalized returns v scaled to unit length, or the zero vector if v is
// (numerically) the zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l < equalEPS {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Perp returns v rotated +90 degrees (left normal in a right-handed,
// CCW-positive plane).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Angle returns the angle of v from the positive X axis, in radians,
// in (-pi, pi].
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Finite reports whether both components of v are finite reals.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// EqualEPS reports whether v and w are within eps of each other.
func (v Vec2) EqualEPS(w Vec2, eps float64) bool { return v.Dist(w) <= eps }

// Segment is an oriented line segment from A to B.
type Segment struct {
	A, B Vec2
}

// Vector returns B - A.
func (s Segment) Vector() Vec2 { return s.B.Sub(s.A) }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return s.A.Dist(s.B) }

// Degenerate reports whether the segment has (numerically) zero length.
func (s Segment) Degenerate() bool { return s.A.Dist(s.B) < equalEPS }

// PointAt returns the point at parameter t along the segment, t=0 at A,
// t=1 at B. t is not clamped to [0,1].
func (s Segment) PointAt(t float64) Vec2 { return s.A.Add(s.Vector().Scale(t)) }

// Polygon is a closed planar polygon given as an ordered vertex list.
// By convention every function in this package that produces a polygon
// produces it in CCW order; functions that consume one do not require a
// particular winding unless documented (Area always returns a
// non-negative magnitude regardless of winding).
type Polygon []Vec2

// Simple reports whether the polygon has at least 3 vertices, which is
// the minimum this package treats as non-degenerate. It does not check
// for self-intersection (§4.1: area() is undefined for self-intersecting
// input; callers are responsible for only feeding simple polygons produced
// by this package's own constructors).
func (p Polygon) Simple() bool { return len(p) >= 3 }

// Edges calls fn once for every oriented boundary edge (p[i], p[i+1]),
// wrapping around from the last vertex to the first.
func (p Polygon) Edges(fn func(a, b Vec2)) {
	n := len(p)
	for i := 0; i < n; i++ {
		fn(p[i], p[(i+1)%n])
	}
}
