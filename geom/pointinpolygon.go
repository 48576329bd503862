package geom

import "math"

// PointInPolygon reports whether p lies inside poly using the standard
// even-odd ray-casting test (a horizontal ray cast from p to +X, counting
// boundary crossings). Per §4.1 boundary behavior is implementation
// defined: a point exactly on an edge may report true or false, but the
// same point queried twice against the same polygon always reports the
// same answer (the test has no hidden state or randomness).
//
// Complexity: O(n).
func PointInPolygon(p Vec2, poly Polygon) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		crosses := (vi.Y > p.Y) != (vj.Y > p.Y)
		if !crosses {
			continue
		}
		xCross := vj.X + (p.Y-vj.Y)*(vi.X-vj.X)/(vi.Y-vj.Y)
		if p.X < xCross {
			inside = !inside
		}
	}
	return inside
}

// DistanceToSegment returns the Euclidean distance from p to the closest
// point on the closed segment s.
func DistanceToSegment(p Vec2, s Segment) float64 {
	v := s.Vector()
	l2 := v.Dot(v)
	if l2 < equalEPS {
		return p.Dist(s.A)
	}
	t := p.Sub(s.A).Dot(v) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Dist(s.PointAt(t))
}

// DistanceToPolygon returns the minimum distance from p to any boundary
// edge of poly. Returns +Inf for a polygon with fewer than 2 vertices.
func DistanceToPolygon(p Vec2, poly Polygon) float64 {
	if len(poly) < 2 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	poly.Edges(func(a, b Vec2) {
		d := DistanceToSegment(p, Segment{a, b})
		if d < best {
			best = d
		}
	})
	return best
}
