package geom

import "math"

// Area returns the magnitude of the polygon's shoelace area: the sum of
// the cross products of consecutive vertices, halved and taken absolute.
// It is defined regardless of winding (CW or CCW) and is always >= 0.
// Per §4.1, Area is undefined (the result is meaningless) for
// self-intersecting input; this function does not detect that case.
//
// Complexity: O(n).
func Area(p Polygon) float64 {
	if len(p) < 3 {
		return 0
	}
	return math.Abs(signedArea(p))
}

// signedArea returns the shoelace sum without taking the absolute value;
// positive for CCW polygons, negative for CW. Used internally by Centroid
// and by offset/clip routines that need winding-aware normals.
func signedArea(p Polygon) float64 {
	sum := 0.0
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum / 2
}

// Centroid returns the signed-area-weighted centroid of p. For a
// degenerate polygon (fewer than 3 vertices, or zero area) it falls back
// to the arithmetic mean of the vertices so callers always get a finite
// point to work with.
//
// Complexity: O(n).
func Centroid(p Polygon) Vec2 {
	n := len(p)
	if n == 0 {
		return Vec2{}
	}
	a := signedArea(p)
	if math.Abs(a) < equalEPS {
		return meanVertex(p)
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p[i].X*p[j].Y - p[j].X*p[i].Y
		cx += (p[i].X + p[j].X) * cross
		cy += (p[i].Y + p[j].Y) * cross
	}
	factor := 1 / (6 * a)
	return Vec2{cx * factor, cy * factor}
}

func meanVertex(p Polygon) Vec2 {
	var sx, sy float64
	for _, v := range p {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(p))
	return Vec2{sx / n, sy / n}
}

// Perimeter returns the sum of edge lengths of p.
//
// Complexity: O(n).
func Perimeter(p Polygon) float64 {
	total := 0.0
	p.Edges(func(a, b Vec2) { total += a.Dist(b) })
	return total
}

// IsCCW reports whether p is wound counter-clockwise. Degenerate input
// (zero signed area) reports false.
func IsCCW(p Polygon) bool { return signedArea(p) > 0 }

// EnsureCCW returns p unchanged if it is already CCW (or degenerate),
// otherwise returns a reversed copy.
func EnsureCCW(p Polygon) Polygon {
	if IsCCW(p) || len(p) < 3 {
		return p
	}
	out := make(Polygon, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}
