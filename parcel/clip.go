package parcel

import "github.com/cityfab/cityfab/geom"

// clipToPolygon clips subject against clip by successively clipping
// against every edge's inward half-plane (Sutherland-Hodgman generalized
// from a single half-plane to a polygon's full edge set). This is exact
// when clip is convex; the overview's "convex-ish" blocks make this an
// accepted approximation for the mildly non-convex blocks the road
// graph's cycle search can produce.
func clipToPolygon(subject, clip geom.Polygon) geom.Polygon {
	out := subject
	clip = geom.EnsureCCW(clip)
	clip.Edges(func(a, b geom.Vec2) {
		if len(out) == 0 {
			return
		}
		dir := b.Sub(a).Normalized()
		normal := dir.Perp() // left of a CCW edge: inward
		out = geom.ClipByHalfPlane(out, a, normal)
	})
	return out
}

// maxDistanceToLine returns the largest perpendicular distance from any
// vertex of p to the infinite line through a and b.
func maxDistanceToLine(p geom.Polygon, a, b geom.Vec2) float64 {
	dir := b.Sub(a).Normalized()
	normal := geom.Vec2{X: dir.Y, Y: -dir.X}
	max := 0.0
	for _, v := range p {
		d := v.Sub(a).Dot(normal)
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}
