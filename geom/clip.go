package geom

// ClipByHalfPlane clips polygon p against the half-plane
// {v : (v - point) . normal >= 0}, keeping the side normal points into,
// using the Sutherland-Hodgman algorithm (§4.1). The result may have
// fewer vertices than p, zero vertices (p lies entirely outside the
// half-plane), or (rarely) more, and is not guaranteed non-degenerate;
// callers check len(result) < 3 before using it further.
//
// Complexity: O(n).
func ClipByHalfPlane(p Polygon, point, normal Vec2) Polygon {
	n := len(p)
	if n == 0 {
		return nil
	}
	out := make(Polygon, 0, n+1)
	inside := func(v Vec2) bool { return v.Sub(point).Dot(normal) >= 0 }
	intersect := func(a, b Vec2) Vec2 {
		da := a.Sub(point).Dot(normal)
		db := b.Sub(point).Dot(normal)
		denom := da - db
		if denom == 0 {
			return a
		}
		t := da / denom
		return a.Add(b.Sub(a).Scale(t))
	}

	prev := p[n-1]
	prevIn := inside(prev)
	for i := 0; i < n; i++ {
		curr := p[i]
		currIn := inside(curr)
		switch {
		case currIn && prevIn:
			out = append(out, curr)
		case currIn && !prevIn:
			out = append(out, intersect(prev, curr), curr)
		case !currIn && prevIn:
			out = append(out, intersect(prev, curr))
		}
		prev, prevIn = curr, currIn
	}
	return out
}

// PolygonIntersects reports whether polygons A and B overlap: true iff
// any vertex of A lies in B, any vertex of B lies in A, or any pair of
// boundary edges crosses (§4.1). This is a coarse overlap test, not a
// boolean intersection — it does not compute the overlap region.
//
// Complexity: O(|A|*|B|).
func PolygonIntersects(a, b Polygon) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	for _, v := range a {
		if PointInPolygon(v, b) {
			return true
		}
	}
	for _, v := range b {
		if PointInPolygon(v, a) {
			return true
		}
	}
	hit := false
	a.Edges(func(a1, a2 Vec2) {
		if hit {
			return
		}
		b.Edges(func(b1, b2 Vec2) {
			if hit {
				return
			}
			if _, _, _, ok := SegmentIntersect(Segment{a1, a2}, Segment{b1, b2}); ok {
				hit = true
			}
		})
	})
	return hit
}
