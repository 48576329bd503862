package geom

// OffsetPolygonInward returns a copy of p with every vertex displaced
// along the average inward normal of its two incident edges, scaled so
// the displacement achieves perpendicular distance d from each of those
// two edges (§4.1). p is first brought to CCW order; inward is to the
// left of each directed edge.
//
// When an edge turn produces a near-zero bisector (the two inward edge
// normals nearly cancel, |sum| < ParallelEPS), the vertex is left in
// place rather than projected to infinity — this is a deliberate
// no-repair policy: callers detect the resulting self-intersection or
// degenerate footprint themselves. The result always has len(p)
// vertices, so massing.GenerateForParcel compares the offset area with
// the original area to detect it.
//
// Complexity: O(n).
func OffsetPolygonInward(p Polygon, d float64) Polygon {
	n := len(p)
	if n < 3 {
		return nil
	}
	p = EnsureCCW(p)
	out := make(Polygon, n)
	for i := 0; i < n; i++ {
		prev := p[(i-1+n)%n]
		curr := p[i]
		next := p[(i+1)%n]

		// Inward normal of edge (prev->curr) is the edge direction rotated
		// +90deg (to the left) for a CCW polygon; likewise for (curr->next).
		e1 := curr.Sub(prev).Normalized()
		e2 := next.Sub(curr).Normalized()
		n1 := e1.Perp()
		n2 := e2.Perp()

		bisector := n1.Add(n2)
		blen := bisector.Len()
		if blen < ParallelEPS {
			out[i] = curr
			continue
		}
		bisector = bisector.Scale(1 / blen)

		// Scale so the perpendicular distance to each adjacent edge is d:
		// distance along bisector * cos(half-angle) == d, and
		// cos(half-angle) == bisector.Dot(n1) (n1, n2 unit, bisector unit).
		cosHalf := bisector.Dot(n1)
		if cosHalf < 1e-6 {
			out[i] = curr
			continue
		}
		out[i] = curr.Add(bisector.Scale(d / cosHalf))
	}
	return out
}
