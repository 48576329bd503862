package welder

import "github.com/cityfab/cityfab/roadgraph"

// WelderSnapshot is a deterministic, plain-data capture of a Welder's
// Intersection table and submission/intersection id counters, grounded
// on the same reasoning as roadgraph.GraphSnapshot: a restored Welder
// must report the exact same Intersection records (same ids, same
// Pos/Segments/Type/Orientation) the original had, not records
// recomputed from a freshly re-welded graph.
type WelderSnapshot struct {
	Intersections []Intersection

	NextIntersection IntersectionID
	NextSubmission   SubmissionID

	IntersectionEPS float64
}

// Snapshot captures w's current Intersection table and counters. The
// returned value shares no memory with w.
//
// Complexity: O(I) where I is the number of current intersections.
func (w *Welder) Snapshot() WelderSnapshot {
	snap := WelderSnapshot{
		Intersections:    make([]Intersection, 0, len(w.intersections)),
		NextIntersection: w.nextIntersection,
		NextSubmission:   w.nextSubmission,
		IntersectionEPS:  w.intersectionEPS,
	}
	for _, iv := range w.Intersections() {
		cp := *iv
		cp.Segments = append([]roadgraph.EdgeID(nil), iv.Segments...)
		snap.Intersections = append(snap.Intersections, cp)
	}
	return snap
}

// RestoreWelder returns a Welder wrapping g (already restored, e.g. via
// roadgraph.RestoreGraph) whose Intersection table and counters are
// rebuilt directly from snap rather than recomputed from g's topology —
// recomputation would still produce an equivalent table in practice, but
// restoring the exact ids and Orientation values snap captured avoids
// any dependence on that equivalence holding bit-for-bit.
//
// Complexity: O(I).
func RestoreWelder(g *roadgraph.Graph, snap WelderSnapshot) *Welder {
	eps := snap.IntersectionEPS
	if eps <= 0 {
		eps = IntersectionEPS
	}
	w := &Welder{
		graph:            g,
		intersections:    make(map[IntersectionID]*Intersection, len(snap.Intersections)),
		byNode:           make(map[roadgraph.NodeID]IntersectionID, len(snap.Intersections)),
		nextIntersection: snap.NextIntersection,
		nextSubmission:   snap.NextSubmission,
		intersectionEPS:  eps,
	}
	for i := range snap.Intersections {
		iv := snap.Intersections[i]
		cp := iv
		cp.Segments = append([]roadgraph.EdgeID(nil), iv.Segments...)
		w.intersections[cp.ID] = &cp
		w.byNode[cp.Node] = cp.ID
	}
	return w
}
