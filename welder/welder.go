package welder

import (
	"sort"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
)

// Welder wraps a roadgraph.Graph and maintains the Intersection table
// described in §4.4. Construct with New; Welder is not safe for
// concurrent use (§5: single owner).
type Welder struct {
	graph *roadgraph.Graph

	intersections    map[IntersectionID]*Intersection
	byNode           map[roadgraph.NodeID]IntersectionID
	nextIntersection IntersectionID
	nextSubmission   SubmissionID

	intersectionEPS float64
}

// Option configures a Welder at construction time.
type Option func(*Welder)

// WithIntersectionEPS overrides IntersectionEPS for this Welder.
// Non-positive values are ignored.
func WithIntersectionEPS(meters float64) Option {
	return func(w *Welder) {
		if meters > 0 {
			w.intersectionEPS = meters
		}
	}
}

// New returns a Welder over the given Graph. The Graph is expected to be
// owned by this Welder from this point on (nothing else should call its
// mutating methods directly, or the welder's intersection table can go
// stale).
func New(g *roadgraph.Graph, opts ...Option) *Welder {
	w := &Welder{
		graph:           g,
		intersections:   make(map[IntersectionID]*Intersection),
		byNode:          make(map[roadgraph.NodeID]IntersectionID),
		intersectionEPS: IntersectionEPS,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Graph returns the underlying roadgraph.Graph for read-only consumption
// by downstream stages (blockfinder, parcel).
func (w *Welder) Graph() *roadgraph.Graph { return w.graph }

// Intersection returns the record for id, or ErrIntersectionNotFound if
// it has since been removed (e.g. its node dropped below degree 2).
func (w *Welder) Intersection(id IntersectionID) (*Intersection, error) {
	iv, ok := w.intersections[id]
	if !ok {
		return nil, ErrIntersectionNotFound
	}
	return iv, nil
}

// Intersections returns all current Intersection records, ordered by id.
func (w *Welder) Intersections() []*Intersection {
	out := make([]*Intersection, 0, len(w.intersections))
	for _, v := range w.intersections {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type crossing struct {
	t       float64
	distA   float64
	point   geom.Vec2
	edge    roadgraph.EdgeID
	edgeU   float64
}

// AddSegment implements §4.4's addSegment(p, q, width, classCode).
//
// Complexity: O(E) to scan existing edges for crossings, plus O(k) for
// the k resulting sub-segments and their endpoint recomputation.
func (w *Welder) AddSegment(p, q geom.Vec2, class roadgraph.RoadClass, material roadgraph.RoadMaterial, width float64) *Submission {
	id := w.nextSubmission
	w.nextSubmission++
	sub := &Submission{ID: id, RequestedA: p, RequestedB: q}

	candidate := geom.Segment{A: p, B: q}
	if candidate.Degenerate() {
		sub.Reason = roadgraph.RejectDegenerateGeometry
		return sub
	}

	// Step 2-3: find and sort interior crossings against every existing edge.
	var crossings []crossing
	for _, eid := range w.graph.EdgeIDs() {
		e, _ := w.graph.Edge(eid)
		na, _ := w.graph.Node(e.A)
		nb, _ := w.graph.Node(e.B)
		existing := geom.Segment{A: na.Pos, B: nb.Pos}
		point, t, u, ok := geom.SegmentIntersect(candidate, existing)
		if !ok {
			continue
		}
		if !geom.InteriorCrossing(candidate, existing, point, w.intersectionEPS) {
			continue
		}
		crossings = append(crossings, crossing{t: t, distA: p.Dist(point), point: point, edge: eid, edgeU: u})
	}
	sort.Slice(crossings, func(i, j int) bool {
		if crossings[i].t != crossings[j].t {
			return crossings[i].t < crossings[j].t
		}
		return crossings[i].distA < crossings[j].distA
	})

	// Step 3 (continued): split each crossed edge once at its crossing point.
	splitNodes := make([]roadgraph.NodeID, 0, len(crossings)+2)
	touchedNodes := make(map[roadgraph.NodeID]struct{})
	for _, c := range crossings {
		n := w.splitEdgeAt(c.edge, c.point)
		splitNodes = append(splitNodes, n)
	}

	// Step 4: insert consecutive sub-segments of the candidate, snapping
	// endpoints through Graph.AddNode (which performs the SNAP_THRESHOLD
	// merge on its own).
	waypoints := make([]geom.Vec2, 0, len(crossings)+2)
	waypoints = append(waypoints, p)
	for _, c := range crossings {
		waypoints = append(waypoints, c.point)
	}
	waypoints = append(waypoints, q)

	// The interior waypoints coincide exactly with the points already
	// inserted by splitEdgeAt above; routing them back through AddNode is
	// what gives us the SNAP_THRESHOLD merge for the candidate's own
	// endpoints p and q against anything already nearby.
	nodeIDs := make([]roadgraph.NodeID, len(waypoints))
	for i, wp := range waypoints {
		nodeIDs[i] = w.graph.AddNode(wp)
	}

	for i := 0; i+1 < len(nodeIDs); i++ {
		a, b := nodeIDs[i], nodeIDs[i+1]
		if a == b {
			continue
		}
		eid, reason := w.graph.AddEdgeWidth(a, b, class, material, width)
		if reason != roadgraph.RejectNone && reason != roadgraph.RejectSameNode {
			continue // §4.4 does not specify a rollback; skip the offending sub-edge and continue.
		}
		if reason == roadgraph.RejectNone {
			sub.Segments = append(sub.Segments, eid)
		}
		touchedNodes[a] = struct{}{}
		touchedNodes[b] = struct{}{}
	}

	// Step 5: recompute intersection records at every touched endpoint.
	for nodeID := range touchedNodes {
		if iid, ok := w.recomputeIntersection(nodeID); ok {
			sub.Intersections = append(sub.Intersections, iid)
		}
	}
	sort.Slice(sub.Intersections, func(i, j int) bool { return sub.Intersections[i] < sub.Intersections[j] })

	sub.Success = len(sub.Segments) > 0
	return sub
}

// splitEdgeAt splits edge eid at point, inserting a new node there (via
// Graph.AddNode, which snap-merges if an existing node is already close
// enough) and replacing the edge with two children that carry its class,
// material, and width (§4.4: "road class and width propagate to all
// children of a split"). Splitting is skipped (the original edge is left
// untouched) when point is within the Welder's intersection tolerance
// (IntersectionEPS unless overridden by WithIntersectionEPS) of either of the
// edge's own endpoints, per §4.4 step 3's "only if X is > eps from E's
// endpoints".
func (w *Welder) splitEdgeAt(eid roadgraph.EdgeID, point geom.Vec2) roadgraph.NodeID {
	e, ok := w.graph.Edge(eid)
	if !ok {
		return w.graph.AddNode(point)
	}
	na, _ := w.graph.Node(e.A)
	nb, _ := w.graph.Node(e.B)
	if point.Dist(na.Pos) <= w.intersectionEPS || point.Dist(nb.Pos) <= w.intersectionEPS {
		return w.graph.AddNode(point)
	}

	class, material, width := e.Class, e.Material, e.Width
	a, b := e.A, e.B
	mid := w.graph.AddNode(point)

	_ = w.graph.RemoveEdge(eid)
	w.graph.AddEdgeWidth(a, mid, class, material, width)
	w.graph.AddEdgeWidth(mid, b, class, material, width)
	return mid
}

// MergeNodes merges node `from` into `to` on the underlying graph, then
// evicts or recomputes every Intersection record the merge could have
// made stale: `from`'s own record (now dangling, since the node is
// gone) and `to`'s record (its incident set just changed). Callers that
// post-process the welded graph (e.g. layout's intersection
// optimization) must route node merges through here rather than calling
// Graph.MergeNodes directly, or the Welder's own Intersection table goes
// stale exactly as its New doc warns.
func (w *Welder) MergeNodes(from, to roadgraph.NodeID) error {
	if err := w.graph.MergeNodes(from, to); err != nil {
		return err
	}
	w.recomputeIntersection(from)
	w.recomputeIntersection(to)
	return nil
}

// RelocateNode moves node id on the underlying graph, then recomputes
// the Intersection records at id and at every node still adjacent to it
// afterward, so Intersection.Pos and Orientation stay within
// IntersectionEPS of the segments that actually incident it (§4.5's
// intersection-jitter step, and the same staleness risk as MergeNodes
// above).
func (w *Welder) RelocateNode(id roadgraph.NodeID, newPos geom.Vec2) error {
	n, ok := w.graph.Node(id)
	if !ok {
		return w.graph.RelocateNode(id, newPos)
	}
	neighbors := make([]roadgraph.NodeID, 0, len(n.Incident))
	for _, eid := range n.Incident {
		e, ok := w.graph.Edge(eid)
		if !ok {
			continue
		}
		other := e.A
		if other == id {
			other = e.B
		}
		neighbors = append(neighbors, other)
	}

	if err := w.graph.RelocateNode(id, newPos); err != nil {
		return err
	}
	w.recomputeIntersection(id)
	for _, other := range neighbors {
		w.recomputeIntersection(other)
	}
	return nil
}

// recomputeIntersection rebuilds (or creates) the Intersection record at
// nodeID from its current incident edges. Nodes with fewer than 2
// incident edges have no Intersection record (and any stale one is
// removed).
func (w *Welder) recomputeIntersection(nodeID roadgraph.NodeID) (IntersectionID, bool) {
	n, ok := w.graph.Node(nodeID)
	if !ok || len(n.Incident) < 2 {
		if iid, has := w.byNode[nodeID]; has {
			delete(w.intersections, iid)
			delete(w.byNode, nodeID)
		}
		return 0, false
	}

	maxWidth := 0.0
	sumSin, sumCos := 0.0, 0.0
	for _, eid := range n.Incident {
		e, _ := w.graph.Edge(eid)
		if e.Width > maxWidth {
			maxWidth = e.Width
		}
		other := e.A
		if other == nodeID {
			other = e.B
		}
		on, _ := w.graph.Node(other)
		dir := on.Pos.Sub(n.Pos)
		angle := dir.Angle()
		sumSin += sinOf(angle)
		sumCos += cosOf(angle)
	}

	iid, exists := w.byNode[nodeID]
	if !exists {
		iid = w.nextIntersection
		w.nextIntersection++
		w.byNode[nodeID] = iid
	}
	w.intersections[iid] = &Intersection{
		ID:          iid,
		Node:        nodeID,
		Pos:         n.Pos,
		Segments:    append([]roadgraph.EdgeID(nil), n.Incident...),
		Type:        classifyByCount(len(n.Incident)),
		Radius:      0.75 * maxWidth,
		Orientation: meanAngle(sumSin, sumCos),
	}
	return iid, true
}
