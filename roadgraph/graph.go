package roadgraph

import (
	"sort"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/spatialindex"
)

// GraphOption configures a Graph at construction time, following the
// teacher's functional-option pattern (lvlath/core.GraphOption).
type GraphOption func(*Graph)

// WithSnapThreshold overrides SnapThreshold for this Graph's addNode
// snap-merge distance. Non-positive values are ignored.
func WithSnapThreshold(meters float64) GraphOption {
	return func(g *Graph) {
		if meters > 0 {
			g.snapThreshold = meters
		}
	}
}

// WithMinAngle overrides MinAngle (in radians) for this Graph's AddEdge
// acceptance test. Non-positive values are ignored.
func WithMinAngle(radians float64) GraphOption {
	return func(g *Graph) {
		if radians > 0 {
			g.minAngle = radians
		}
	}
}

// WithCellSize sets the cell size of the Graph's internal spatial index
// used for snap-insert lookups.
func WithCellSize(meters float64) GraphOption {
	return func(g *Graph) {
		g.cellSize = meters
	}
}

// Graph is the owned mutable road-graph state (§3, §4.3). Construct with
// New.
type Graph struct {
	nodes map[NodeID]*RoadNode
	edges map[EdgeID]*RoadEdge
	index *spatialindex.Grid

	nextNodeID NodeID
	nextEdgeID EdgeID

	snapThreshold float64
	minAngle      float64
	cellSize      float64
}

// New returns an empty Graph configured by opts.
//
// Complexity: O(len(opts)).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:         make(map[NodeID]*RoadNode),
		edges:         make(map[EdgeID]*RoadEdge),
		snapThreshold: SnapThreshold,
		minAngle:      MinAngle,
		cellSize:      spatialindex.DefaultCellSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.index = spatialindex.New(g.cellSize)
	return g
}

// Node returns the node with id, or (nil, false).
func (g *Graph) Node(id NodeID) (*RoadNode, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the edge with id, or (nil, false).
func (g *Graph) Edge(id EdgeID) (*RoadEdge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// NodeIDs returns all node ids in ascending order, for deterministic
// iteration (mirrors lvlath/core.Vertices()'s sorted-enumeration contract).
func (g *Graph) NodeIDs() []NodeID {
	out := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// EdgeIDs returns all edge ids in ascending order.
func (g *Graph) EdgeIDs() []EdgeID {
	out := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NodeCount and EdgeCount report current table sizes.
func (g *Graph) NodeCount() int { return len(g.nodes) }
func (g *Graph) EdgeCount() int { return len(g.edges) }

// AddNode inserts a new node at p, or returns the id of an existing node
// within SnapThreshold of p (§4.3 addNode). When multiple existing nodes
// are within range, the closest one is chosen; ties are broken by lower
// id for determinism.
//
// Complexity: O(k) where k is the number of nodes in nearby grid cells.
func (g *Graph) AddNode(p geom.Vec2) NodeID {
	if existing, ok := g.nearestWithin(p, g.snapThreshold); ok {
		return existing
	}
	id := g.nextNodeID
	g.nextNodeID++
	g.nodes[id] = &RoadNode{ID: id, Pos: p}
	g.index.Insert(int(id), p)
	return id
}

func (g *Graph) nearestWithin(p geom.Vec2, radius float64) (NodeID, bool) {
	candidates := g.index.NearbyWithinRadius(p, radius)
	if len(candidates) == 0 {
		return 0, false
	}
	best := NodeID(candidates[0])
	bestDist := p.Dist(g.nodes[best].Pos)
	for _, c := range candidates[1:] {
		id := NodeID(c)
		d := p.Dist(g.nodes[id].Pos)
		if d < bestDist || (d == bestDist && id < best) {
			best, bestDist = id, d
		}
	}
	return best, true
}

// NearbyNodes returns the ids of every node within radius of p, using the
// graph's spatial index. Used by layout's adaptive-grid, local-infill,
// and connectivity-repair passes to query local node density without
// walking the full node table.
//
// Complexity: O(k) where k is the number of nodes in nearby grid cells.
func (g *Graph) NearbyNodes(p geom.Vec2, radius float64) []NodeID {
	raw := g.index.NearbyWithinRadius(p, radius)
	out := make([]NodeID, len(raw))
	for i, id := range raw {
		out[i] = NodeID(id)
	}
	return out
}

// HasEdgeBetween reports whether an edge already connects a and b
// (undirected: either order), and returns its id if so.
func (g *Graph) HasEdgeBetween(a, b NodeID) (EdgeID, bool) {
	na, ok := g.nodes[a]
	if !ok {
		return 0, false
	}
	for _, eid := range na.Incident {
		e := g.edges[eid]
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			return eid, true
		}
	}
	return 0, false
}

// AddEdge attempts to connect a and b with the given class and material
// at the class's nominal width (§4.3 addEdge). See AddEdgeWidth for the
// welder's width-preserving variant used when splitting an existing edge.
//
// Complexity: O(d) where d is the degree of a and b.
func (g *Graph) AddEdge(a, b NodeID, class RoadClass, material RoadMaterial) (EdgeID, RejectReason) {
	return g.AddEdgeWidth(a, b, class, material, class.NominalWidth())
}

// AddEdgeWidth is AddEdge with an explicit width, used by the welder to
// propagate a split parent's width to its children and by layout's era
// evolution pass to scale widths.
//
// All rejection paths leave the graph unmutated (§4.3 failure semantics).
//
// Complexity: O(d) where d is the degree of a and b.
func (g *Graph) AddEdgeWidth(a, b NodeID, class RoadClass, material RoadMaterial, width float64) (EdgeID, RejectReason) {
	if a == b {
		return 0, RejectSameNode
	}
	na, okA := g.nodes[a]
	nb, okB := g.nodes[b]
	if !okA || !okB {
		return 0, RejectSameNode // caller error: treat as same-node style total rejection
	}
	if na.Pos.Dist(nb.Pos) < 1e-9 {
		return 0, RejectDegenerateGeometry
	}
	if existing, ok := g.HasEdgeBetween(a, b); ok {
		return existing, RejectNone
	}

	dirAB := nb.Pos.Sub(na.Pos)
	dirBA := na.Pos.Sub(nb.Pos)
	if !g.angleOK(na, b, dirAB) || !g.angleOK(nb, a, dirBA) {
		return 0, RejectAngleTooAcute
	}

	id := g.nextEdgeID
	g.nextEdgeID++
	e := &RoadEdge{
		ID: id, A: a, B: b,
		Class: class, Material: material, Width: width,
		Length: na.Pos.Dist(nb.Pos),
	}
	g.edges[id] = e
	na.Incident = append(na.Incident, id)
	nb.Incident = append(nb.Incident, id)
	g.refreshIntersectionFlag(na)
	g.refreshIntersectionFlag(nb)
	return id, RejectNone
}

// angleOK reports whether inserting an edge leaving node n in direction
// newDir keeps every pair of edges at n at least minAngle apart, where
// the new edge's far endpoint is excluded (excludeOther) in case of a
// re-check against an edge that will itself be replaced by the caller.
func (g *Graph) angleOK(n *RoadNode, excludeOther NodeID, newDir geom.Vec2) bool {
	for _, eid := range n.Incident {
		e := g.edges[eid]
		other := e.A
		if other == n.ID {
			other = e.B
		}
		if other == excludeOther {
			continue
		}
		otherNode := g.nodes[other]
		existingDir := otherNode.Pos.Sub(n.Pos)
		if geom.AngleBetween(newDir, existingDir) < g.minAngle {
			return false
		}
	}
	return true
}

func (g *Graph) refreshIntersectionFlag(n *RoadNode) {
	n.IsIntersection = len(n.Incident) >= 2
}

// RemoveEdge deletes edge id, clearing it from both endpoints' incidence
// lists and recomputing their intersection flags (§4.3 removeEdge).
//
// Complexity: O(d) where d is the degree of the edge's endpoints.
func (g *Graph) RemoveEdge(id EdgeID) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	g.detachIncidence(e.A, id)
	g.detachIncidence(e.B, id)
	delete(g.edges, id)
	return nil
}

func (g *Graph) detachIncidence(nodeID NodeID, edgeID EdgeID) {
	n, ok := g.nodes[nodeID]
	if !ok {
		return
	}
	for i, eid := range n.Incident {
		if eid == edgeID {
			n.Incident = append(n.Incident[:i], n.Incident[i+1:]...)
			break
		}
	}
	g.refreshIntersectionFlag(n)
}

// MergeNodes rewires every edge incident to from so its endpoint becomes
// to, dedups against any edge that already connects to to that other
// endpoint (the duplicate is dropped, not kept), and deletes from (§4.3
// mergeNodes). Used by the welder to weld snapped endpoints together.
//
// Complexity: O(d) where d is the degree of from.
func (g *Graph) MergeNodes(from, to NodeID) error {
	if from == to {
		return nil
	}
	nf, ok := g.nodes[from]
	if !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrNodeNotFound
	}

	incident := append([]EdgeID(nil), nf.Incident...)
	for _, eid := range incident {
		e := g.edges[eid]
		other := e.A
		if other == from {
			other = e.B
		}
		if other == to {
			// Self-loop after merge: drop the edge entirely.
			_ = g.RemoveEdge(eid)
			continue
		}
		if dup, ok := g.HasEdgeBetween(to, other); ok && dup != eid {
			_ = g.RemoveEdge(eid)
			continue
		}
		if e.A == from {
			e.A = to
		} else {
			e.B = to
		}
		g.detachIncidence(from, eid)
		toNode := g.nodes[to]
		toNode.Incident = append(toNode.Incident, eid)
		g.refreshIntersectionFlag(toNode)
	}

	g.index.Remove(int(from), nf.Pos)
	delete(g.nodes, from)
	return nil
}

// RelocateNode moves node id to newPos, updating both the node table and
// the spatial index, and recaches the length of every incident edge.
// Used by layout's intersection-jitter pass; it does not re-validate the
// angle invariant (callers are expected to apply only small nudges that
// cannot flip an already-accepted angle ordering).
//
// Complexity: O(d) where d is the degree of id.
func (g *Graph) RelocateNode(id NodeID, newPos geom.Vec2) error {
	n, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	g.index.Remove(int(id), n.Pos)
	n.Pos = newPos
	g.index.Insert(int(id), newPos)
	for _, eid := range n.Incident {
		e := g.edges[eid]
		other := e.A
		if other == id {
			other = e.B
		}
		on := g.nodes[other]
		e.Length = n.Pos.Dist(on.Pos)
	}
	return nil
}

// SetEdgeAttributes overwrites edge id's class, material, and width
// in place, without touching topology. Used by layout's era-evolution
// pass to recompute materials/widths (and occasionally upgrade a
// street to an avenue) for a new era without re-running the welder.
func (g *Graph) SetEdgeAttributes(id EdgeID, class RoadClass, material RoadMaterial, width float64) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Class, e.Material, e.Width = class, material, width
	return nil
}

// Stats is an O(V+E) snapshot of the graph, mirroring lvlath/core's
// Stats() convenience getter. LengthByClass sums edge length per
// RoadClass.
type Stats struct {
	Nodes           int
	Edges           int
	Intersections   int
	LengthByClass   map[RoadClass]float64
	TotalLengthMeters float64
}

// Stats computes a Stats snapshot of the current graph state.
//
// Complexity: O(V+E).
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: len(g.nodes), Edges: len(g.edges), LengthByClass: make(map[RoadClass]float64)}
	for _, n := range g.nodes {
		if n.IsIntersection {
			s.Intersections++
		}
	}
	for _, e := range g.edges {
		s.LengthByClass[e.Class] += e.Length
		s.TotalLengthMeters += e.Length
	}
	return s
}
