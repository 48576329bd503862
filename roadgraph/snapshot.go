package roadgraph

import "github.com/cityfab/cityfab/spatialindex"

// GraphSnapshot is a deterministic, plain-data capture of a Graph's full
// state: every node and edge plus the id counters and construction
// options needed to reproduce identical behavior after Restore. It is
// the roadgraph layer's contribution to engine.Snapshot (SUPPLEMENTED:
// a host persisting and resuming a planning session needs the road graph
// back exactly as it was, not rebuilt from a replay of AddSegment calls,
// since replaying would re-run snap-merge and angle checks against an
// empty graph and could weld differently).
type GraphSnapshot struct {
	Nodes []RoadNode
	Edges []RoadEdge

	NextNodeID NodeID
	NextEdgeID EdgeID

	SnapThreshold float64
	MinAngle      float64
	CellSize      float64
}

// Snapshot captures g's current state. The returned value shares no
// memory with g: mutating g afterward does not affect it.
//
// Complexity: O(V+E).
func (g *Graph) Snapshot() GraphSnapshot {
	snap := GraphSnapshot{
		Nodes:         make([]RoadNode, 0, len(g.nodes)),
		Edges:         make([]RoadEdge, 0, len(g.edges)),
		NextNodeID:    g.nextNodeID,
		NextEdgeID:    g.nextEdgeID,
		SnapThreshold: g.snapThreshold,
		MinAngle:      g.minAngle,
		CellSize:      g.cellSize,
	}
	for _, id := range g.NodeIDs() {
		n := g.nodes[id]
		snap.Nodes = append(snap.Nodes, RoadNode{
			ID:             n.ID,
			Pos:            n.Pos,
			Incident:       append([]EdgeID(nil), n.Incident...),
			IsIntersection: n.IsIntersection,
		})
	}
	for _, id := range g.EdgeIDs() {
		snap.Edges = append(snap.Edges, *g.edges[id])
	}
	return snap
}

// RestoreGraph rebuilds a Graph directly from snap's node and edge
// tables, bypassing AddNode/AddEdgeWidth's snap-merge and angle checks
// entirely: those checks already ran once, when the segments that
// produced snap were first painted, and re-running them against a graph
// being rebuilt from nothing would risk welding nodes snap never welded.
//
// Complexity: O(V+E).
func RestoreGraph(snap GraphSnapshot) *Graph {
	cellSize := snap.CellSize
	if cellSize <= 0 {
		cellSize = spatialindex.DefaultCellSize
	}
	g := &Graph{
		nodes:         make(map[NodeID]*RoadNode, len(snap.Nodes)),
		edges:         make(map[EdgeID]*RoadEdge, len(snap.Edges)),
		index:         spatialindex.New(cellSize),
		nextNodeID:    snap.NextNodeID,
		nextEdgeID:    snap.NextEdgeID,
		snapThreshold: snap.SnapThreshold,
		minAngle:      snap.MinAngle,
		cellSize:      cellSize,
	}
	if g.snapThreshold <= 0 {
		g.snapThreshold = SnapThreshold
	}
	if g.minAngle <= 0 {
		g.minAngle = MinAngle
	}
	for i := range snap.Nodes {
		n := snap.Nodes[i]
		g.nodes[n.ID] = &RoadNode{
			ID:             n.ID,
			Pos:            n.Pos,
			Incident:       append([]EdgeID(nil), n.Incident...),
			IsIntersection: n.IsIntersection,
		}
		g.index.Insert(int(n.ID), n.Pos)
	}
	for i := range snap.Edges {
		e := snap.Edges[i]
		g.edges[e.ID] = &e
	}
	return g
}
