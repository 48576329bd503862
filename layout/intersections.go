package layout

import (
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
)

// optimizeIntersections implements §4.5's intersection-optimization
// rule: close intersections (< IntersectionMergeDist apart, both
// isIntersection) are merged; intersections whose adjacent incident
// angles fall below roadgraph.MinAngle are jittered by IntersectionJitter
// meters. Bounded to IntersectionOptimizationPasses passes.
//
// Both mutations go through w, not g, directly: welder.New's own doc
// warns that nothing else should mutate the graph once a Welder owns
// it, or its Intersection table goes stale. Routing merges and
// relocations through welder.Welder.MergeNodes/RelocateNode keeps every
// affected Intersection record's Pos/Segments/Type/Orientation
// consistent with the graph they describe.
func optimizeIntersections(g *roadgraph.Graph, w *welder.Welder) {
	for pass := 0; pass < IntersectionOptimizationPasses; pass++ {
		mergeCloseIntersections(g, w)
		jitterAcuteIntersections(g, w)
	}
}

func mergeCloseIntersections(g *roadgraph.Graph, w *welder.Welder) {
	merged := make(map[roadgraph.NodeID]bool)
	for _, id := range g.NodeIDs() {
		if merged[id] {
			continue
		}
		n, ok := g.Node(id)
		if !ok || !n.IsIntersection {
			continue
		}
		for _, other := range g.NearbyNodes(n.Pos, IntersectionMergeDist) {
			if other == id || merged[other] {
				continue
			}
			on, ok := g.Node(other)
			if !ok || !on.IsIntersection {
				continue
			}
			if err := w.MergeNodes(other, id); err == nil {
				merged[other] = true
			}
		}
	}
}

func jitterAcuteIntersections(g *roadgraph.Graph, w *welder.Welder) {
	for _, id := range g.NodeIDs() {
		n, ok := g.Node(id)
		if !ok || !n.IsIntersection || len(n.Incident) < 2 {
			continue
		}
		if !hasAcuteAdjacentAngle(g, n) {
			continue
		}
		jittered := geom.Vec2{X: n.Pos.X + IntersectionJitter, Y: n.Pos.Y}
		_ = w.RelocateNode(id, jittered)
	}
}

func hasAcuteAdjacentAngle(g *roadgraph.Graph, n *roadgraph.RoadNode) bool {
	dirs := make([]geom.Vec2, 0, len(n.Incident))
	for _, eid := range n.Incident {
		e, ok := g.Edge(eid)
		if !ok {
			continue
		}
		other := e.A
		if other == n.ID {
			other = e.B
		}
		on, ok := g.Node(other)
		if !ok {
			continue
		}
		dirs = append(dirs, on.Pos.Sub(n.Pos))
	}
	for i := 0; i < len(dirs); i++ {
		for j := i + 1; j < len(dirs); j++ {
			if geom.AngleBetween(dirs[i], dirs[j]) < roadgraph.MinAngle {
				return true
			}
		}
	}
	return false
}
