package layout

import (
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
)

// connectedComponents groups the graph's nodes into connected components
// via BFS over the incidence lists, adapted from gridgraph's
// ConnectedComponents (there, BFS walks a 2D cell lattice; here it walks
// roadgraph incidence lists directly, since the road graph is already a
// general graph rather than a grid to be converted into one).
func connectedComponents(g *roadgraph.Graph) [][]roadgraph.NodeID {
	visited := make(map[roadgraph.NodeID]bool)
	var components [][]roadgraph.NodeID

	for _, start := range g.NodeIDs() {
		if visited[start] {
			continue
		}
		queue := []roadgraph.NodeID{start}
		visited[start] = true
		var comp []roadgraph.NodeID

		for qi := 0; qi < len(queue); qi++ {
			id := queue[qi]
			comp = append(comp, id)
			n, ok := g.Node(id)
			if !ok {
				continue
			}
			for _, eid := range n.Incident {
				e, ok := g.Edge(eid)
				if !ok {
					continue
				}
				other := e.A
				if other == id {
					other = e.B
				}
				if !visited[other] {
					visited[other] = true
					queue = append(queue, other)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}

// repairConnectivity implements §4.5's connectivity-repair rule: find
// components, then link every non-largest component to the largest by
// the closest pair of nodes, via a street-class edge, but only if that
// closest pair is within width/4.
//
// Unlike gridgraph.ExpandIsland's 0-1 BFS (which prices a path through a
// discretized land/water grid), nodes here already sit in continuous
// space and any two of them can be joined directly with one edge, so no
// stepped shortest-path search is needed — the "cost" gridgraph prices
// collapses to a single direct link.
func repairConnectivity(g *roadgraph.Graph, width float64, era Era, w *welder.Welder) {
	components := connectedComponents(g)
	if len(components) <= 1 {
		return
	}

	largestIdx := 0
	for i, c := range components {
		if len(c) > len(components[largestIdx]) {
			largestIdx = i
		}
	}
	largest := components[largestIdx]
	maxDist := width / 4
	material := era.materialFor(roadgraph.ClassStreet)
	edgeWidth := roadgraph.ClassStreet.NominalWidth() * era.widthScale()

	for i, comp := range components {
		if i == largestIdx {
			continue
		}
		a, b, dist, ok := closestPair(g, comp, largest)
		if !ok || dist > maxDist {
			continue
		}
		na, _ := g.Node(a)
		nb, _ := g.Node(b)
		w.AddSegment(na.Pos, nb.Pos, roadgraph.ClassStreet, material, edgeWidth)
	}
}

func closestPair(g *roadgraph.Graph, from, to []roadgraph.NodeID) (roadgraph.NodeID, roadgraph.NodeID, float64, bool) {
	var bestA, bestB roadgraph.NodeID
	bestDist := -1.0
	found := false
	for _, a := range from {
		na, ok := g.Node(a)
		if !ok {
			continue
		}
		for _, b := range to {
			nb, ok := g.Node(b)
			if !ok {
				continue
			}
			d := na.Pos.Dist(nb.Pos)
			if !found || d < bestDist {
				bestA, bestB, bestDist, found = a, b, d, true
			}
		}
	}
	return bestA, bestB, bestDist, found
}
