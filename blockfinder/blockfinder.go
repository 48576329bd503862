package blockfinder

import (
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
)

// FindBlocks enumerates CityBlocks from g (§4.6): bounded DFS cycle
// search, then filter by node-count and enclosed-area bounds, in that
// order since area bounds are cheap to check only after a cycle survives
// the length filter.
//
// Complexity: O(V + E + C*L) for the search (C discovered cycles of
// average length L, each canonicalized in O(L)), plus O(C) for the area
// filter.
func FindBlocks(g *roadgraph.Graph) []CityBlock {
	if g == nil {
		return nil
	}
	raw := findCycles(g)

	blocks := make([]CityBlock, 0, len(raw))
	nextID := BlockID(0)
	for _, cycle := range raw {
		block, ok := buildBlock(g, cycle, nextID)
		if !ok {
			continue
		}
		blocks = append(blocks, block)
		nextID++
	}
	return blocks
}

func buildBlock(g *roadgraph.Graph, cycle []roadgraph.NodeID, id BlockID) (CityBlock, bool) {
	nodes := cycle[:len(cycle)-1]
	poly := make(geom.Polygon, 0, len(nodes))
	for _, nid := range nodes {
		n, ok := g.Node(nid)
		if !ok {
			return CityBlock{}, false
		}
		poly = append(poly, n.Pos)
	}
	if !poly.Simple() {
		return CityBlock{}, false
	}

	area := geom.Area(poly)
	if area < MinBlockArea || area > MaxBlockArea {
		return CityBlock{}, false
	}
	poly = geom.EnsureCCW(poly)

	edges := make([]roadgraph.EdgeID, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		a, b := nodes[i], nodes[(i+1)%len(nodes)]
		if eid, ok := g.HasEdgeBetween(a, b); ok {
			edges = append(edges, eid)
		}
	}

	return CityBlock{
		ID:            id,
		Outer:         poly,
		BoundingEdges: edges,
		Area:          area,
		Perimeter:     geom.Perimeter(poly),
	}, true
}
