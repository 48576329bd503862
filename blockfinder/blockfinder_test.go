package blockfinder

import (
	"testing"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(g *roadgraph.Graph, x, y, side float64) []roadgraph.NodeID {
	a := g.AddNode(geom.Vec2{X: x, Y: y})
	b := g.AddNode(geom.Vec2{X: x + side, Y: y})
	c := g.AddNode(geom.Vec2{X: x + side, Y: y + side})
	d := g.AddNode(geom.Vec2{X: x, Y: y + side})
	g.AddEdge(a, b, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)
	g.AddEdge(b, c, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)
	g.AddEdge(c, d, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)
	g.AddEdge(d, a, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)
	return []roadgraph.NodeID{a, b, c, d}
}

func TestFindBlocksSingleSquare(t *testing.T) {
	g := roadgraph.New()
	square(g, 0, 0, 100)

	blocks := FindBlocks(g)
	require.Len(t, blocks, 1)
	assert.InDelta(t, 10000, blocks[0].Area, 1e-6)
	assert.Len(t, blocks[0].BoundingEdges, 4)
}

func TestFindBlocksRejectsTooSmallArea(t *testing.T) {
	g := roadgraph.New(roadgraph.WithSnapThreshold(0.01)) // avoid snap-merging close corners
	square(g, 0, 0, 5)                                    // area 25 < MinBlockArea

	blocks := FindBlocks(g)
	assert.Empty(t, blocks)
}

func TestFindBlocksTwoAdjacentSquares(t *testing.T) {
	g := roadgraph.New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	c := g.AddNode(geom.Vec2{X: 100, Y: 100})
	d := g.AddNode(geom.Vec2{X: 0, Y: 100})
	e := g.AddNode(geom.Vec2{X: 200, Y: 0})
	f := g.AddNode(geom.Vec2{X: 200, Y: 100})

	g.AddEdge(a, b, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)
	g.AddEdge(b, c, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)
	g.AddEdge(c, d, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)
	g.AddEdge(d, a, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)
	g.AddEdge(b, e, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)
	g.AddEdge(e, f, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)
	g.AddEdge(f, c, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)

	blocks := FindBlocks(g)
	require.Len(t, blocks, 2)
}

func TestCanonicalDedupRotationsAndReversal(t *testing.T) {
	cycle := []roadgraph.NodeID{1, 2, 3, 4, 1}
	sigA, _ := canonical(cycle)
	sigB, _ := canonical([]roadgraph.NodeID{2, 3, 4, 1, 2})
	sigC, _ := canonical([]roadgraph.NodeID{4, 3, 2, 1, 4})
	assert.Equal(t, sigA, sigB)
	assert.Equal(t, sigA, sigC)
}
