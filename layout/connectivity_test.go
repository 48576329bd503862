package layout

import (
	"testing"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectedComponentsSplitsDisjointIslands(t *testing.T) {
	g := roadgraph.New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	_, _ = g.AddEdge(a, b, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)

	c := g.AddNode(geom.Vec2{X: 5000, Y: 5000})
	d := g.AddNode(geom.Vec2{X: 5100, Y: 5000})
	_, _ = g.AddEdge(c, d, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)

	comps := connectedComponents(g)
	require.Len(t, comps, 2)
}

func TestRepairConnectivityLinksWithinBudget(t *testing.T) {
	g := roadgraph.New()
	w := welder.New(g)

	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	_, _ = g.AddEdge(a, b, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)

	c := g.AddNode(geom.Vec2{X: 150, Y: 0})
	d := g.AddNode(geom.Vec2{X: 250, Y: 0})
	_, _ = g.AddEdge(c, d, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)

	require.Len(t, connectedComponents(g), 2)
	repairConnectivity(g, 4000, Era(2000), w)
	assert.Len(t, connectedComponents(g), 1)
}

func TestRepairConnectivitySkipsBeyondBudget(t *testing.T) {
	g := roadgraph.New()
	w := welder.New(g)

	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	_, _ = g.AddEdge(a, b, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)

	c := g.AddNode(geom.Vec2{X: 100000, Y: 0})
	d := g.AddNode(geom.Vec2{X: 100100, Y: 0})
	_, _ = g.AddEdge(c, d, roadgraph.ClassStreet, roadgraph.MaterialAsphalt)

	repairConnectivity(g, 100, Era(2000), w)
	assert.Len(t, connectedComponents(g), 2)
}
