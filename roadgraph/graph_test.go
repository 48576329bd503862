package roadgraph

import (
	"testing"

	"github.com/cityfab/cityfab/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeSnapsWithinThreshold(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 10, Y: 0}) // within 15m SnapThreshold
	assert.Equal(t, a, b)
	assert.Equal(t, 1, g.NodeCount())

	c := g.AddNode(geom.Vec2{X: 100, Y: 0})
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, g.NodeCount())
}

func TestAddEdgeBasic(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	id, reason := g.AddEdge(a, b, ClassStreet, MaterialAsphalt)
	require.Equal(t, RejectNone, reason)
	e, ok := g.Edge(id)
	require.True(t, ok)
	assert.Equal(t, 100.0, e.Length)

	na, _ := g.Node(a)
	nb, _ := g.Node(b)
	assert.False(t, na.IsIntersection)
	assert.False(t, nb.IsIntersection)
}

func TestAddEdgeRejectsSameNode(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	_, reason := g.AddEdge(a, a, ClassStreet, MaterialAsphalt)
	assert.Equal(t, RejectSameNode, reason)
}

func TestAddEdgeIdempotentOnDuplicate(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	id1, r1 := g.AddEdge(a, b, ClassStreet, MaterialAsphalt)
	require.Equal(t, RejectNone, r1)
	id2, r2 := g.AddEdge(a, b, ClassStreet, MaterialAsphalt)
	assert.Equal(t, RejectNone, r2)
	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdgeRejectsAcuteAngle(t *testing.T) {
	g := New()
	center := g.AddNode(geom.Vec2{X: 0, Y: 0})
	east := g.AddNode(geom.Vec2{X: 100, Y: 0})
	_, r1 := g.AddEdge(center, east, ClassStreet, MaterialAsphalt)
	require.Equal(t, RejectNone, r1)

	// 10 degrees off the existing edge: well under MinAngle (30deg).
	almostEast := g.AddNode(geom.Vec2{X: 100, Y: 17.6})
	_, r2 := g.AddEdge(center, almostEast, ClassStreet, MaterialAsphalt)
	assert.Equal(t, RejectAngleTooAcute, r2)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRemoveEdgeClearsIntersectionFlag(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	id, _ := g.AddEdge(a, b, ClassStreet, MaterialAsphalt)
	require.NoError(t, g.RemoveEdge(id))
	na, _ := g.Node(a)
	assert.False(t, na.IsIntersection)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestMergeNodesRewiresAndDedups(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	c := g.AddNode(geom.Vec2{X: 200, Y: 100})
	d := g.AddNode(geom.Vec2{X: 200, Y: -100})

	_, r1 := g.AddEdge(a, b, ClassStreet, MaterialAsphalt)
	require.Equal(t, RejectNone, r1)
	_, r2 := g.AddEdge(b, c, ClassStreet, MaterialAsphalt)
	require.Equal(t, RejectNone, r2)
	_, r3 := g.AddEdge(d, c, ClassStreet, MaterialAsphalt)
	require.Equal(t, RejectNone, r3)

	require.NoError(t, g.MergeNodes(d, b))

	_, ok := g.Node(d)
	assert.False(t, ok)
	_, hasDup := g.HasEdgeBetween(b, c)
	assert.True(t, hasDup)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestNearbyNodesFindsWithinRadius(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	g.AddNode(geom.Vec2{X: 500, Y: 500})
	found := g.NearbyNodes(geom.Vec2{X: 5, Y: 5}, 20)
	require.Len(t, found, 1)
	assert.Equal(t, a, found[0])
}

func TestRelocateNodeUpdatesIndexAndEdgeLength(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	id, _ := g.AddEdge(a, b, ClassStreet, MaterialAsphalt)

	require.NoError(t, g.RelocateNode(a, geom.Vec2{X: -50, Y: 0}))
	e, _ := g.Edge(id)
	assert.InDelta(t, 150, e.Length, 1e-9)

	found := g.NearbyNodes(geom.Vec2{X: -50, Y: 0}, 1)
	assert.Contains(t, found, a)
}

func TestSetEdgeAttributesUpdatesInPlace(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	id, _ := g.AddEdge(a, b, ClassStreet, MaterialDirt)

	require.NoError(t, g.SetEdgeAttributes(id, ClassAvenue, MaterialAsphalt, 16))
	e, _ := g.Edge(id)
	assert.Equal(t, ClassAvenue, e.Class)
	assert.Equal(t, MaterialAsphalt, e.Material)
	assert.Equal(t, 16.0, e.Width)
}

func TestStatsSnapshot(t *testing.T) {
	g := New()
	a := g.AddNode(geom.Vec2{X: 0, Y: 0})
	b := g.AddNode(geom.Vec2{X: 100, Y: 0})
	_, _ = g.AddEdge(a, b, ClassHighway, MaterialConcrete)
	stats := g.Stats()
	assert.Equal(t, 2, stats.Nodes)
	assert.Equal(t, 1, stats.Edges)
	assert.InDelta(t, 100, stats.LengthByClass[ClassHighway], 1e-9)
}
