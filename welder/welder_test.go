package welder

import (
	"testing"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSegmentNonCrossingSimpleInsert(t *testing.T) {
	g := roadgraph.New()
	w := New(g)

	sub := w.AddSegment(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0}, roadgraph.ClassStreet, roadgraph.MaterialAsphalt, 12)
	require.True(t, sub.Success)
	assert.Len(t, sub.Segments, 1)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddSegmentCrossingProducesFourWayIntersection(t *testing.T) {
	g := roadgraph.New()
	w := New(g)

	subA := w.AddSegment(geom.Vec2{X: -100, Y: 0}, geom.Vec2{X: 100, Y: 0}, roadgraph.ClassStreet, roadgraph.MaterialAsphalt, 12)
	require.True(t, subA.Success)

	subB := w.AddSegment(geom.Vec2{X: 0, Y: -100}, geom.Vec2{X: 0, Y: 100}, roadgraph.ClassStreet, roadgraph.MaterialAsphalt, 16)
	require.True(t, subB.Success)

	// The north-south segment should have been split into two children by
	// the crossing, and the east-west segment likewise.
	assert.Len(t, subB.Segments, 2)
	require.Len(t, subB.Intersections, 1)

	iv, err := w.Intersection(subB.Intersections[0])
	require.NoError(t, err)
	assert.Equal(t, TypeCross, iv.Type)
	assert.True(t, iv.Pos.EqualEPS(geom.Vec2{X: 0, Y: 0}, 1e-6))
	assert.InDelta(t, 0.75*16.0, iv.Radius, 1e-9)
	assert.Len(t, iv.Segments, 4)
}

func TestAddSegmentIdempotentOnExactReinsertion(t *testing.T) {
	g := roadgraph.New()
	w := New(g)

	w.AddSegment(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0}, roadgraph.ClassStreet, roadgraph.MaterialAsphalt, 12)
	before := g.EdgeCount()

	sub := w.AddSegment(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0}, roadgraph.ClassStreet, roadgraph.MaterialAsphalt, 12)
	assert.Equal(t, before, g.EdgeCount())
	assert.True(t, sub.Success)
}

func TestAddSegmentSnapsEndpointToExistingNode(t *testing.T) {
	g := roadgraph.New()
	w := New(g)

	w.AddSegment(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0}, roadgraph.ClassStreet, roadgraph.MaterialAsphalt, 12)

	// New segment's start point is within SnapThreshold of (100,0) but not
	// exactly equal; it should weld onto the existing node rather than
	// creating a new one nearby.
	sub := w.AddSegment(geom.Vec2{X: 105, Y: 0}, geom.Vec2{X: 200, Y: 100}, roadgraph.ClassStreet, roadgraph.MaterialAsphalt, 12)
	require.True(t, sub.Success)
	assert.Equal(t, 3, g.NodeCount())
}

func TestAddSegmentRejectsDegenerate(t *testing.T) {
	g := roadgraph.New()
	w := New(g)
	sub := w.AddSegment(geom.Vec2{X: 5, Y: 5}, geom.Vec2{X: 5, Y: 5}, roadgraph.ClassStreet, roadgraph.MaterialAsphalt, 12)
	assert.False(t, sub.Success)
	assert.Equal(t, roadgraph.RejectDegenerateGeometry, sub.Reason)
}
