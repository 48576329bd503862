package spatialindex

import (
	"sort"
	"testing"

	"github.com/cityfab/cityfab/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndNearby(t *testing.T) {
	g := New(50)
	g.Insert(1, geom.Vec2{X: 10, Y: 10})
	g.Insert(2, geom.Vec2{X: 400, Y: 400})
	g.Insert(3, geom.Vec2{X: 20, Y: 20})

	ids := g.NearbyWithinRadius(geom.Vec2{X: 0, Y: 0}, 30)
	sort.Ints(ids)
	assert.Equal(t, []int{1, 3}, ids)
}

func TestRemove(t *testing.T) {
	g := New(50)
	p := geom.Vec2{X: 5, Y: 5}
	g.Insert(1, p)
	require.Equal(t, 1, g.Len())
	g.Remove(1, p)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.NearbyWithinRadius(p, 100))
}

func TestInsertUpsertMovesCell(t *testing.T) {
	g := New(50)
	g.Insert(1, geom.Vec2{X: 0, Y: 0})
	g.Insert(1, geom.Vec2{X: 1000, Y: 1000})
	assert.Empty(t, g.NearbyWithinRadius(geom.Vec2{X: 0, Y: 0}, 10))
	assert.Len(t, g.NearbyWithinRadius(geom.Vec2{X: 1000, Y: 1000}, 10), 1)
}

func TestDefaultCellSizeFallback(t *testing.T) {
	g := New(0)
	assert.Equal(t, DefaultCellSize, g.cellSize)
}
