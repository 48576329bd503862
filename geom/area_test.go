package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64) Polygon {
	return Polygon{{0, 0}, {side, 0}, {side, side}, {0, side}}
}

func TestArea(t *testing.T) {
	cases := []struct {
		name string
		poly Polygon
		want float64
	}{
		{"ccw square", square(10), 100},
		{"cw square", Polygon{{0, 0}, {0, 10}, {10, 10}, {10, 0}}, 100},
		{"triangle", Polygon{{0, 0}, {4, 0}, {0, 3}}, 6},
		{"degenerate", Polygon{{0, 0}, {1, 1}}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, Area(c.poly), 1e-9)
		})
	}
}

func TestCentroidOfSquareIsCenter(t *testing.T) {
	p := square(10)
	c := Centroid(p)
	assert.InDelta(t, 5, c.X, 1e-9)
	assert.InDelta(t, 5, c.Y, 1e-9)
}

func TestPerimeterOfSquare(t *testing.T) {
	require.InDelta(t, 40, Perimeter(square(10)), 1e-9)
}

func TestIsCCWAndEnsureCCW(t *testing.T) {
	ccw := square(5)
	cw := Polygon{{0, 0}, {0, 5}, {5, 5}, {5, 0}}
	assert.True(t, IsCCW(ccw))
	assert.False(t, IsCCW(cw))
	fixed := EnsureCCW(cw)
	assert.True(t, IsCCW(fixed))
	assert.InDelta(t, Area(ccw), Area(fixed), 1e-9)
}
