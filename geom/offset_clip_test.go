package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetPolygonInwardSquare(t *testing.T) {
	p := square(10)
	inset := OffsetPolygonInward(p, 1)
	assert.Len(t, inset, 4)
	for _, v := range inset {
		assert.True(t, v.X >= 0.99 && v.X <= 9.01, "x=%v", v.X)
		assert.True(t, v.Y >= 0.99 && v.Y <= 9.01, "y=%v", v.Y)
	}
	assert.InDelta(t, 64, Area(inset), 1e-6)
}

func TestOffsetPolygonInwardTooSmallCollapses(t *testing.T) {
	p := square(2)
	inset := OffsetPolygonInward(p, 5)
	// Vertices cross past the opposite side; no topology repair per §4.1 —
	// callers must detect this themselves (area is not necessarily zero).
	assert.Len(t, inset, 4)
}

func TestOffsetPolygonInwardRejectsDegenerate(t *testing.T) {
	assert.Nil(t, OffsetPolygonInward(Polygon{{0, 0}, {1, 1}}, 1))
}

func TestClipByHalfPlaneBisectsSquare(t *testing.T) {
	p := square(10)
	// Keep the left half: normal points in -X, point at x=5.
	left := ClipByHalfPlane(p, Vec2{5, 0}, Vec2{-1, 0})
	assert.InDelta(t, 50, Area(left), 1e-9)
}

func TestClipByHalfPlaneEntirelyOutside(t *testing.T) {
	p := square(10)
	out := ClipByHalfPlane(p, Vec2{100, 0}, Vec2{-1, 0})
	assert.Less(t, len(out), 3)
}

func TestPolygonIntersects(t *testing.T) {
	a := square(10)
	bOverlap := Polygon{{5, 5}, {15, 5}, {15, 15}, {5, 15}}
	bDisjoint := Polygon{{20, 20}, {30, 20}, {30, 30}, {20, 30}}
	bContained := Polygon{{2, 2}, {4, 2}, {4, 4}, {2, 4}}
	assert.True(t, PolygonIntersects(a, bOverlap))
	assert.False(t, PolygonIntersects(a, bDisjoint))
	assert.True(t, PolygonIntersects(a, bContained))
}

func TestPointInPolygon(t *testing.T) {
	p := square(10)
	assert.True(t, PointInPolygon(Vec2{5, 5}, p))
	assert.False(t, PointInPolygon(Vec2{15, 5}, p))
}
