package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentIntersectCross(t *testing.T) {
	a := Segment{Vec2{0, 0}, Vec2{10, 10}}
	b := Segment{Vec2{0, 10}, Vec2{10, 0}}
	p, t1, u1, ok := SegmentIntersect(a, b)
	assert.True(t, ok)
	assert.InDelta(t, 5, p.X, 1e-9)
	assert.InDelta(t, 5, p.Y, 1e-9)
	assert.InDelta(t, 0.5, t1, 1e-9)
	assert.InDelta(t, 0.5, u1, 1e-9)
}

func TestSegmentIntersectParallelRejected(t *testing.T) {
	a := Segment{Vec2{0, 0}, Vec2{10, 0}}
	b := Segment{Vec2{0, 1}, Vec2{10, 1}}
	_, _, _, ok := SegmentIntersect(a, b)
	assert.False(t, ok)
}

func TestSegmentIntersectOutOfRangeRejected(t *testing.T) {
	a := Segment{Vec2{0, 0}, Vec2{1, 1}}
	b := Segment{Vec2{3, 0}, Vec2{4, -1}}
	_, _, _, ok := SegmentIntersect(a, b)
	assert.False(t, ok)
}

func TestInteriorCrossingRejectsNearEndpoint(t *testing.T) {
	a := Segment{Vec2{0, 0}, Vec2{10, 0}}
	b := Segment{Vec2{0.5, -1}, Vec2{0.5, 1}}
	p, _, _, ok := SegmentIntersect(a, b)
	assert.True(t, ok)
	assert.False(t, InteriorCrossing(a, b, p, 2.0))
	assert.True(t, InteriorCrossing(a, b, p, 0.1))
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 1.5707963267948966, AngleBetween(Vec2{1, 0}, Vec2{0, 1}), 1e-9)
	assert.InDelta(t, 0, AngleBetween(Vec2{1, 0}, Vec2{2, 0}), 1e-9)
	assert.InDelta(t, 3.141592653589793, AngleBetween(Vec2{1, 0}, Vec2{-1, 0}), 1e-9)
}
