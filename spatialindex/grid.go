package spatialindex

import (
	"math"

	"github.com/cityfab/cityfab/geom"
)

// DefaultCellSize is the default uniform-grid cell size in meters (§4.2).
const DefaultCellSize = 50.0

type cellKey struct{ cx, cy int }

// Grid is a uniform-grid point index keyed by integer ids. Zero value is
// not usable; construct with New.
type Grid struct {
	cellSize float64
	cells    map[cellKey]map[int]geom.Vec2
	points   map[int]geom.Vec2 // id -> last known position, for O(1) Remove
}

// New returns a Grid with the given cell size. A cellSize <= 0 falls back
// to DefaultCellSize.
//
// Complexity: O(1).
func New(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize: cellSize,
		cells:    make(map[cellKey]map[int]geom.Vec2),
		points:   make(map[int]geom.Vec2),
	}
}

func (g *Grid) keyOf(p geom.Vec2) cellKey {
	return cellKey{
		cx: int(math.Floor(p.X / g.cellSize)),
		cy: int(math.Floor(p.Y / g.cellSize)),
	}
}

// Insert adds id at position p. If id was already present at a different
// position, it is first removed from its old cell (Insert acts as an
// upsert keyed by id).
//
// Complexity: O(1) amortized.
func (g *Grid) Insert(id int, p geom.Vec2) {
	if old, ok := g.points[id]; ok {
		g.removeFromCell(id, old)
	}
	g.points[id] = p
	k := g.keyOf(p)
	bucket, ok := g.cells[k]
	if !ok {
		bucket = make(map[int]geom.Vec2)
		g.cells[k] = bucket
	}
	bucket[id] = p
}

// Remove deletes id from the index. p must be the position it was last
// inserted at (callers that don't track it can instead look it up via
// PositionOf before removing). Removing an absent id is a no-op.
//
// Complexity: O(1).
func (g *Grid) Remove(id int, p geom.Vec2) {
	if _, ok := g.points[id]; !ok {
		return
	}
	delete(g.points, id)
	g.removeFromCell(id, p)
}

func (g *Grid) removeFromCell(id int, p geom.Vec2) {
	k := g.keyOf(p)
	bucket, ok := g.cells[k]
	if !ok {
		return
	}
	delete(bucket, id)
	if len(bucket) == 0 {
		delete(g.cells, k)
	}
}

// PositionOf returns the last-inserted position of id, if present.
func (g *Grid) PositionOf(id int) (geom.Vec2, bool) {
	p, ok := g.points[id]
	return p, ok
}

// Nearby returns the ids resident in the ceil(radius/cellSize)-ring of
// cells around p (§4.2). It does not itself filter by exact Euclidean
// distance — callers refine with geom.Vec2.Dist, since cell membership is
// only a superset of the true radius query.
//
// Complexity: O(k) where k is the number of ids in the scanned cells.
func (g *Grid) Nearby(p geom.Vec2, radius float64) []int {
	if radius < 0 {
		radius = 0
	}
	ring := int(math.Ceil(radius / g.cellSize))
	center := g.keyOf(p)
	var out []int
	for dx := -ring; dx <= ring; dx++ {
		for dy := -ring; dy <= ring; dy++ {
			bucket, ok := g.cells[cellKey{center.cx + dx, center.cy + dy}]
			if !ok {
				continue
			}
			for id := range bucket {
				out = append(out, id)
			}
		}
	}
	return out
}

// NearbyWithinRadius is Nearby followed by an exact-distance filter; it is
// the common case callers want (roadgraph's snap-insert, layout's empty
// region scan) and is provided so every call site does not repeat the
// same two-step dance.
//
// Complexity: O(k) where k is the number of ids in the scanned cells.
func (g *Grid) NearbyWithinRadius(p geom.Vec2, radius float64) []int {
	candidates := g.Nearby(p, radius)
	out := candidates[:0]
	for _, id := range candidates {
		if pos, ok := g.points[id]; ok && pos.Dist(p) <= radius {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of ids currently indexed.
func (g *Grid) Len() int { return len(g.points) }
