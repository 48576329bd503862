package blockfinder

import (
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
)

// Vertex visitation states for the DFS cycle search (§4.6), mirroring
// lvlath/dfs's White/Gray/Black three-color marking.
const (
	White = iota
	Gray
	Black
)

// Bounds on which DFS-discovered cycles are accepted as blocks (§9
// Glossary: MIN_BLOCK_AREA, MAX_BLOCK_AREA).
const (
	// MinBlockArea and MaxBlockArea bound an accepted block's enclosed
	// area, in square meters.
	MinBlockArea = 100.0
	MaxBlockArea = 50000.0

	// MinCycleLen and MaxCycleLen bound an accepted cycle's node count.
	MinCycleLen = 3
	MaxCycleLen = 12

	// MaxBlocks caps the total number of cycles the search will extract,
	// to keep a dense or pathological graph's search bounded.
	MaxBlocks = 500
)

// BlockID identifies a CityBlock, stable for the lifetime of the
// blockfinder result set that produced it.
type BlockID int

// CityBlock is a bounded planar face of the road graph (§3).
type CityBlock struct {
	ID          BlockID
	Outer       geom.Polygon
	Holes       []geom.Polygon
	BoundingEdges []roadgraph.EdgeID
	Area        float64
	Perimeter   float64
	ParcelIDs   []int
}
