// Package geom implements the stateless 2D planar geometry kernel shared by
// every stage of the city generator: point/segment/polygon primitives, area
// and centroid, point-in-polygon, segment intersection, inward polygon
// offset, half-plane clipping, and a coarse polygon/polygon overlap test.
//
// Every function here is a pure, allocation-light computation over
// float64 coordinates in planar meters. Nothing in this package holds
// state or knows about roads, blocks, or parcels; callers in roadgraph,
// welder, blockfinder, parcel, and massing build their domain semantics on
// top of these primitives, the way lvlath/core builds graph semantics on
// top of plain Vertex/Edge values.
//
// Tolerances (ParallelEPS, EdgeOverlapEPS, LineParamEPS) are named
// constants, not magic literals buried in call sites, so callers can see
// and — where a function takes an explicit epsilon argument — override
// them. Degenerate input (fewer than 3 polygon vertices, a zero-length
// segment) is reported by returning ok=false or a vertex count below 3,
// never by panicking.
package geom
