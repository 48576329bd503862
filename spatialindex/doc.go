// Package spatialindex implements the uniform-grid bucket index described
// in §4.2: a single flat map from integer cell coordinates to the ids
// resident in that cell, supporting insert, remove, and radius queries.
// It is shared by roadgraph (snap-insert of nodes) and by layout (empty
// region scans, local-cluster seeding).
//
// The index is deliberately minimal — no dynamic rebalancing, no R-tree,
// no kd-tree — because cityfab's inputs are bounded planning areas with a
// known, modest node count (hundreds, not millions). Its shape follows
// akhenakh-geo's s2/point_index.go: insert/remove by id, query a region
// around a point, let the caller refine by exact distance. Unlike an S2
// point index, which buckets by cell-covering on the unit sphere, this one
// buckets by a planar (x/cellSize, y/cellSize) integer pair.
//
// Not thread-safe: a single owner (engine.Context) mutates and queries it,
// consistent with §5's single-threaded cooperative scheduling model.
package spatialindex
