// Package roadgraph implements the road graph data model and operations
// from §3 and §4.3: integer-id nodes and edges stored in two flat tables
// (never cross-pointers, per §9's design note), with incidence tracked as
// a small per-node slice of edge ids.
//
// Graph is the single owned mutable core state for the road network,
// analogous to lvlath/core.Graph but specialized: nodes carry positions
// and are snap-deduplicated through a spatialindex.Grid, and edges carry
// a class/material/width and are rejected on insertion (never repaired
// after the fact) when they would violate the MinAngle invariant at
// either endpoint. All mutating methods are total functions: addEdge
// either succeeds or returns a structured AngleTooAcute rejection, never
// a partial mutation.
//
// Graph is not safe for concurrent use; per §5 it is owned exclusively by
// the single-threaded engine.Context.
package roadgraph
