// Package welder implements the online intersection welder from §4.4: an
// incremental layer over roadgraph.Graph that, whenever a new segment is
// submitted, finds mid-span crossings against every existing edge, splits
// both sides at those crossings, snaps new endpoints against nearby
// existing nodes, and maintains a table of Intersection records.
//
// Welder is the only component allowed to call roadgraph.Graph's
// mutating methods when bringing in externally- or procedurally-drawn
// segments: every other stage (blockfinder, parcel, massing) only reads
// the resulting Graph. This mirrors lvlath/dfs's relationship to
// lvlath/core — an algorithm package that consumes a core.Graph without
// owning its storage — except welder also feeds new edges back in.
//
// Determinism (§4.4): for the same sequence of AddSegment calls, the
// resulting node/edge/intersection tables are bit-stable. Floating
// ambiguity at the INTERSECTION_EPS boundary is resolved by sorting
// accepted crossings by parameter-along-S first, then by distance from
// the segment's start point.
package welder
