// Package blockfinder enumerates the bounded planar faces of a
// roadgraph.Graph and turns them into CityBlock records (§4.6).
//
// FindBlocks runs a bounded depth-first cycle search over the graph's
// incidence lists — three-color vertex marking, back-edge recording, and
// Booth's-algorithm canonical rotation for deduplication, the same shape
// lvlath/dfs.DetectCycles uses over a core.Graph — then filters the raw
// cycles by length and enclosed area into valid blocks.
//
// A true planar face traversal (half-edge walk using incident-edge
// angular ordering) would avoid ever extracting a non-face cycle, but it
// requires each edge to carry a rotation-system ordering that roadgraph
// does not maintain; the DFS-with-filters approach this package uses
// instead accepts occasional redundant or non-minimal cycles and relies
// on the area/length bounds plus the cap on total extracted cycles to
// keep results sane for a generated street network, where blocks are
// overwhelmingly small simple loops.
package blockfinder
