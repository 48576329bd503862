// Package layout implements the procedural seeding pipeline (§4.5): given
// a planning area, an era, and a seeded RNG, it emits a sequence of road
// segments into a welder.Welder — centers, highway and ring networks,
// radial roads, an adaptive grid over empty regions, local infill,
// connectivity repair, and a bounded intersection-optimization pass.
//
// Generate is the single public entry point, mirroring the teacher's
// BuildGraph orchestrator: it resolves a Config from functional options,
// then runs each stage in a fixed, documented order so that the same
// seed and era always produce the same graph.
package layout
