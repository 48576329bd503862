// Package cityfab is a procedural urban-fabric generator: given a
// planning area, a seed, and an era, it grows a road graph, welds its
// intersections, finds the blocks the roads enclose, subdivides those
// blocks into parcels, and masses a building on each parcel.
//
// Under the hood, everything is organized into single-purpose
// subpackages:
//
//	geom/         — vectors, polygons, area/centroid, clipping, offsetting
//	spatialindex/ — uniform-grid nearest-neighbor index over node positions
//	rng/          — deterministic Mulberry32 generator and seed derivation
//	roadgraph/    — the road graph itself: nodes, edges, flat id tables
//	welder/       — crossing detection and intersection welding
//	layout/       — the procedural seeding pipeline (centers, highways,
//	                radial roads, adaptive grid, local infill, era evolution)
//	blockfinder/  — cycle search over the welded graph to recover city blocks
//	parcel/       — block subdivision into parcels (skeleton and Voronoi)
//	massing/      — per-parcel building footprint, height, and mesh generation
//	engine/       — the owned Context and its tagged request/reply surface
//	cmd/cityfab/  — a thin CLI driving one Context per invocation
//
// A typical session boots a Context, paints or grows roads, paints
// zoned parcels onto the resulting blocks, and generates buildings for
// them:
//
//	c := engine.NewContext(2000, 2000)
//	c.Boot(engine.BootRequest{Seed: 42, Era: 1950})
//	c.PaintZone(engine.PaintZoneRequest{Polygon: lot, ZoneType: parcel.ZoneResidential, Density: parcel.DensityMedium, Method: parcel.MethodSkeleton})
//	c.GenerateBuildingForZone(engine.GenerateBuildingForZoneRequest{Position: lot[0], Level: 1, Event: "spawn"})
//
// See SPEC_FULL.md for the full operation catalog.
package cityfab
