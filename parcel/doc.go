// Package parcel implements the parcel subdivider (§4.7): given a block
// polygon (real, drawn from blockfinder, or a one-off "virtual block"
// standing in for an unrouted zone), a zone type, a density tier, and a
// subdivision method, it tiles the block with Parcels sized by zone and
// density.
//
// Two subdivision strategies are provided, mirroring the geometry
// kernel's own split between exact analytic routines (geom.ClipByHalfPlane,
// geom.OffsetPolygonInward) and the welder's iterative refinement style:
// skeletonSubdivide emits frontage-aligned rectangular strips; voronoiSubdivide
// partitions the block by successive perpendicular-bisector half-plane
// clips around a seeded point set. Both reduce to the same clipping
// primitive from the geometry kernel, so neither duplicates its own
// polygon math.
package parcel
