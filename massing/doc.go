// Package massing implements the massing generator (§4.8): per parcel,
// it derives a footprint, a height, a style and roof type, and a
// vertical base/body/roof split, then emits a triangulated mesh of the
// resulting volume at one of three levels of detail.
//
// Geometry reuses the geometry kernel's 2D primitives (geom.Polygon,
// geom.OffsetPolygonInward) for the footprint and lofts them into 3D
// with a small mesh builder (mesh.go) modeled on the same
// accumulate-then-finalize shape the welder uses for intersection
// orientation: faces are added as they are generated, and per-vertex
// normals are only resolved once at the end.
//
// The ground plane is (X, Z); Y is up. A geom.Vec2{X, Y} ground
// coordinate maps to Vec3{X: v.X, Y: height, Z: v.Y}.
package massing
