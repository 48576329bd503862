package massing

import (
	"math"

	"github.com/cityfab/cityfab/geom"
)

// Vec3 is a point or free vector in building-local space (X, Z ground
// plane, Y up).
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }
func (v Vec3) sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }
func (v Vec3) scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) cross(w Vec3) Vec3 {
	return Vec3{v.Y*w.Z - v.Z*w.Y, v.Z*w.X - v.X*w.Z, v.X*w.Y - v.Y*w.X}
}
func (v Vec3) len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) normalized() Vec3 {
	l := v.len()
	if l < 1e-12 {
		return Vec3{}
	}
	return v.scale(1 / l)
}

func fromGround(v geom.Vec2, height float64) Vec3 { return Vec3{X: v.X, Y: height, Z: v.Y} }

// Mesh is a triangulated, flattened mesh ready for the engine's typed-
// array encoding (§6): positions, normals and uvs as separate flat
// per-vertex arrays, indices per triangle, one material id per vertex.
type Mesh struct {
	Positions   []float32
	Normals     []float32
	UVs         []float32
	Indices     []uint32
	MaterialIDs []uint8
}

// builder accumulates faces into a Mesh, welding vertices that share a
// position (within weldEPS) so normals computed per face can be summed
// per shared vertex and normalized once at the end — the same
// accumulate-then-finalize shape welder.recomputeIntersection uses for
// circular-mean orientation.
type builder struct {
	key      map[posKey]uint32
	pos      []Vec3
	uv       [][2]float32
	material []uint8
	accum    []Vec3
	indices  []uint32
}

type posKey struct{ x, y, z int64 }

const weldScale = 1000.0 // 1mm grid

func newBuilder() *builder {
	return &builder{key: make(map[posKey]uint32)}
}

func (b *builder) vertex(p Vec3, uv [2]float32, materialID uint8) uint32 {
	k := posKey{
		x: int64(math.Round(p.X * weldScale)),
		y: int64(math.Round(p.Y * weldScale)),
		z: int64(math.Round(p.Z * weldScale)),
	}
	if idx, ok := b.key[k]; ok {
		return idx
	}
	idx := uint32(len(b.pos))
	b.key[k] = idx
	b.pos = append(b.pos, p)
	b.uv = append(b.uv, uv)
	b.material = append(b.material, materialID)
	b.accum = append(b.accum, Vec3{})
	return idx
}

func (b *builder) triangle(a, bb, c uint32) {
	pa, pb, pc := b.pos[a], b.pos[bb], b.pos[c]
	n := pb.sub(pa).cross(pc.sub(pa))
	b.accum[a] = b.accum[a].add(n)
	b.accum[bb] = b.accum[bb].add(n)
	b.accum[c] = b.accum[c].add(n)
	b.indices = append(b.indices, a, bb, c)
}

// quad adds two triangles (p0,p1,p2) and (p0,p2,p3), consistent winding.
func (b *builder) quad(p0, p1, p2, p3 Vec3, materialID uint8) {
	i0 := b.vertex(p0, [2]float32{0, 0}, materialID)
	i1 := b.vertex(p1, [2]float32{1, 0}, materialID)
	i2 := b.vertex(p2, [2]float32{1, 1}, materialID)
	i3 := b.vertex(p3, [2]float32{0, 1}, materialID)
	b.triangle(i0, i1, i2)
	b.triangle(i0, i2, i3)
}

// fan triangulates a convex polygon loop as a fan from its first vertex
// (§4.8 step 8: "triangulate general n-gons as a fan").
func (b *builder) fan(loop []Vec3, materialID uint8) {
	if len(loop) < 3 {
		return
	}
	idx := make([]uint32, len(loop))
	for i, p := range loop {
		idx[i] = b.vertex(p, [2]float32{0, 0}, materialID)
	}
	for i := 1; i < len(loop)-1; i++ {
		b.triangle(idx[0], idx[i], idx[i+1])
	}
}

// prism extrudes a ground-plane footprint (CCW when viewed from above)
// between heights zBase and zTop: side quads per edge, a downward-facing
// bottom cap, and an upward-facing top cap.
func (b *builder) prism(footprint geom.Polygon, zBase, zTop float64, materialID uint8) {
	n := len(footprint)
	if n < 3 {
		return
	}
	bottom := make([]Vec3, n)
	top := make([]Vec3, n)
	for i, v := range footprint {
		bottom[i] = fromGround(v, zBase)
		top[i] = fromGround(v, zTop)
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		b.quad(bottom[i], bottom[j], top[j], top[i], materialID)
	}
	bottomCap := make([]Vec3, n)
	for i := range bottom {
		bottomCap[i] = bottom[n-1-i] // reverse so it faces downward
	}
	b.fan(bottomCap, materialID)
	b.fan(top, materialID)
}

// apexLoft lofts a footprint to a single apex point, forming a triangle
// fan of side faces, without a top cap (pyramid roof, §4.8 step 7).
func (b *builder) apexLoft(footprint geom.Polygon, zBase float64, apex Vec3, materialID uint8) {
	n := len(footprint)
	if n < 3 {
		return
	}
	apexIdx := b.vertex(apex, [2]float32{0.5, 1}, materialID)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a := b.vertex(fromGround(footprint[i], zBase), [2]float32{0, 0}, materialID)
		c := b.vertex(fromGround(footprint[j], zBase), [2]float32{1, 0}, materialID)
		b.triangle(a, c, apexIdx)
	}
}

func (b *builder) finalize() Mesh {
	m := Mesh{
		Positions:   make([]float32, 0, len(b.pos)*3),
		Normals:     make([]float32, 0, len(b.pos)*3),
		UVs:         make([]float32, 0, len(b.pos)*2),
		Indices:     b.indices,
		MaterialIDs: b.material,
	}
	for i, p := range b.pos {
		m.Positions = append(m.Positions, float32(p.X), float32(p.Y), float32(p.Z))
		n := b.accum[i].normalized()
		m.Normals = append(m.Normals, float32(n.X), float32(n.Y), float32(n.Z))
		m.UVs = append(m.UVs, b.uv[i][0], b.uv[i][1])
	}
	return m
}
