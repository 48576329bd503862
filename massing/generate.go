package massing

import (
	"errors"
	"math"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/parcel"
	"github.com/cityfab/cityfab/rng"
)

// ErrFootprintDegenerate is returned when the parcel's setback offset
// leaves no usable footprint: fewer than 3 vertices, a non-positive
// area, or an area no smaller than the parcel's (§4.8 step 2).
var ErrFootprintDegenerate = errors.New("massing: footprint degenerate after setback")

// streamSeed mixes the parcel id and the requested level into a
// per-building seed, keyed so the same parcel at a different upgrade
// level gets an independent, reproducible RNG stream (§4.8 "per-parcel
// RNG seeded from parcel id (+ level*1000 for upgrades)").
func streamSeed(parcelID, level int) uint32 {
	return rng.DeriveSeed(int64(parcelID), uint64(level)*1000)
}

// GenerateForParcel implements the massing generator (§4.8) for one
// parcel, producing both its BuildingMassing record and a triangulated
// Mesh at the requested level of detail.
func GenerateForParcel(id int, p *parcel.Parcel, era Era, level int, lod LOD) (*BuildingMassing, Mesh, error) {
	seed := streamSeed(p.ID, level)
	r := rng.NewMulberry32(seed)

	setLo, setHi := setbackRange(p.Density)
	setback := r.Range(setLo, setHi)
	origArea := geom.Area(p.Polygon)
	footprint := geom.OffsetPolygonInward(p.Polygon, setback)
	// OffsetPolygonInward never drops vertices (it displaces them, it
	// doesn't re-clip), so an oversized setback shows up as the offset
	// vertices crossing over each other rather than as a short slice: a
	// self-crossing or non-shrinking result is the signal to abort, not
	// len(footprint) < 3.
	if len(footprint) < 3 || geom.Area(footprint) <= 0 || geom.Area(footprint) >= origArea {
		return nil, Mesh{}, ErrFootprintDegenerate
	}
	footprint = geom.EnsureCCW(footprint)

	hLo, hHi := heightRange(p.Density)
	height := r.Range(hLo, hHi)
	height *= 1 + 0.3*float64(level-1)
	switch p.ZoneType {
	case parcel.ZoneCommercial:
		height *= 1.1
	case parcel.ZoneIndustrial:
		height *= 0.7
	}

	styles := eraStyles(era)
	style := styles[r.IntRange(0, len(styles)-1)]

	roofs := eraRoofs(era)
	roof := pickRoof(r, roofs, p.ZoneType, p.Density)

	basePct, roofPct := baseRoofRatio(style)
	basePct = clamp(basePct+r.Range(-ratioJitter, ratioJitter), baseRatioMin, baseRatioMax)
	roofPct = clamp(roofPct+r.Range(-ratioJitter, ratioJitter), roofRatioMin, roofRatioMax)

	baseH := height * basePct
	roofH := height * roofPct
	bodyH := height - baseH - roofH
	if bodyH < 0 {
		bodyH = 0
	}
	floors := int(math.Max(1, math.Round(bodyH/3)))

	m := &BuildingMassing{
		ID:         id,
		ParcelID:   p.ID,
		Footprint:  footprint,
		TotalH:     baseH + bodyH + roofH,
		BaseH:      baseH,
		BodyH:      bodyH,
		RoofH:      roofH,
		FloorCount: floors,
		Style:      style,
		Roof:       roof,
		Seed:       seed,
		ZoneType:   p.ZoneType,
		Density:    p.Density,
		Level:      level,
	}

	mesh := buildMesh(m, lod)
	return m, mesh, nil
}

// pickRoof applies the industrial-sawtooth and high-density-commercial-
// flat biases (§4.8 step 4) on top of the era's roof pool, falling back
// to an unbiased pick when the biased type isn't in the pool for this
// era.
func pickRoof(r *rng.Mulberry32, pool []RoofType, zt parcel.ZoneType, density parcel.Density) RoofType {
	const biasChance = 0.7
	if zt == parcel.ZoneIndustrial && containsRoof(pool, RoofSawtooth) && r.Float64() < biasChance {
		return RoofSawtooth
	}
	if zt == parcel.ZoneCommercial && density == parcel.DensityHigh && containsRoof(pool, RoofFlat) && r.Float64() < biasChance {
		return RoofFlat
	}
	return pool[r.IntRange(0, len(pool)-1)]
}

func containsRoof(pool []RoofType, want RoofType) bool {
	for _, r := range pool {
		if r == want {
			return true
		}
	}
	return false
}

// BuildMesh re-triangulates an already-generated BuildingMassing at an
// arbitrary LOD, without re-deriving its seed or re-rolling any of its
// style/height/footprint choices. Used when a caller wants a different
// LOD for a building it already holds a record for.
func BuildMesh(m *BuildingMassing, lod LOD) Mesh {
	return buildMesh(m, lod)
}

// buildMesh emits the three components (base, body, roof) as one mesh
// (§4.8 steps 7-8).
func buildMesh(m *BuildingMassing, lod LOD) Mesh {
	b := newBuilder()
	zBase := 0.0

	baseMat := materialFor(m.ZoneType, m.Style, componentBase, m.Roof)
	b.prism(m.Footprint, zBase, zBase+m.BaseH, baseMat)

	bodyMat := materialFor(m.ZoneType, m.Style, componentBody, m.Roof)
	emitBody(b, m.Footprint, zBase+m.BaseH, m.BodyH, m.FloorCount, m.ZoneType, m.Density, bodyMat, lod)

	roofMat := materialFor(m.ZoneType, m.Style, componentRoof, m.Roof)
	emitRoof(b, m.Footprint, zBase+m.BaseH+m.BodyH, m.RoofH, m.Roof, roofMat, lod)

	return b.finalize()
}
