package massing

import "github.com/cityfab/cityfab/parcel"

// Material ids for the mesh's per-vertex MaterialIDs buffer (§4.8 step 7:
// "material id drawn from a fixed table indexed by {zone, style,
// component, roof type}"). The concrete ids are this generator's own
// palette, not given numerically by the originating spec.
const (
	MaterialBrick uint8 = iota
	MaterialConcrete
	MaterialStucco
	MaterialGlass
	MaterialSteel
	MaterialWood
	MaterialTile
	MaterialMetal
	MaterialVegetation
)

// Component tags a massing component for material lookup.
type Component int

const (
	ComponentBase Component = iota
	ComponentBody
	ComponentRoof
)

// componentBase/Body/Roof are the package-internal spellings used by
// generate.go's buildMesh; kept as aliases so call sites inside this
// package don't need the exported name.
const (
	componentBase = ComponentBase
	componentBody = ComponentBody
	componentRoof = ComponentRoof
)

// MaterialTable is the {zone, style, component, roof} → material id
// lookup as data rather than a hard-coded switch (§9: tunables should be
// exposed, not hard-coded), so a host can override era/zone/style
// material choices by mutating a table's fields or constructing its own,
// without forking GenerateForParcel. Each map is consulted in a fixed
// priority order (roof first when the component is a roof; then
// zone-specific; then style-specific; then a fixed default), matching
// the original switch's own branch order.
type MaterialTable struct {
	RoofByType  map[RoofType]uint8
	BaseByZone  map[parcel.ZoneType]uint8
	BodyByZone  map[parcel.ZoneType]uint8
	BodyByStyle map[Style]uint8
	Default     uint8
}

// DefaultMaterialTable is the table GenerateForParcel consults unless a
// caller substitutes one. Residential bodies favor masonry (brick,
// stucco, concrete) per the end-to-end scenario in §8; commercial favors
// glass/steel; industrial favors steel/metal; roofs favor tile/metal/
// vegetation by type.
var DefaultMaterialTable = MaterialTable{
	RoofByType: map[RoofType]uint8{
		RoofGreen:    MaterialVegetation,
		RoofFlat:     MaterialConcrete,
		RoofSawtooth: MaterialMetal,
		RoofBarrel:   MaterialMetal,
	},
	BaseByZone: map[parcel.ZoneType]uint8{
		parcel.ZoneCommercial: MaterialGlass,
		parcel.ZoneIndustrial: MaterialMetal,
	},
	BodyByZone: map[parcel.ZoneType]uint8{
		parcel.ZoneCommercial: MaterialSteel,
		parcel.ZoneIndustrial: MaterialMetal,
	},
	BodyByStyle: map[Style]uint8{
		StyleVictorian:    MaterialBrick,
		StyleArtDeco:      MaterialBrick,
		StyleModern:       MaterialConcrete,
		StyleContemporary: MaterialConcrete,
		StyleFuturistic:   MaterialConcrete,
	},
	Default: MaterialStucco,
}

// MaterialFor resolves a material id for a given zone/style/component/
// roof combination against t, falling back to t.Default (or, for a roof
// component not present in RoofByType, MaterialTile, matching the
// original hard-coded tile-roof default) when no entry matches.
func (t MaterialTable) MaterialFor(zt parcel.ZoneType, style Style, comp Component, roof RoofType) uint8 {
	if comp == ComponentRoof {
		if id, ok := t.RoofByType[roof]; ok {
			return id
		}
		return MaterialTile
	}

	if zt != parcel.ZoneResidential && zt != parcel.ZoneNone {
		table := t.BaseByZone
		if comp == ComponentBody {
			table = t.BodyByZone
		}
		if id, ok := table[zt]; ok {
			return id
		}
	}

	if id, ok := t.BodyByStyle[style]; ok {
		return id
	}
	return t.Default
}

// materialFor is the internal call shape generate.go's buildMesh uses,
// dispatched through DefaultMaterialTable.
func materialFor(zt parcel.ZoneType, style Style, comp Component, roof RoofType) uint8 {
	return DefaultMaterialTable.MaterialFor(zt, style, comp, roof)
}
