package massing

import (
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/parcel"
)

// emitBody lofts the body volume as a stack of per-floor prisms at
// LODFull/LODMid (§4.8 step 7's "per-floor horizontal subdivisions"),
// or as a single prism at LODBoxOnly. Style-conditional details are
// layered on top of the floor stack rather than folded into it, since
// they're optional decoration, not structural volume.
func emitBody(b *builder, footprint geom.Polygon, zBase float64, bodyH float64, floors int, zt parcel.ZoneType, density parcel.Density, materialID uint8, lod LOD) {
	if lod == LODBoxOnly || floors <= 1 {
		b.prism(footprint, zBase, zBase+bodyH, materialID)
		return
	}

	floorH := bodyH / float64(floors)
	groundFloorH := floorH
	if zt == parcel.ZoneCommercial {
		groundFloorH = floorH * 1.5
	}
	remaining := bodyH - groundFloorH
	otherFloorH := remaining / float64(floors-1)

	y := zBase
	b.prism(footprint, y, y+groundFloorH, materialID)
	y += groundFloorH

	for f := 1; f < floors; f++ {
		top := y + otherFloorH
		b.prism(footprint, y, top, materialID)

		if zt == parcel.ZoneResidential && (density == parcel.DensityMedium || density == parcel.DensityHigh) && f%2 == 0 {
			emitBalcony(b, footprint, y, otherFloorH, materialID)
		}
		y = top
	}

	if zt == parcel.ZoneIndustrial {
		emitClerestory(b, footprint, zBase+bodyH, materialID)
		emitLoadingDock(b, footprint, zBase, materialID)
	}
}

// emitBalcony protrudes a thin shelf on the footprint's longest edge.
func emitBalcony(b *builder, footprint geom.Polygon, y, floorH float64, materialID uint8) {
	var a, c geom.Vec2
	best := -1.0
	footprint.Edges(func(p, q geom.Vec2) {
		if l := p.Dist(q); l > best {
			best, a, c = l, p, q
		}
	})
	dir := c.Sub(a).Normalized()
	outward := geom.Vec2{X: dir.Y, Y: -dir.X} // away from interior (right of a CCW edge)
	depth := 1.2
	a2 := a.Add(outward.Scale(depth))
	c2 := c.Add(outward.Scale(depth))
	slab := geom.Polygon{a, a2, c2, c}
	b.prism(slab, y, y+floorH*0.1, materialID)
}

// emitClerestory adds a raised, recessed band of roof-line glazing.
func emitClerestory(b *builder, footprint geom.Polygon, y float64, materialID uint8) {
	inset := geom.OffsetPolygonInward(footprint, 1.5)
	if len(inset) < 3 {
		return
	}
	b.prism(inset, y, y+1.5, materialID)
}

// emitLoadingDock adds a low dock box on the footprint's longest edge at
// ground level.
func emitLoadingDock(b *builder, footprint geom.Polygon, zBase float64, materialID uint8) {
	var a, c geom.Vec2
	best := -1.0
	footprint.Edges(func(p, q geom.Vec2) {
		if l := p.Dist(q); l > best {
			best, a, c = l, p, q
		}
	})
	dir := c.Sub(a).Normalized()
	outward := geom.Vec2{X: dir.Y, Y: -dir.X}
	mid := a.Add(c).Scale(0.5)
	half := dir.Scale(c.Dist(a) * 0.15)
	d0 := mid.Sub(half)
	d1 := mid.Add(half)
	d2 := d1.Add(outward.Scale(2.5))
	d3 := d0.Add(outward.Scale(2.5))
	dock := geom.Polygon{d0, d3, d2, d1}
	b.prism(dock, zBase, zBase+1.2, materialID)
}
