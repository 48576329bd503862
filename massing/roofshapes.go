package massing

import (
	"math"

	"github.com/cityfab/cityfab/geom"
)

// emitRoof lofts the roof volume above a footprint (§4.8 step 7). At
// LODBoxOnly every roof type degrades to a flat cap, matching the
// spec's "extruded footprint box plus a top cap" LOD-2 rule.
func emitRoof(b *builder, footprint geom.Polygon, zBase, roofH float64, roof RoofType, materialID uint8, lod LOD) {
	if lod == LODBoxOnly || roofH <= 0 || len(footprint) < 3 {
		loop := make([]Vec3, len(footprint))
		for i, v := range footprint {
			loop[i] = fromGround(v, zBase)
		}
		b.fan(loop, materialID)
		return
	}
	switch roof {
	case RoofPyramid:
		apex := fromGround(geom.Centroid(footprint), zBase+roofH)
		b.apexLoft(footprint, zBase, apex, materialID)
	case RoofGable, RoofHip:
		ridgeLoft(b, footprint, zBase, roofH, materialID)
	case RoofMansard:
		insetLoft(b, footprint, zBase, roofH, materialID)
	case RoofBarrel:
		archExtrude(b, footprint, zBase, roofH, materialID)
	case RoofSawtooth:
		sawtoothExtrude(b, footprint, zBase, roofH, materialID)
	case RoofGreen, RoofFlat:
		fallthrough
	default:
		b.prism(footprint, zBase, zBase+roofH*0.2, materialID) // shallow parapet, then flat cap
	}
}

// primaryAxis returns the unit direction of a footprint's longest edge,
// used as the ridge/extrusion axis for gable, hip, barrel, and sawtooth
// roofs (an approximation: these roofs are exact only for rectangular
// footprints, which is what setback-offset rectangular parcels produce
// in the common case).
func primaryAxis(footprint geom.Polygon) geom.Vec2 {
	best := geom.Vec2{X: 1}
	bestLen := -1.0
	footprint.Edges(func(a, c geom.Vec2) {
		if l := a.Dist(c); l > bestLen {
			bestLen = l
			best = c.Sub(a).Normalized()
		}
	})
	return best
}

// ridgeLoft approximates a gable/hip roof: a ridge segment along the
// footprint's primary axis through its centroid, with every boundary
// vertex lofted to its nearest point on the ridge, forming a tent shape.
func ridgeLoft(b *builder, footprint geom.Polygon, zBase, roofH float64, materialID uint8) {
	axis := primaryAxis(footprint)
	center := geom.Centroid(footprint)

	var tMin, tMax float64
	for _, v := range footprint {
		t := v.Sub(center).Dot(axis)
		if t < tMin {
			tMin = t
		}
		if t > tMax {
			tMax = t
		}
	}
	ridgeA := center.Add(axis.Scale(tMin * 0.5))
	ridgeB := center.Add(axis.Scale(tMax * 0.5))
	apexY := zBase + roofH

	n := len(footprint)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, c := footprint[i], footprint[j]
		ta := clamp(a.Sub(center).Dot(axis)/math.Max(tMax, -tMin+1e-9), -1, 1)
		tc := clamp(c.Sub(center).Dot(axis)/math.Max(tMax, -tMin+1e-9), -1, 1)
		ra := ridgeAt(ridgeA, ridgeB, ta)
		rc := ridgeAt(ridgeA, ridgeB, tc)
		pa := fromGround(a, zBase)
		pc := fromGround(c, zBase)
		pra := Vec3{X: ra.X, Y: apexY, Z: ra.Y}
		prc := Vec3{X: rc.X, Y: apexY, Z: rc.Y}
		b.quad(pa, pc, prc, pra, materialID)
	}
}

func ridgeAt(a, b geom.Vec2, t float64) geom.Vec2 {
	mid := a.Add(b).Scale(0.5)
	half := b.Sub(a).Scale(0.5)
	return mid.Add(half.Scale(t))
}

// insetLoft approximates a mansard roof's two-level slope: the footprint
// steps inward twice, rising each time, ending in a flat cap.
func insetLoft(b *builder, footprint geom.Polygon, zBase, roofH float64, materialID uint8) {
	mid := geom.OffsetPolygonInward(footprint, roofH*0.35)
	top := geom.OffsetPolygonInward(mid, roofH*0.35)
	if len(mid) < 3 {
		mid = footprint
	}
	if len(top) < 3 {
		top = mid
	}
	loftBetween(b, footprint, zBase, mid, zBase+roofH*0.6, materialID)
	loftBetween(b, mid, zBase+roofH*0.6, top, zBase+roofH, materialID)
	b.fan(reversedAt(top, zBase+roofH), materialID)
}

func loftBetween(b *builder, lower geom.Polygon, zLower float64, upper geom.Polygon, zUpper float64, materialID uint8) {
	n := len(lower)
	m := len(upper)
	if n == 0 || m == 0 {
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ui := i % m
		uj := j % m
		b.quad(
			fromGround(lower[i], zLower), fromGround(lower[j], zLower),
			fromGround(upper[uj], zUpper), fromGround(upper[ui], zUpper),
			materialID,
		)
	}
}

func reversedAt(p geom.Polygon, z float64) []Vec3 {
	out := make([]Vec3, len(p))
	for i, v := range p {
		out[len(p)-1-i] = fromGround(v, z)
	}
	return out
}

// archExtrude approximates a barrel-vault roof: a half-ellipse cross
// section swept along the footprint's primary axis, over its bounding
// rectangle (an accepted simplification for non-rectangular footprints).
func archExtrude(b *builder, footprint geom.Polygon, zBase, roofH float64, materialID uint8) {
	const segments = 8
	axis := primaryAxis(footprint)
	perp := geom.Vec2{X: -axis.Y, Y: axis.X}
	minX, maxX, minP, maxP := projectedBounds(footprint, axis, perp)
	halfSpan := (maxP - minP) / 2
	center := (minP + maxP) / 2
	originAxis := minX

	profile := make([]geom.Vec2, segments+1)
	heights := make([]float64, segments+1)
	for i := 0; i <= segments; i++ {
		u := float64(i)/float64(segments)*2 - 1 // [-1,1]
		p := center + u*halfSpan
		h := roofH * math.Sqrt(math.Max(0, 1-u*u))
		profile[i] = axis.Scale(originAxis).Add(perp.Scale(p))
		heights[i] = h
	}

	for i := 0; i < segments; i++ {
		a0 := profile[i].Add(axis.Scale(0))
		a1 := profile[i+1].Add(axis.Scale(0))
		b0 := a0.Add(axis.Scale(maxX - minX))
		b1 := a1.Add(axis.Scale(maxX - minX))
		p00 := Vec3{X: a0.X, Y: zBase + heights[i], Z: a0.Y}
		p01 := Vec3{X: a1.X, Y: zBase + heights[i+1], Z: a1.Y}
		p10 := Vec3{X: b0.X, Y: zBase + heights[i], Z: b0.Y}
		p11 := Vec3{X: b1.X, Y: zBase + heights[i+1], Z: b1.Y}
		b.quad(p00, p01, p11, p10, materialID)
	}
}

func projectedBounds(p geom.Polygon, axis, perp geom.Vec2) (minAxis, maxAxis, minPerp, maxPerp float64) {
	minAxis, minPerp = math.Inf(1), math.Inf(1)
	maxAxis, maxPerp = math.Inf(-1), math.Inf(-1)
	for _, v := range p {
		a, q := v.Dot(axis), v.Dot(perp)
		if a < minAxis {
			minAxis = a
		}
		if a > maxAxis {
			maxAxis = a
		}
		if q < minPerp {
			minPerp = q
		}
		if q > maxPerp {
			maxPerp = q
		}
	}
	return
}

// sawtoothExtrude approximates a sawtooth roof: repeating right-triangle
// ridges along the footprint's primary axis.
func sawtoothExtrude(b *builder, footprint geom.Polygon, zBase, roofH float64, materialID uint8) {
	const teeth = 4
	axis := primaryAxis(footprint)
	perp := geom.Vec2{X: -axis.Y, Y: axis.X}
	minAxis, maxAxis, minPerp, maxPerp := projectedBounds(footprint, axis, perp)
	span := maxAxis - minAxis
	if span <= 0 {
		b.prism(footprint, zBase, zBase+roofH, materialID)
		return
	}
	toothLen := span / teeth
	at := func(a, q, z float64) Vec3 {
		p := axis.Scale(a).Add(perp.Scale(q))
		return fromGround(geom.Vec2{X: p.X, Y: p.Y}, z)
	}
	for t := 0; t < teeth; t++ {
		a0 := minAxis + float64(t)*toothLen
		a1 := a0 + toothLen
		// sloped ramp from base height at a0 up to the ridge at a1
		b.quad(
			at(a0, minPerp, zBase), at(a1, minPerp, zBase+roofH),
			at(a1, maxPerp, zBase+roofH), at(a0, maxPerp, zBase),
			materialID,
		)
		// vertical tooth face dropping straight back down at a1
		b.quad(
			at(a1, minPerp, zBase+roofH), at(a1, minPerp, zBase),
			at(a1, maxPerp, zBase), at(a1, maxPerp, zBase+roofH),
			materialID,
		)
	}
}
