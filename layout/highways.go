package layout

import (
	"math"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
)

// buildHighways implements §4.5's highway-network rule: for every
// unordered pair of centers, an organic polyline with segment count
// approximately dist/HighwaySegmentSpacing and a perpendicular sinusoidal
// offset of amplitude HighwayOffsetAmplitude. When at least two centers
// exist, a closed ring is additionally emitted around the midpoint of the
// first two (§4.5 Open Question: the spec names "the first two centers"
// without pinning a ring center; the midpoint keeps the ring roughly
// equidistant from both, which is the natural reading for a shared
// beltway).
func buildHighways(centers []geom.Vec2, era Era, w *welder.Welder, cfg *config) {
	for i := 0; i < len(centers); i++ {
		for j := i + 1; j < len(centers); j++ {
			emitHighwayPolyline(centers[i], centers[j], era, w, cfg)
		}
	}
	if len(centers) >= 2 {
		mid := centers[0].Add(centers[1]).Scale(0.5)
		emitRing(mid, era, w, cfg)
	}
}

func emitHighwayPolyline(a, b geom.Vec2, era Era, w *welder.Welder, cfg *config) {
	dist := a.Dist(b)
	segCount := int(math.Round(dist / HighwaySegmentSpacing))
	if segCount < 1 {
		segCount = 1
	}

	dir := b.Sub(a).Normalized()
	perp := dir.Perp()
	material := era.materialFor(roadgraph.ClassHighway)
	width := roadgraph.ClassHighway.NominalWidth() * era.widthScale()

	prev := a
	for i := 1; i <= segCount; i++ {
		t := float64(i) / float64(segCount)
		base := a.Add(b.Sub(a).Scale(t))
		offset := math.Sin(t*math.Pi) * HighwayOffsetAmplitude
		point := base.Add(perp.Scale(offset))
		if i == segCount {
			point = b
		}
		w.AddSegment(prev, point, roadgraph.ClassHighway, material, width)
		prev = point
	}
}

func emitRing(center geom.Vec2, era Era, w *welder.Welder, cfg *config) {
	radius := RingBaseRadius + cfg.rngSource.Float64()*RingRadiusJitterRange
	material := era.materialFor(roadgraph.ClassAvenue)
	width := roadgraph.ClassAvenue.NominalWidth() * era.widthScale()

	points := make([]geom.Vec2, RingNodeCount)
	for i := 0; i < RingNodeCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(RingNodeCount)
		jitter := (cfg.rngSource.Float64()*2 - 1) * RingPerturb
		r := radius + jitter
		points[i] = geom.Vec2{
			X: center.X + r*math.Cos(angle),
			Y: center.Y + r*math.Sin(angle),
		}
	}
	for i := 0; i < RingNodeCount; i++ {
		next := points[(i+1)%RingNodeCount]
		w.AddSegment(points[i], next, roadgraph.ClassAvenue, material, width)
	}
}
