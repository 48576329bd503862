package layout

import (
	"math"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
)

// buildRadialRoads implements §4.5's radial-road rule: per center,
// 5 + floor(4*density) + U{0,2} rays at golden-angle increments, jittered
// +-RadialJitter radians, with rays too close (in angle) to an
// already-placed ray from the same center dropped. Ray length scales
// with a centrality factor relative to the map center, and each ray's
// class degrades with cumulative distance from its own center.
func buildRadialRoads(centers []geom.Vec2, width, height float64, era Era, w *welder.Welder, cfg *config) {
	mapCenter := geom.Vec2{X: width / 2, Y: height / 2}
	maxDist := mapCenter.Len() // half-diagonal-ish reference scale from origin; fine as a normalizer
	if maxDist < 1 {
		maxDist = 1
	}

	for _, center := range centers {
		rayCount := 5 + int(4*cfg.density) + cfg.rngSource.IntRange(0, 2)
		centrality := centralityFactor(center, mapCenter, maxDist)
		rayLength := BaseRayLength * centrality

		var placedAngles []float64
		base := cfg.rngSource.Float64() * 2 * math.Pi
		for i := 0; i < rayCount; i++ {
			angle := base + float64(i)*GoldenAngle
			angle += (cfg.rngSource.Float64()*2 - 1) * RadialJitter

			if tooCloseToExisting(angle, placedAngles) {
				continue
			}
			placedAngles = append(placedAngles, angle)
			emitRay(center, angle, rayLength, era, w, cfg)
		}
	}
}

func centralityFactor(center, mapCenter geom.Vec2, maxDist float64) float64 {
	d := center.Dist(mapCenter) / maxDist
	factor := CentralityMax - d*(CentralityMax-CentralityMin)
	if factor < CentralityMin {
		factor = CentralityMin
	}
	if factor > CentralityMax {
		factor = CentralityMax
	}
	return factor
}

func tooCloseToExisting(angle float64, placed []float64) bool {
	dir := geom.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	for _, p := range placed {
		other := geom.Vec2{X: math.Cos(p), Y: math.Sin(p)}
		if geom.AngleBetween(dir, other) < roadgraph.MinAngle {
			return true
		}
	}
	return false
}

func emitRay(center geom.Vec2, angle, length float64, era Era, w *welder.Welder, cfg *config) {
	dir := geom.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	steps := int(math.Ceil(length / RayStepLength))
	prev := center
	cumDist := 0.0
	for i := 1; i <= steps; i++ {
		stepLen := RayStepLength
		if remaining := length - cumDist; remaining < stepLen {
			stepLen = remaining
		}
		if stepLen <= 0 {
			break
		}
		cumDist += stepLen
		next := center.Add(dir.Scale(cumDist))

		class := classForDistance(cumDist)
		material := era.materialFor(class)
		segWidth := class.NominalWidth() * era.widthScale()
		w.AddSegment(prev, next, class, material, segWidth)
		prev = next
	}
}
