package layout

import (
	"math"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
)

// localInfillRayLength is the fixed short ray length used for an
// infill cluster, well under a single block's long dimension.
const localInfillRayLength = BlockMinDim * 3

// buildLocalInfill implements §4.5's local-infill rule: any
// LocalInfillScanStep-stepped scan position with no neighbors within
// BlockMaxDim*LocalInfillNeighborFactor seeds a small 3-5-ray local
// cluster of ClassLocal roads.
func buildLocalInfill(g *roadgraph.Graph, width, height float64, era Era, w *welder.Welder, cfg *config) {
	radius := BlockMaxDim * LocalInfillNeighborFactor
	material := era.materialFor(roadgraph.ClassLocal)
	roadWidth := roadgraph.ClassLocal.NominalWidth() * era.widthScale()

	for y := 0.0; y < height; y += LocalInfillScanStep {
		for x := 0.0; x < width; x += LocalInfillScanStep {
			p := geom.Vec2{X: x, Y: y}
			if len(g.NearbyNodes(p, radius)) > 0 {
				continue
			}
			emitLocalCluster(p, material, roadWidth, w, cfg)
		}
	}
}

func emitLocalCluster(center geom.Vec2, material roadgraph.RoadMaterial, width float64, w *welder.Welder, cfg *config) {
	rayCount := 3 + cfg.rngSource.IntRange(0, 2)
	base := cfg.rngSource.Float64() * 2 * math.Pi
	for i := 0; i < rayCount; i++ {
		angle := base + float64(i)*(2*math.Pi/float64(rayCount))
		dir := geom.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		end := center.Add(dir.Scale(localInfillRayLength))
		w.AddSegment(center, end, roadgraph.ClassLocal, material, width)
	}
}
