package layout

import (
	"math"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
)

// gridFillSpan is the number of lattice points emitted per axis for each
// empty region's local grid (3x3, centered on the scan cell).
const gridFillSpan = 3

// buildAdaptiveGrid implements §4.5's adaptive-grid rule: the planning
// area is scanned on a 2*BlockMaxDim grid; any cell whose NearbyNodes
// query returns fewer than 3 nodes within 2*BlockMaxDim is an empty
// region. Each empty region gets a small rotated lattice of local roads,
// oriented to the mean direction of nearby incident edges, spaced by
// roughly mean(BlockMinDim, BlockMaxDim) with jitter, skipping any edge
// whose endpoint would land within MinRoadSeparation of an existing node.
func buildAdaptiveGrid(g *roadgraph.Graph, width, height float64, era Era, w *welder.Welder, cfg *config) {
	step := 2 * BlockMaxDim
	baseSpacing := (BlockMinDim + BlockMaxDim) / 2
	jitterRange := (BlockMaxDim - BlockMinDim) / 2

	for y := step / 2; y < height; y += step {
		for x := step / 2; x < width; x += step {
			cell := geom.Vec2{X: x, Y: y}
			nearby := g.NearbyNodes(cell, step)
			if len(nearby) >= 3 {
				continue
			}
			rotation := meanIncidentOrientation(g, nearby)
			spacing := baseSpacing + (cfg.rngSource.Float64()*2-1)*jitterRange
			emitLocalLattice(g, cell, rotation, spacing, era, w)
		}
	}
}

// meanIncidentOrientation returns the circular mean direction of every
// edge incident to the given nodes, or 0 if none have any incident edges.
func meanIncidentOrientation(g *roadgraph.Graph, nodeIDs []roadgraph.NodeID) float64 {
	sumSin, sumCos := 0.0, 0.0
	count := 0
	for _, id := range nodeIDs {
		n, ok := g.Node(id)
		if !ok {
			continue
		}
		for _, eid := range n.Incident {
			e, ok := g.Edge(eid)
			if !ok {
				continue
			}
			other := e.A
			if other == id {
				other = e.B
			}
			on, ok := g.Node(other)
			if !ok {
				continue
			}
			angle := on.Pos.Sub(n.Pos).Angle()
			sumSin += math.Sin(angle)
			sumCos += math.Cos(angle)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Atan2(sumSin, sumCos)
}

func emitLocalLattice(g *roadgraph.Graph, center geom.Vec2, rotation, spacing float64, era Era, w *welder.Welder) {
	material := era.materialFor(roadgraph.ClassLocal)
	width := roadgraph.ClassLocal.NominalWidth() * era.widthScale()

	u := geom.Vec2{X: math.Cos(rotation), Y: math.Sin(rotation)}
	v := u.Perp()

	half := float64(gridFillSpan-1) / 2
	points := make([][]geom.Vec2, gridFillSpan)
	for row := 0; row < gridFillSpan; row++ {
		points[row] = make([]geom.Vec2, gridFillSpan)
		for col := 0; col < gridFillSpan; col++ {
			offU := (float64(col) - half) * spacing
			offV := (float64(row) - half) * spacing
			points[row][col] = center.Add(u.Scale(offU)).Add(v.Scale(offV))
		}
	}

	tryEmit := func(a, b geom.Vec2) {
		if tooCloseToExistingNode(g, a) || tooCloseToExistingNode(g, b) {
			return
		}
		w.AddSegment(a, b, roadgraph.ClassLocal, material, width)
	}

	for row := 0; row < gridFillSpan; row++ {
		for col := 0; col < gridFillSpan; col++ {
			if col+1 < gridFillSpan {
				tryEmit(points[row][col], points[row][col+1])
			}
			if row+1 < gridFillSpan {
				tryEmit(points[row][col], points[row+1][col])
			}
		}
	}
}

func tooCloseToExistingNode(g *roadgraph.Graph, p geom.Vec2) bool {
	return len(g.NearbyNodes(p, MinRoadSeparation)) > 0
}
