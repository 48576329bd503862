package parcel

import (
	"math"

	"github.com/cityfab/cityfab/blockfinder"
	"github.com/cityfab/cityfab/geom"
)

// chooseFrontageEdge picks the block edge a subdivision should align to
// (§4.7 step 2). For a real block every boundary edge already coincides
// with a road edge, so every candidate ties at distance zero and the
// lowest index wins. A virtual block (the standalone-zone path) has no
// road edges at all; falling back to its longest edge is the same
// "longest edge" fallback §4.7's last paragraph uses for per-parcel
// frontage estimation, reused here for symmetry (an Open Question
// decision; see DESIGN.md).
func chooseFrontageEdge(block blockfinder.CityBlock) int {
	if len(block.BoundingEdges) > 0 {
		return 0
	}
	best, bestLen := 0, -1.0
	n := len(block.Outer)
	for i := 0; i < n; i++ {
		a, b := block.Outer[i], block.Outer[(i+1)%n]
		if l := a.Dist(b); l > bestLen {
			bestLen, best = l, i
		}
	}
	return best
}

// frontageResult is what computeFrontage discovers about a subdivided
// parcel's relationship to its containing block's boundary.
type frontageResult struct {
	length   float64
	edge     int32 // roadgraph.EdgeID as int32, or -1
	isCorner bool
}

// computeFrontage sums the lengths of parcel polygon edges that lie
// within FrontageTolerance of, and within FrontageCosine alignment with,
// any edge of the containing block (§4.7). If nothing matches, it falls
// back to the parcel's longest edge as an estimate with no frontage
// road id.
func computeFrontage(parcelPoly geom.Polygon, block blockfinder.CityBlock) frontageResult {
	matchedBlockEdges := make(map[int]struct{})
	var total float64
	var firstMatch int32 = -1
	var longestLen float64

	parcelPoly.Edges(func(pa, pb geom.Vec2) {
		if l := pa.Dist(pb); l > longestLen {
			longestLen = l
		}
		pdir := pb.Sub(pa)
		plen := pdir.Len()
		if plen < 1e-9 {
			return
		}
		pdir = pdir.Scale(1 / plen)

		n := len(block.Outer)
		for i := 0; i < n; i++ {
			ba, bb := block.Outer[i], block.Outer[(i+1)%n]
			bdir := bb.Sub(ba)
			blen := bdir.Len()
			if blen < 1e-9 {
				continue
			}
			bdir = bdir.Scale(1 / blen)

			cos := pdir.Dot(bdir)
			if cos < 0 {
				cos = -cos
			}
			if cos < FrontageCosine {
				continue
			}
			normal := geom.Vec2{X: bdir.Y, Y: -bdir.X}
			distA := math.Abs(pa.Sub(ba).Dot(normal))
			distB := math.Abs(pb.Sub(ba).Dot(normal))
			if distA > FrontageTolerance || distB > FrontageTolerance {
				continue
			}

			total += plen
			matchedBlockEdges[i] = struct{}{}
			if firstMatch == -1 && i < len(block.BoundingEdges) {
				firstMatch = int32(block.BoundingEdges[i])
			}
			break
		}
	})

	if total == 0 {
		return frontageResult{length: longestLen, edge: -1, isCorner: false}
	}
	return frontageResult{length: total, edge: firstMatch, isCorner: len(matchedBlockEdges) >= 2}
}
