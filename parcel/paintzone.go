package parcel

import (
	"github.com/cityfab/cityfab/blockfinder"
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/rng"
)

// virtualBlockID is the sentinel block id assigned to the synthetic block
// created by the standalone-zone path (§4.7 step 1), distinguished from
// real blockfinder ids (which start at 0) by its negative value.
const virtualBlockID blockfinder.BlockID = -1

// candidateParcel is a subdivided polygon plus its computed attributes,
// ready to be handed to Store.replaceBlock.
type candidateParcel struct {
	poly         geom.Polygon
	zoneType     ZoneType
	density      Density
	area         float64
	frontage     float64
	frontageEdge int32
	isCorner     bool
	centroid     geom.Vec2
}

// PaintZone implements paintZone (§4.7): find every block intersecting
// polygon (or fabricate a virtual one if none intersect), discard each
// target block's existing parcels, and subdivide it by method. It
// returns every parcel created across all affected blocks.
func PaintZone(store *Store, blocks []blockfinder.CityBlock, polygon geom.Polygon, zt ZoneType, density Density, method Method, seed int64, r *rng.Mulberry32) ([]*Parcel, error) {
	if len(polygon) < 3 {
		return nil, ErrEmptyPaintPolygon
	}

	targets := intersectingBlocks(blocks, polygon)
	if len(targets) == 0 {
		targets = []blockfinder.CityBlock{{ID: virtualBlockID, Outer: geom.EnsureCCW(polygon)}}
	}

	var affected []*Parcel
	for _, block := range targets {
		candidates := subdivideBlock(block, zt, density, method, seed, r)
		store.ClearBlock(block.ID)
		parcels := store.replaceBlock(block.ID, candidates)
		affected = append(affected, parcels...)
	}
	return affected, nil
}

func intersectingBlocks(blocks []blockfinder.CityBlock, polygon geom.Polygon) []blockfinder.CityBlock {
	var out []blockfinder.CityBlock
	for _, b := range blocks {
		if geom.PolygonIntersects(b.Outer, polygon) {
			out = append(out, b)
		}
	}
	return out
}

func subdivideBlock(block blockfinder.CityBlock, zt ZoneType, density Density, method Method, seed int64, r *rng.Mulberry32) []candidateParcel {
	poly := geom.EnsureCCW(block.Outer)
	if len(poly) < 3 {
		return nil
	}

	var polys []geom.Polygon
	switch method {
	case MethodVoronoi:
		src := r
		if src == nil {
			src = rng.NewMulberry32(rng.DeriveSeed(seed, uint64(block.ID)))
		}
		polys = voronoiSubdivide(poly, zt, density, src)
	default:
		idx := chooseFrontageEdge(block)
		polys = skeletonSubdivide(poly, idx, zt, density)
	}

	out := make([]candidateParcel, 0, len(polys))
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		area := geom.Area(p)
		if area < MinParcelArea {
			continue
		}
		fr := computeFrontage(p, block)
		out = append(out, candidateParcel{
			poly:         p,
			zoneType:     zt,
			density:      density,
			area:         area,
			frontage:     fr.length,
			frontageEdge: fr.edge,
			isCorner:     fr.isCorner,
			centroid:     geom.Centroid(p),
		})
	}
	return out
}
