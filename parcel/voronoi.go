package parcel

import (
	"math"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/rng"
)

// voronoiSubdivide implements the Voronoi method (§4.7): a seeded point
// set, placed by a rotated-jittered grid then topped up by rejection
// sampling, with each cell built by successive perpendicular-bisector
// half-plane clips against every other seed.
func voronoiSubdivide(poly geom.Polygon, zt ZoneType, density Density, r *rng.Mulberry32) []geom.Polygon {
	if len(poly) < 3 || r == nil {
		return nil
	}
	blockArea := geom.Area(poly)
	if blockArea <= 0 {
		return nil
	}

	minW, _ := widthRange(zt)
	width := meanWidth(zt)
	targetArea := width * width * depthMultiplier(density) * widthMultiplier(density)
	if targetArea <= 0 {
		return nil
	}

	n := int(math.Round(blockArea / targetArea))
	maxN := int(math.Ceil(blockArea / (minW * minW * 0.8)))
	if n < 2 {
		n = 2
	}
	if maxN < 2 {
		maxN = 2
	}
	if n > maxN {
		n = maxN
	}

	seeds := placeSeeds(poly, n, targetArea, r)
	if len(seeds) == 0 {
		return nil
	}

	out := make([]geom.Polygon, 0, len(seeds))
	for i, s := range seeds {
		cell := poly
		for j, other := range seeds {
			if i == j {
				continue
			}
			mid := s.Add(other).Scale(0.5)
			toward := s.Sub(other).Normalized()
			cell = geom.ClipByHalfPlane(cell, mid, toward)
			if len(cell) < 3 {
				break
			}
		}
		if len(cell) < 3 {
			continue
		}
		if geom.Area(cell) < MinParcelArea {
			continue
		}
		out = append(out, cell)
	}
	return out
}

// placeSeeds lays a rotated-jittered grid of ceil(sqrt(n)) x ceil(sqrt(n))
// candidate points over poly's bounding box, keeps those inside poly, then
// rejection-samples any shortfall with a minimum spacing of
// 0.4*sqrt(targetArea), up to 20*n attempts.
func placeSeeds(poly geom.Polygon, n int, targetArea float64, r *rng.Mulberry32) []geom.Vec2 {
	minX, minY, maxX, maxY := bounds(poly)
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return nil
	}
	side := int(math.Ceil(math.Sqrt(float64(n))))
	cellW, cellH := w/float64(side), h/float64(side)
	center := geom.Centroid(poly)
	rot := r.Range(0, 2*math.Pi)
	cosR, sinR := math.Cos(rot), math.Sin(rot)

	var seeds []geom.Vec2
	for gy := 0; gy < side && len(seeds) < n; gy++ {
		for gx := 0; gx < side && len(seeds) < n; gx++ {
			local := geom.Vec2{
				X: (float64(gx)+0.5)*cellW - w/2,
				Y: (float64(gy)+0.5)*cellH - h/2,
			}
			rotated := geom.Vec2{
				X: local.X*cosR - local.Y*sinR,
				Y: local.X*sinR + local.Y*cosR,
			}
			jitter := geom.Vec2{X: r.Range(-cellW*0.2, cellW*0.2), Y: r.Range(-cellH*0.2, cellH*0.2)}
			p := center.Add(rotated).Add(jitter)
			if geom.PointInPolygon(p, poly) {
				seeds = append(seeds, p)
			}
		}
	}

	minSpacing := 0.4 * math.Sqrt(targetArea)
	attempts := 20 * n
	for len(seeds) < n && attempts > 0 {
		attempts--
		p := geom.Vec2{X: minX + r.Float64()*w, Y: minY + r.Float64()*h}
		if !geom.PointInPolygon(p, poly) {
			continue
		}
		if tooClose(p, seeds, minSpacing) {
			continue
		}
		seeds = append(seeds, p)
	}
	return seeds
}

func tooClose(p geom.Vec2, seeds []geom.Vec2, minSpacing float64) bool {
	for _, s := range seeds {
		if p.Dist(s) < minSpacing {
			return true
		}
	}
	return false
}

func bounds(p geom.Polygon) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range p {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return
}
