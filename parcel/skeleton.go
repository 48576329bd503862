package parcel

import "github.com/cityfab/cityfab/geom"

// skeletonSubdivide implements the skeleton method (§4.7): frontage-
// aligned rectangular strips, clipped to the block, with an optional
// second row of back parcels when the block is deep enough.
func skeletonSubdivide(poly geom.Polygon, frontageIdx int, zt ZoneType, density Density) []geom.Polygon {
	n := len(poly)
	if n < 3 {
		return nil
	}
	p0, p1 := poly[frontageIdx], poly[(frontageIdx+1)%n]
	frontageLen := p0.Dist(p1)
	if frontageLen < 1e-9 {
		return nil
	}
	dir := p1.Sub(p0).Scale(1 / frontageLen)
	normal := dir.Perp() // inward (left of the edge), matching clip.go's convention for a CCW poly

	tWidth := targetWidth(zt, density)
	tDepth := targetDepth(zt, density)
	if tWidth <= 0 || tDepth <= 0 {
		return nil
	}

	count := roundHalfAwayFromZero(frontageLen / tWidth)
	if count < 1 {
		count = 1
	}
	actualWidth := frontageLen / float64(count)

	rows := 1
	blockDepth := maxDistanceToLine(poly, p0, p1)
	if blockDepth > 2.5*tDepth && density != DensityLow {
		rows = 2
	}

	var out []geom.Polygon
	for row := 0; row < rows; row++ {
		rowNear := float64(row) * tDepth
		rowFar := rowNear + tDepth
		for i := 0; i < count; i++ {
			x0 := p0.Add(dir.Scale(actualWidth * float64(i)))
			x1 := p0.Add(dir.Scale(actualWidth * float64(i+1)))
			rect := geom.Polygon{
				x0.Add(normal.Scale(rowNear)),
				x1.Add(normal.Scale(rowNear)),
				x1.Add(normal.Scale(rowFar)),
				x0.Add(normal.Scale(rowFar)),
			}
			clipped := clipToPolygon(rect, poly)
			if len(clipped) < 3 {
				continue
			}
			if geom.Area(clipped) < MinParcelArea {
				continue
			}
			out = append(out, clipped)
		}
	}
	return out
}

func roundHalfAwayFromZero(x float64) int {
	if x >= 0 {
		return int(x + 0.5)
	}
	return -int(-x + 0.5)
}
