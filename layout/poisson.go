package layout

import "github.com/cityfab/cityfab/geom"

// placeCenters implements §4.5's center-placement rule: 1 to 3 centers
// per era, rejection-sampled within a 15%-margin inset so that no two
// centers are closer than minSpacing = min(W,H)/(n+1), with up to
// MaxPoissonAttemptsPerCenter attempts per center. A center that cannot
// be placed within budget is simply skipped (the generator degrades to
// fewer centers rather than failing).
func placeCenters(width, height float64, n int, cfg *config) []geom.Vec2 {
	if n < MinCenters {
		n = MinCenters
	}
	if n > MaxCenters {
		n = MaxCenters
	}

	marginX := width * CenterMarginFrac
	marginY := height * CenterMarginFrac
	minSpacing := minFloat(width, height) / float64(n+1)

	centers := make([]geom.Vec2, 0, n)
	for i := 0; i < n; i++ {
		for attempt := 0; attempt < MaxPoissonAttemptsPerCenter; attempt++ {
			candidate := geom.Vec2{
				X: marginX + cfg.rngSource.Float64()*(width-2*marginX),
				Y: marginY + cfg.rngSource.Float64()*(height-2*marginY),
			}
			if farEnough(candidate, centers, minSpacing) {
				centers = append(centers, candidate)
				break
			}
		}
	}
	return centers
}

func farEnough(p geom.Vec2, existing []geom.Vec2, minDist float64) bool {
	for _, e := range existing {
		if p.Dist(e) < minDist {
			return false
		}
	}
	return true
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
