package layout

import "github.com/cityfab/cityfab/roadgraph"

// Era is a historical year tag driving material selection and
// era-evolution width scaling (§4.5).
type Era int

// materialFor implements the era→material rule table from §4.5.
func (e Era) materialFor(class roadgraph.RoadClass) roadgraph.RoadMaterial {
	switch {
	case e <= 1900:
		return roadgraph.MaterialDirt
	case e <= 1930:
		if class == roadgraph.ClassHighway || class == roadgraph.ClassAvenue {
			return roadgraph.MaterialCobblestone
		}
		return roadgraph.MaterialDirt
	case e <= 1950:
		if class == roadgraph.ClassLocal {
			return roadgraph.MaterialDirt
		}
		return roadgraph.MaterialCobblestone
	case e <= 1990:
		if class == roadgraph.ClassLocal {
			return roadgraph.MaterialCobblestone
		}
		return roadgraph.MaterialAsphalt
	default:
		if class == roadgraph.ClassHighway {
			return roadgraph.MaterialConcrete
		}
		return roadgraph.MaterialAsphalt
	}
}

// widthScale implements the era-evolution width-scaling rule: widths
// scale x0.8 pre-1920, x1.1 post-1960, unscaled in between.
func (e Era) widthScale() float64 {
	switch {
	case e < preWidthScaleEra:
		return preWidthScale
	case e > postWidthScaleEra:
		return postWidthScale
	default:
		return 1.0
	}
}

// upgradesStreets reports whether this era promotes a fraction of
// streets to avenues (post-1950, per §4.5).
func (e Era) upgradesStreets() bool { return e > streetUpgradeEra }

// classForDistance implements the radial-road distance-based class
// degradation rule: avenue within AvenueDistance, street within
// StreetDistance, local beyond.
func classForDistance(dist float64) roadgraph.RoadClass {
	switch {
	case dist < AvenueDistance:
		return roadgraph.ClassAvenue
	case dist < StreetDistance:
		return roadgraph.ClassStreet
	default:
		return roadgraph.ClassLocal
	}
}
