package engine

import (
	"github.com/cityfab/cityfab/massing"
	"github.com/cityfab/cityfab/roadgraph"
)

// materialForEra duplicates layout.Era's unexported materialFor table
// for externally-painted segments (`paint-road` never goes through
// layout.Generate). Kept as its own copy rather than exporting
// layout.Era.materialFor: engine and layout stay independent consumers
// of "a year", the same way massing.Era deliberately avoids sharing a
// type with layout.Era.
func materialForEra(e massing.Era, class roadgraph.RoadClass) roadgraph.RoadMaterial {
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
