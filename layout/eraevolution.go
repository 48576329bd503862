package layout

import (
	"github.com/cityfab/cityfab/roadgraph"
)

// evolveEra implements §4.5's era-evolution rule: recompute every edge's
// material from era x class, rescale width by the era's width-scale
// factor, and — for eras after 1950 — deterministically upgrade
// StreetUpgradeFraction of streets to avenues.
func evolveEra(g *roadgraph.Graph, era Era, cfg *config) {
	scale := era.widthScale()
	upgrade := era.upgradesStreets()

	for _, id := range g.EdgeIDs() {
		e, ok := g.Edge(id)
		if !ok {
			continue
		}
		class := e.Class
		if upgrade && class == roadgraph.ClassStreet && cfg.rngSource.Float64() < StreetUpgradeFraction {
			class = roadgraph.ClassAvenue
		}
		material := era.materialFor(class)
		width := class.NominalWidth() * scale
		_ = g.SetEdgeAttributes(id, class, material, width)
	}
}
