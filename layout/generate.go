package layout

import (
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
)

// Metrics summarizes one Generate call, analogous to roadgraph.Stats —
// a SUPPLEMENTED convenience that engine.Context logs after each boot.
type Metrics struct {
	Centers              int
	Era                  Era
	NodesBefore          int
	NodesAfter           int
	EdgesBefore          int
	EdgesAfter           int
	ConnectivityRepairs  int
}

// Generate runs the full procedural-seeding pipeline against g through w,
// in the fixed order from §4.5: centers, highways (+ ring), radial roads,
// adaptive grid, local infill, connectivity repair, intersection
// optimization, era evolution. It mirrors the teacher's BuildGraph
// orchestrator: resolve config once, then run stages in a fixed,
// documented order so identical inputs always produce identical output.
func Generate(g *roadgraph.Graph, w *welder.Welder, width, height float64, era Era, opts ...Option) (Metrics, error) {
	if g == nil || w == nil {
		return Metrics{}, ErrNilGraph
	}
	if width <= 0 || height <= 0 {
		return Metrics{}, ErrInvalidPlanningArea
	}
	cfg := newConfig(opts...)
	if cfg.rngSource == nil {
		return Metrics{}, ErrNeedRandSource
	}

	m := Metrics{Era: era, NodesBefore: g.NodeCount(), EdgesBefore: g.EdgeCount()}

	centerCount := MinCenters + cfg.rngSource.IntRange(0, MaxCenters-MinCenters)
	centers := placeCenters(width, height, centerCount, cfg)
	m.Centers = len(centers)

	buildHighways(centers, era, w, cfg)
	buildRadialRoads(centers, width, height, era, w, cfg)
	buildAdaptiveGrid(g, width, height, era, w, cfg)
	buildLocalInfill(g, width, height, era, w, cfg)

	before := len(connectedComponents(g))
	repairConnectivity(g, width, era, w)
	after := len(connectedComponents(g))
	m.ConnectivityRepairs = before - after
	if m.ConnectivityRepairs < 0 {
		m.ConnectivityRepairs = 0
	}

	optimizeIntersections(g, w)
	evolveEra(g, era, cfg)

	m.NodesAfter = g.NodeCount()
	m.EdgesAfter = g.EdgeCount()
	return m, nil
}
