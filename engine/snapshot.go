package engine

import (
	"os"
	"sort"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/massing"
	"github.com/cityfab/cityfab/parcel"
	"github.com/cityfab/cityfab/rng"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
	"github.com/rs/zerolog"
)

// BuildingSnapshot is the engine's plain-data capture of one building.
// Mesh is deliberately not captured: it is a pure function of Massing
// and LOD (massing.BuildMesh), so Restore regenerates it rather than
// carrying redundant vertex data that bit-stability already guarantees
// will come back identical.
type BuildingSnapshot struct {
	ID      int
	Massing massing.BuildingMassing
	LOD     massing.LOD
}

// Snapshot is a deterministic serialization of a Context's full core
// state — road graph, welded intersections, parcels, buildings, and RNG
// stream position — to a plain Go struct (SUPPLEMENTED: a host embedding
// the engine can persist this between process runs, or hold several in
// memory for undo/branching, without re-deriving a planning session from
// its original ordered request sequence). Blocks are not captured: they
// are a pure function of the road graph (blockfinder.FindBlocks), so
// Restore recomputes them the same way Boot does.
type Snapshot struct {
	Width, Height float64

	Era        massing.Era
	Seed       uint32
	RNGState   uint32
	DefaultLOD massing.LOD

	Graph   roadgraph.GraphSnapshot
	Welder  welder.WelderSnapshot
	Parcels parcel.StoreSnapshot

	Buildings      []BuildingSnapshot
	NextBuildingID int
}

// Snapshot captures c's current state. The returned value shares no
// memory with c; mutating c afterward (or discarding it) does not affect
// a previously taken Snapshot.
//
// Complexity: O(V+E+I+P+B).
func (c *Context) Snapshot() Snapshot {
	buildings := make([]BuildingSnapshot, 0, len(c.buildings))
	ids := make([]int, 0, len(c.buildings))
	for id := range c.buildings {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		b := c.buildings[id]
		m := *b.Massing
		m.Footprint = append(geom.Polygon(nil), b.Massing.Footprint...)
		buildings = append(buildings, BuildingSnapshot{ID: b.ID, Massing: m, LOD: b.LOD})
	}

	return Snapshot{
		Width:  c.Width,
		Height: c.Height,

		Era:        c.Era,
		Seed:       c.Seed,
		RNGState:   c.RNG.State(),
		DefaultLOD: c.DefaultLOD,

		Graph:   c.Graph.Snapshot(),
		Welder:  c.Welder.Snapshot(),
		Parcels: c.Parcel.Snapshot(),

		Buildings:      buildings,
		NextBuildingID: c.nextBuildingID,
	}
}

// Restore rebuilds a Context from a Snapshot previously returned by
// Snapshot, reproducing the road graph, welder intersection table,
// parcels, buildings, and RNG stream position exactly — a later
// Dispatch against the restored Context continues the original ordered
// request sequence's bit-stable output rather than starting a new one
// (§8: identical seed/era/bounds/request-sequence ⇒ identical output).
//
// Complexity: O(V+E+I+P+B).
func Restore(snap Snapshot) *Context {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("component", "engine").Logger()

	graph := roadgraph.RestoreGraph(snap.Graph)
	c := &Context{
		Width:  snap.Width,
		Height: snap.Height,

		Graph:  graph,
		Welder: welder.RestoreWelder(graph, snap.Welder),
		Parcel: parcel.RestoreStore(snap.Parcels),

		buildings:      make(map[int]*BuildingRecord, len(snap.Buildings)),
		nextBuildingID: snap.NextBuildingID,

		Era:        snap.Era,
		Seed:       snap.Seed,
		RNG:        rng.RestoreMulberry32(snap.RNGState),
		DefaultLOD: snap.DefaultLOD,
		Log:        logger,
	}

	for i := range snap.Buildings {
		bs := snap.Buildings[i]
		m := bs.Massing
		c.buildings[bs.ID] = &BuildingRecord{
			ID:      bs.ID,
			Massing: &m,
			Mesh:    massing.BuildMesh(&m, bs.LOD),
			LOD:     bs.LOD,
		}
	}

	c.refreshBlocks()
	return c
}
