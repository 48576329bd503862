package engine

import (
	"os"

	"github.com/cityfab/cityfab/blockfinder"
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/layout"
	"github.com/cityfab/cityfab/massing"
	"github.com/cityfab/cityfab/parcel"
	"github.com/cityfab/cityfab/rng"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
	"github.com/rs/zerolog"
)

// Context is the core's single owned-state object (§9: "Manager-style
// singletons... become explicit owned state grouped in a single core
// context"). It is not goroutine-safe; the concurrency model (§5) puts
// one Context behind one serialized request loop.
type Context struct {
	Width, Height float64

	Graph  *roadgraph.Graph
	Welder *welder.Welder
	Blocks []blockfinder.CityBlock
	Parcel *parcel.Store

	buildings      map[int]*BuildingRecord
	nextBuildingID int

	Era         massing.Era
	Seed        uint32
	RNG         *rng.Mulberry32
	DefaultLOD  massing.LOD
	Log         zerolog.Logger
}

// NewContext returns a booted Context over a width x height planning
// area (§3 Glossary: "Planning area").
func NewContext(width, height float64) *Context {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("component", "engine").Logger()
	ctx := &Context{
		Width:  width,
		Height: height,
		Log:    logger,
	}
	ctx.Boot(BootRequest{Seed: 1, Era: 1950})
	return ctx
}

// Boot implements the `boot` request (§6): (re)initializes the RNG and
// runs the procedural layout pipeline from scratch, discarding any prior
// graph, parcels, and buildings.
func (c *Context) Boot(req BootRequest) RoadsGeneratedReply {
	c.Seed = req.Seed
	c.Era = req.Era
	c.RNG = rng.NewMulberry32(req.Seed)

	c.Graph = roadgraph.New()
	c.Welder = welder.New(c.Graph)
	c.Parcel = parcel.NewStore()
	c.buildings = make(map[int]*BuildingRecord)
	c.nextBuildingID = 0

	metrics, err := layout.Generate(c.Graph, c.Welder, c.Width, c.Height, layout.Era(req.Era), layout.WithRNG(c.RNG))
	if err != nil {
		c.Log.Error().Err(err).Msg("layout generation failed")
	} else {
		c.Log.Info().
			Int("centers", metrics.Centers).
			Int("nodes", metrics.NodesAfter).
			Int("edges", metrics.EdgesAfter).
			Msg("layout generated")
	}

	c.refreshBlocks()
	return c.GetRoads()
}

// ShuffleSeed implements the `shuffle-seed` request: rebuild from a new
// seed, same era.
func (c *Context) ShuffleSeed(req ShuffleSeedRequest) RoadsGeneratedReply {
	return c.Boot(BootRequest{Seed: req.Seed, Era: c.Era})
}

// SetEra implements the `set-era` request: re-run layout for a new era,
// same seed.
func (c *Context) SetEra(req SetEraRequest) RoadsGeneratedReply {
	return c.Boot(BootRequest{Seed: c.Seed, Era: req.Era})
}

func (c *Context) refreshBlocks() {
	c.Blocks = blockfinder.FindBlocks(c.Graph)
}

func (c *Context) inBounds(p geom.Vec2) bool {
	return p.X >= 0 && p.X <= c.Width && p.Y >= 0 && p.Y <= c.Height
}

// PaintRoad implements the `paint-road` request (§6, §8 scenario 1/2):
// externally-requested segments outside the planning area are rejected,
// not clipped (clipping is only for internally generated segments).
func (c *Context) PaintRoad(req PaintRoadRequest) RoadPaintedReply {
	if !c.inBounds(req.Start) || !c.inBounds(req.End) {
		return RoadPaintedReply{Success: false, Reason: ReasonOutOfBounds}
	}

	sub := c.Welder.AddSegment(req.Start, req.End, req.Class, materialForEra(c.Era, req.Class), req.Class.NominalWidth())
	if !sub.Success {
		reason := ReasonDegenerateGeometry
		if sub.Reason == roadgraph.RejectAngleTooAcute {
			reason = ReasonAngleTooAcute
		}
		return RoadPaintedReply{Success: false, Reason: reason}
	}

	c.refreshBlocks()
	return RoadPaintedReply{
		Success:       true,
		Segments:      sub.Segments,
		Intersections: sub.Intersections,
	}
}

// GetRoads implements the `get-roads` request.
func (c *Context) GetRoads() RoadsGeneratedReply {
	segments := make([]RoadSegment, 0, c.Graph.EdgeCount())
	for _, eid := range c.Graph.EdgeIDs() {
		e, ok := c.Graph.Edge(eid)
		if !ok {
			continue
		}
		a, aok := c.Graph.Node(e.A)
		b, bok := c.Graph.Node(e.B)
		if !aok || !bok {
			continue
		}
		segments = append(segments, RoadSegment{Start: a.Pos, End: b.Pos, Width: e.Width, Class: e.Class})
	}

	wi := c.Welder.Intersections()
	intersections := make([]IntersectionSummary, 0, len(wi))
	for _, i := range wi {
		intersections = append(intersections, IntersectionSummary{
			ID: i.ID, Pos: i.Pos, Type: i.Type, Radius: i.Radius, Segments: len(i.Segments),
		})
	}
	return RoadsGeneratedReply{Segments: segments, Intersections: intersections}
}

// PaintZone implements the `paint-zone` request (§4.7, §6).
func (c *Context) PaintZone(req PaintZoneRequest) ZonePaintedReply {
	parcels, err := parcel.PaintZone(c.Parcel, c.Blocks, req.Polygon, req.ZoneType, req.Density, req.Method, int64(c.Seed), c.RNG)
	if err != nil {
		c.Log.Warn().Err(err).Msg("paint-zone rejected")
		return ZonePaintedReply{}
	}

	ids := make([]int, len(parcels))
	for i, p := range parcels {
		ids[i] = p.ID
	}
	return ZonePaintedReply{
		AffectedParcels: ids,
		Parcels:         parcels,
		Blocks:          c.blockSummaries(),
	}
}

func (c *Context) blockSummaries() []BlockSummary {
	out := make([]BlockSummary, 0, len(c.Blocks))
	for _, b := range c.Blocks {
		out = append(out, BlockSummary{
			ID: b.ID, Area: b.Area, Perimeter: b.Perimeter,
			ParcelCount: len(c.Parcel.ParcelsInBlock(b.ID)),
		})
	}
	return out
}

// GetParcels implements the `get-parcels` request.
func (c *Context) GetParcels() ParcelsReply { return ParcelsReply{Parcels: c.Parcel.All()} }

// GetBlocks implements the `get-blocks` request.
func (c *Context) GetBlocks() BlocksReply { return BlocksReply{Blocks: c.blockSummaries()} }

// ClearZones implements the `clear-zones` request: drop all parcels and
// massings, rebuild blocks.
func (c *Context) ClearZones() ClearZonesReply {
	dropped := len(c.Parcel.All())
	c.Parcel.Clear()
	buildingsDropped := len(c.buildings)
	c.buildings = make(map[int]*BuildingRecord)
	c.refreshBlocks()
	return ClearZonesReply{ParcelsDropped: dropped, BuildingsDropped: buildingsDropped, Blocks: c.blockSummaries()}
}
