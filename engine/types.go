package engine

import (
	"github.com/cityfab/cityfab/blockfinder"
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/massing"
	"github.com/cityfab/cityfab/parcel"
	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
)

// RoadSegment is one wire-ready road edge (§6 encode.go stride 6).
type RoadSegment struct {
	Start, End geom.Vec2
	Width      float64
	Class      roadgraph.RoadClass
}

// IntersectionSummary is one wire-ready intersection (§6).
type IntersectionSummary struct {
	ID       welder.IntersectionID
	Pos      geom.Vec2
	Type     welder.IntersectionType
	Radius   float64
	Segments int
}

// BlockSummary is one wire-ready block header (§6 encode.go stride 4).
type BlockSummary struct {
	ID          blockfinder.BlockID
	Area        float64
	Perimeter   float64
	ParcelCount int
}

// BuildingRecord is a generated building held by Context, keyed by its
// own id.
type BuildingRecord struct {
	ID      int
	Massing *massing.BuildingMassing
	Mesh    massing.Mesh
	LOD     massing.LOD
}

// --- Requests (§6, replacing the originating union-message payload with
// a tagged variant per one concrete struct per request kind; §9) ---

type BootRequest struct {
	Seed uint32
	Era  massing.Era
}

type ShuffleSeedRequest struct{ Seed uint32 }

type SetEraRequest struct{ Era massing.Era }

type PaintRoadRequest struct {
	Start, End geom.Vec2
	Class      roadgraph.RoadClass
}

type GetRoadsRequest struct{}

type PaintZoneRequest struct {
	Polygon  geom.Polygon
	ZoneType parcel.ZoneType
	Density  parcel.Density
	Method   parcel.Method
}

type GetParcelsRequest struct{}

type GetBlocksRequest struct{}

type ClearZonesRequest struct{}

type GenerateBuildingForZoneRequest struct {
	ZoneID   int
	Position geom.Vec2
	Level    int
	Event    string
}

type GenerateBuildingsRequest struct{ LOD massing.LOD }

type GetBuildingMeshRequest struct {
	BuildingID int
	LOD        massing.LOD
}

type SetBuildingLODRequest struct{ LOD massing.LOD }

type RegenerateWithZoneRequest struct {
	Zone PaintZoneRequest
	LOD  massing.LOD
}

// --- Replies ---

type RoadsGeneratedReply struct {
	Segments      []RoadSegment
	Intersections []IntersectionSummary
}

type RoadPaintedReply struct {
	Success       bool
	Reason        Reason
	Segments      []roadgraph.EdgeID
	Intersections []welder.IntersectionID
}

type ZonePaintedReply struct {
	AffectedParcels []int
	Parcels         []*parcel.Parcel
	Blocks          []BlockSummary
}

type ParcelsReply struct{ Parcels []*parcel.Parcel }

type BlocksReply struct{ Blocks []BlockSummary }

type ClearZonesReply struct {
	ParcelsDropped   int
	BuildingsDropped int
	Blocks           []BlockSummary
}

type BuildingSpawnedReply struct {
	Success  bool
	Reason   Reason
	ParcelID int
	Building *massing.BuildingMassing
	Mesh     massing.Mesh
	LOD      massing.LOD
}

type BuildingsGeneratedReply struct {
	Emitted int
	Dropped int
	Records []*BuildingRecord
}

type BuildingMeshReply struct {
	Success bool
	Reason  Reason
	Mesh    massing.Mesh
	LOD     massing.LOD
}

type SetBuildingLODReply struct{ LOD massing.LOD }
