package parcel

import (
	"github.com/cityfab/cityfab/blockfinder"
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
)

// MinParcelArea is the minimum enclosed area, in square meters, a
// subdivided parcel must have to survive (Glossary: MIN_PARCEL_AREA).
const MinParcelArea = 50.0

// FrontageTolerance and FrontageCosine bound how close and how parallel
// a parcel edge must be to a block edge to count as frontage (§4.7).
const (
	FrontageTolerance = 2.0
	FrontageCosine    = 0.95
)

// ZoneType classifies what a parcel may be built on.
type ZoneType int

// Zone types and their §6 wire codings.
const (
	ZoneResidential ZoneType = iota
	ZoneCommercial
	ZoneIndustrial
	ZoneNone
)

// Code returns the fixed integer coding from §6 for serialization.
func (z ZoneType) Code() int32 { return int32(z) }

// String implements fmt.Stringer for diagnostics and CLI output.
func (z ZoneType) String() string {
	switch z {
	case ZoneResidential:
		return "residential"
	case ZoneCommercial:
		return "commercial"
	case ZoneIndustrial:
		return "industrial"
	case ZoneNone:
		return "none"
	default:
		return "unknown"
	}
}

// Density classifies a parcel's development intensity.
type Density int

// Density tiers and their §6 wire codings.
const (
	DensityLow Density = iota
	DensityMedium
	DensityHigh
)

// Code returns the fixed integer coding from §6 for serialization.
func (d Density) Code() int32 { return int32(d) }

// String implements fmt.Stringer for diagnostics and CLI output.
func (d Density) String() string {
	switch d {
	case DensityLow:
		return "low"
	case DensityMedium:
		return "medium"
	case DensityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Method selects a subdivision strategy for paintZone (§4.7).
type Method int

// Subdivision methods.
const (
	MethodSkeleton Method = iota
	MethodVoronoi
)

// String implements fmt.Stringer for diagnostics and CLI output.
func (m Method) String() string {
	switch m {
	case MethodSkeleton:
		return "skeleton"
	case MethodVoronoi:
		return "voronoi"
	default:
		return "unknown"
	}
}

// NoFrontageEdge is the sentinel frontageEdge value for a parcel whose
// frontage could not be matched to a specific road edge (§4.7).
const NoFrontageEdge = roadgraph.EdgeID(-1)

// Parcel is a subdivided, zoned land unit within a block (§3).
type Parcel struct {
	ID           int
	BlockID      blockfinder.BlockID
	Polygon      geom.Polygon
	ZoneType     ZoneType
	Density      Density
	Area         float64
	Frontage     float64
	FrontageEdge roadgraph.EdgeID
	IsCorner     bool
	Centroid     geom.Vec2
}

// widthRange returns the zone type's (min, max) parcel width, in meters.
// These bands are not given numerically by the originating specification
// (an Open Question; see DESIGN.md) and are chosen to match typical
// municipal lot-width conventions for each zone's built form.
func widthRange(z ZoneType) (min, max float64) {
	switch z {
	case ZoneCommercial:
		return 20, 40
	case ZoneIndustrial:
		return 30, 60
	default: // residential, none
		return 15, 25
	}
}

// widthMultiplier is the density multiplier applied to a zone's mean
// width to get a target parcel width (§4.7).
func widthMultiplier(d Density) float64 {
	switch d {
	case DensityMedium:
		return 0.85
	case DensityHigh:
		return 0.7
	default: // low
		return 1.0
	}
}

// depthMultiplier is the density multiplier applied to target width to
// get a target parcel depth (§4.7).
func depthMultiplier(d Density) float64 {
	switch d {
	case DensityMedium:
		return 1.5
	case DensityHigh:
		return 1.0
	default: // low
		return 2.0
	}
}

func meanWidth(z ZoneType) float64 {
	lo, hi := widthRange(z)
	return (lo + hi) / 2
}

func targetWidth(z ZoneType, d Density) float64 {
	return meanWidth(z) * widthMultiplier(d)
}

func targetDepth(z ZoneType, d Density) float64 {
	return targetWidth(z, d) * depthMultiplier(d)
}
