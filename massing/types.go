package massing

import (
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/parcel"
)

// Style classifies a building's architectural vocabulary.
type Style int

// Styles and their §6 wire codings.
const (
	StyleVictorian Style = iota
	StyleArtDeco
	StyleModern
	StyleBrutalist
	StylePostmodern
	StyleContemporary
	StyleFuturistic
)

// Code returns the fixed integer coding from §6 for serialization.
func (s Style) Code() int32 { return int32(s) }

// String implements fmt.Stringer for diagnostics and CLI output.
func (s Style) String() string {
	switch s {
	case StyleVictorian:
		return "victorian"
	case StyleArtDeco:
		return "art-deco"
	case StyleModern:
		return "modern"
	case StyleBrutalist:
		return "brutalist"
	case StylePostmodern:
		return "postmodern"
	case StyleContemporary:
		return "contemporary"
	case StyleFuturistic:
		return "futuristic"
	default:
		return "unknown"
	}
}

// RoofType classifies a building's roof geometry.
type RoofType int

// Roof types and their §6 wire codings.
const (
	RoofFlat RoofType = iota
	RoofGable
	RoofHip
	RoofMansard
	RoofPyramid
	RoofBarrel
	RoofSawtooth
	RoofGreen
)

// Code returns the fixed integer coding from §6 for serialization.
func (r RoofType) Code() int32 { return int32(r) }

// String implements fmt.Stringer for diagnostics and CLI output.
func (r RoofType) String() string {
	switch r {
	case RoofFlat:
		return "flat"
	case RoofGable:
		return "gable"
	case RoofHip:
		return "hip"
	case RoofMansard:
		return "mansard"
	case RoofPyramid:
		return "pyramid"
	case RoofBarrel:
		return "barrel"
	case RoofSawtooth:
		return "sawtooth"
	case RoofGreen:
		return "green"
	default:
		return "unknown"
	}
}

// LOD is a level of detail for mesh emission (§6 Glossary).
type LOD int

const (
	LODFull    LOD = 0
	LODMid     LOD = 1
	LODBoxOnly LOD = 2
)

// BuildingMassing is the generated volume for one parcel (§3).
type BuildingMassing struct {
	ID         int
	ParcelID   int
	Footprint  geom.Polygon
	TotalH     float64
	BaseH      float64
	BodyH      float64
	RoofH      float64
	FloorCount int
	Style      Style
	Roof       RoofType
	Seed       uint32
	ZoneType   parcel.ZoneType
	Density    parcel.Density
	Level      int
}

// setbackRange returns the [lo, hi) setback range, in meters, for a
// density tier (§4.8 step 1).
func setbackRange(d parcel.Density) (lo, hi float64) {
	switch d {
	case parcel.DensityMedium:
		return 2, 4
	case parcel.DensityHigh:
		return 1, 2
	default: // low
		return 4, 6
	}
}

// heightRange returns the [lo, hi) height range, in meters, for a
// density tier (§4.8 step 3), before level/zone scaling.
func heightRange(d parcel.Density) (lo, hi float64) {
	switch d {
	case parcel.DensityMedium:
		return 9, 15
	case parcel.DensityHigh:
		return 18, 60
	default: // low
		return 3, 6
	}
}

// baseRoofRatio returns the (base%, roof%) of total height for a style,
// before jitter and clamping (§4.8 step 5).
func baseRoofRatio(s Style) (basePct, roofPct float64) {
	switch s {
	case StyleVictorian:
		return 0.15, 0.20
	case StyleArtDeco:
		return 0.20, 0.15
	case StyleModern, StyleContemporary:
		return 0.10, 0.05
	case StyleBrutalist:
		return 0.08, 0.03
	case StylePostmodern:
		return 0.12, 0.10
	case StyleFuturistic:
		return 0.05, 0.08
	default:
		return 0.10, 0.10
	}
}

const (
	baseRatioMin, baseRatioMax = 0.05, 0.25
	roofRatioMin, roofRatioMax = 0.03, 0.25
	ratioJitter                = 0.05
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
