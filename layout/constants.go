package layout

import "math"

// Stage name constants, used to prefix errors with generator context
// (mirrors the teacher's MethodCycle/MethodGrid-style method constants).
const (
	StageCenters       = "Centers"
	StageHighways      = "Highways"
	StageRadialRoads   = "RadialRoads"
	StageAdaptiveGrid  = "AdaptiveGrid"
	StageLocalInfill   = "LocalInfill"
	StageConnectivity  = "ConnectivityRepair"
	StageIntersections = "IntersectionOptimization"
	StageEraEvolution  = "EraEvolution"
)

// Fixed generation parameters named in §4.5 and the Glossary.
const (
	// MinRoadSeparation is the minimum distance a newly generated grid or
	// infill edge endpoint must keep from any existing node.
	MinRoadSeparation = 20.0

	// IntersectionMergeDist is the distance below which two intersection
	// nodes are merged during intersection optimization.
	IntersectionMergeDist = 10.0

	// MinCenters and MaxCenters bound how many seed centers are placed per
	// era (§4.5: "1 to 3 per era").
	MinCenters = 1
	MaxCenters = 3

	// CenterMarginFrac insets the Poisson-disk placement region by this
	// fraction of each dimension.
	CenterMarginFrac = 0.15

	// MaxPoissonAttemptsPerCenter bounds rejection-sampling retries.
	MaxPoissonAttemptsPerCenter = 30

	// RingNodeCount is the node count of the ring generated between the
	// first two centers.
	RingNodeCount = 16
	// RingBaseRadius and RingRadiusJitter parameterize the ring's radius:
	// radius = RingBaseRadius + U[0,RingRadiusJitterRange] perturbed by
	// up to RingPerturb meters per node.
	RingBaseRadius      = 200.0
	RingRadiusJitterRange = 100.0
	RingPerturb         = 30.0

	// HighwaySegmentSpacing approximates the target length of one
	// highway polyline segment; segment count ~= dist/HighwaySegmentSpacing.
	HighwaySegmentSpacing = 150.0
	// HighwayOffsetAmplitude is the amplitude of the perpendicular
	// sinusoidal offset applied to highway polylines.
	HighwayOffsetAmplitude = 15.0

	// RadialJitter bounds the per-ray angular jitter (radians).
	RadialJitter = 0.2

	// AvenueDistance and StreetDistance are the radial-road distance
	// breakpoints at which class degrades (§4.5).
	AvenueDistance = 100.0
	StreetDistance = 300.0

	// LocalInfillScanStep is the scan grid step for the local-infill pass.
	LocalInfillScanStep = 50.0
	// LocalInfillNeighborFactor scales BlockMaxDim to the radius within
	// which a scan position is considered already served.
	LocalInfillNeighborFactor = 1.5

	// BaseRayLength is the nominal radial-road length before the
	// centrality-factor scaling described in §4.5.
	BaseRayLength = 600.0
	// RayStepLength is the sub-segment length used to walk a ray so its
	// class can degrade with cumulative distance from the center.
	RayStepLength = 50.0
	// CentralityMin and CentralityMax bound the centrality factor applied
	// to ray length based on a center's distance from the map center.
	CentralityMin = 0.4
	CentralityMax = 1.5

	// GoldenAngle is the golden-angle increment (radians) used to space
	// radial rays for even angular coverage.
	GoldenAngle = 2.399963229728653

	// ConnectivityMaxFraction bounds how far (as a fraction of the
	// planning area's width) a connectivity-repair edge may reach.
	ConnectivityMaxFraction = 0.25

	// IntersectionOptimizationPasses is the fixed pass count for the
	// intersection-optimization stage (§4.5: "bounded to one pass").
	IntersectionOptimizationPasses = 1
	// IntersectionJitter is the displacement applied to an intersection
	// whose incident angles fall below MinAngle.
	IntersectionJitter = 5.0

	// preWidthScaleEra and postWidthScaleEra bound the width scaling
	// described in §4.5's era-evolution rule.
	preWidthScaleEra  = 1920
	postWidthScaleEra = 1960
	preWidthScale     = 0.8
	postWidthScale    = 1.1

	// StreetUpgradeFraction is the fraction of streets promoted to
	// avenues for eras after 1950.
	StreetUpgradeFraction = 0.2
	streetUpgradeEra      = 1950
)

// BlockMinDim and BlockMaxDim are the linear dimensions (meters) implied
// by MIN_BLOCK_AREA (100 m²) and MAX_BLOCK_AREA (50 000 m²) from the
// Glossary — block_min/block_max as used by §4.5's adaptive-grid and
// local-infill spacing rules. blockfinder.MinBlockArea and
// blockfinder.MaxBlockArea hold the authoritative area values; these are
// their square roots, kept local so that layout does not import
// blockfinder.
var (
	BlockMinDim = math.Sqrt(100.0)
	BlockMaxDim = math.Sqrt(50000.0)
)
