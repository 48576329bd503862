package roadgraph

import "github.com/cityfab/cityfab/geom"

// Named invariants from §9/Glossary. Exposed as constants (not buried
// literals) so callers can see them; Graph's behavior can be tuned via
// GraphOption at construction (see graph.go) rather than by editing these.
const (
	// MinAngle is the minimum allowed angle, in radians, between any two
	// edges incident to a common node (30 degrees).
	MinAngle = 30 * (3.141592653589793 / 180)

	// SnapThreshold is the distance, in meters, within which a new node
	// request is merged into an existing node (15 m).
	SnapThreshold = 15.0
)

// RoadClass classifies a road edge's function and nominal width.
type RoadClass int

// Road classes and their nominal widths in meters (§3).
const (
	ClassHighway RoadClass = iota
	ClassAvenue
	ClassStreet
	ClassLocal
)

// NominalWidth returns the fixed nominal width, in meters, for c.
func (c RoadClass) NominalWidth() float64 {
	switch c {
	case ClassHighway:
		return 24
	case ClassAvenue:
		return 16
	case ClassStreet:
		return 12
	case ClassLocal:
		return 8
	default:
		return 8
	}
}

// String implements fmt.Stringer for diagnostics and CLI output.
func (c RoadClass) String() string {
	switch c {
	case ClassHighway:
		return "highway"
	case ClassAvenue:
		return "avenue"
	case ClassStreet:
		return "street"
	case ClassLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Code returns the fixed integer coding from §6 for serialization.
func (c RoadClass) Code() int32 { return int32(c) }

// RoadMaterial classifies a road edge's surface material.
type RoadMaterial int

// Road materials (§3), derived from era x class by the layout package.
const (
	MaterialDirt RoadMaterial = iota
	MaterialCobblestone
	MaterialAsphalt
	MaterialConcrete
)

// String implements fmt.Stringer for diagnostics and CLI output.
func (m RoadMaterial) String() string {
	switch m {
	case MaterialDirt:
		return "dirt"
	case MaterialCobblestone:
		return "cobblestone"
	case MaterialAsphalt:
		return "asphalt"
	case MaterialConcrete:
		return "concrete"
	default:
		return "unknown"
	}
}

// Code returns the fixed integer coding from §6 for serialization.
func (m RoadMaterial) Code() int32 { return int32(m) }

// NodeID and EdgeID are stable integer identifiers into Graph's flat
// tables. Neither is ever reused after deletion within the lifetime of a
// Graph (nextNodeID/nextEdgeID only increase), so a stale id is always
// detectable as "not found" rather than silently aliasing a new node.
type NodeID int

// EdgeID is described with NodeID above.
type EdgeID int

// RoadNode is a node in the road graph (§3): a position plus the set of
// edges incident to it. IsIntersection is derived (recomputed by Graph on
// every incidence change), never set directly by callers.
type RoadNode struct {
	ID             NodeID
	Pos            geom.Vec2
	Incident       []EdgeID
	IsIntersection bool
}

// RoadEdge is an edge in the road graph (§3): two distinct endpoints, a
// class/material/width, and a cached length.
type RoadEdge struct {
	ID       EdgeID
	A, B     NodeID
	Class    RoadClass
	Material RoadMaterial
	Width    float64
	Length   float64
}

// RejectReason enumerates the structured rejections addEdge can return,
// per §7's error taxonomy.
type RejectReason int

// Rejection reasons for AddEdge.
const (
	RejectNone RejectReason = iota
	RejectSameNode
	RejectAngleTooAcute
	RejectDegenerateGeometry
)

// String implements fmt.Stringer for diagnostics and CLI output.
func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectSameNode:
		return "same-node"
	case RejectAngleTooAcute:
		return "AngleTooAcute"
	case RejectDegenerateGeometry:
		return "DegenerateGeometry"
	default:
		return "unknown"
	}
}
