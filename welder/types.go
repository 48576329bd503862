package welder

import (
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/roadgraph"
)

// INTERSECTION_EPS and derived policy constants (§4.4, Glossary).
const (
	// IntersectionEPS is the distance tolerance, in meters, used to decide
	// whether a candidate crossing is strictly interior to a segment, and
	// whether a node counts as "connected" to an intersection point.
	IntersectionEPS = 2.0
)

// IntersectionType classifies an Intersection by its incident-segment
// count (§3, §4.4 step 5).
type IntersectionType int

// Intersection types, keyed by incident segment count.
const (
	TypeEnd IntersectionType = iota
	TypeT
	TypeCross
	TypeComplex
)

// String implements fmt.Stringer.
func (t IntersectionType) String() string {
	switch t {
	case TypeEnd:
		return "end"
	case TypeT:
		return "T"
	case TypeCross:
		return "cross"
	case TypeComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// classifyByCount maps an incident-segment count to its IntersectionType
// per §3: end(2), T(3), cross(4), complex(>=5).
func classifyByCount(n int) IntersectionType {
	switch {
	case n >= 5:
		return TypeComplex
	case n == 4:
		return TypeCross
	case n == 3:
		return TypeT
	default:
		return TypeEnd
	}
}

// IntersectionID uniquely identifies an Intersection record, stable for
// the record's lifetime. A record is dropped, not re-keyed, when its
// node falls below 2 incident edges or is merged away by
// Welder.MergeNodes.
type IntersectionID int

// Intersection is the welder's view of a welded junction (§3).
type Intersection struct {
	ID        IntersectionID
	Node      roadgraph.NodeID
	Pos       geom.Vec2
	Segments  []roadgraph.EdgeID
	Type      IntersectionType
	Radius    float64
	Orientation float64 // mean incident-segment angle, radians
}

// SubmissionID identifies one top-level AddSegment call.
type SubmissionID int

// Submission records the outcome of one AddSegment call: the resulting
// child edges (after any splitting) and the intersections touched. This
// is the welder's "own segment table with sub-IDs" (§4.4): a submission
// may expand into several roadgraph edges if it crossed existing roads.
type Submission struct {
	ID            SubmissionID
	RequestedA    geom.Vec2
	RequestedB    geom.Vec2
	Success       bool
	Reason        roadgraph.RejectReason
	Segments      []roadgraph.EdgeID
	Intersections []IntersectionID
}
