package roadgraph

import "errors"

// Sentinel errors for roadgraph operations. Callers branch with
// errors.Is; messages are never matched by string (per the teacher's
// builder/errors.go policy).
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("roadgraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("roadgraph: edge not found")

	// ErrAngleTooAcute indicates AddEdge was rejected by the MinAngle
	// invariant (§3, §7 AngleTooAcute).
	ErrAngleTooAcute = errors.New("roadgraph: angle too acute")

	// ErrSameNode indicates AddEdge was called with identical endpoints.
	ErrSameNode = errors.New("roadgraph: edge endpoints are identical")

	// ErrDegenerateGeometry indicates a zero-length edge was requested.
	ErrDegenerateGeometry = errors.New("roadgraph: degenerate (zero-length) edge")
)
