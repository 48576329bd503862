package welder

import "errors"

// ErrIntersectionNotFound is returned by lookups against a stale or
// unknown IntersectionID.
var ErrIntersectionNotFound = errors.New("welder: intersection not found")
