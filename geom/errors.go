package geom

import "errors"

// ErrDegenerateGeometry is returned by callers elsewhere in cityfab (not
// by this package's functions directly, which signal degeneracy via
// vertex count or ok=false) to classify a polygon that collapsed below 3
// vertices after an offset or clip operation. It lives here so every
// package that detects the condition can compare against the same
// sentinel (§7 error taxonomy: DegenerateGeometry).
var ErrDegenerateGeometry = errors.New("geom: degenerate geometry")
