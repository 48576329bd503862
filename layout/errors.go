package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidPlanningArea indicates a non-positive width or height.
var ErrInvalidPlanningArea = errors.New("layout: planning area must have positive width and height")

// ErrNeedRandSource indicates Generate was called without a seeded RNG.
var ErrNeedRandSource = errors.New("layout: rng is required")

// ErrNilGraph indicates a nil roadgraph.Graph or welder.Welder was passed
// to Generate.
var ErrNilGraph = errors.New("layout: graph/welder must not be nil")

// stageErrorf wraps an inner error with the stage name that produced it,
// preserving the sentinel for errors.Is (mirrors the teacher's
// builderErrorf).
func stageErrorf(stage, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{stage}, args...)...)
}
