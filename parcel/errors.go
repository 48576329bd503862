package parcel

import "errors"

// ErrEmptyPaintPolygon is returned by PaintZone when the requested paint
// polygon has fewer than 3 vertices.
var ErrEmptyPaintPolygon = errors.New("parcel: paint polygon has fewer than 3 vertices")
