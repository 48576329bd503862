package engine

// Wire encoding (§6): typed float32/uint32 arrays, the same flat-table
// discipline roadgraph and massing.Mesh already use internally, applied
// at the engine boundary so a caller never needs to walk pointer graphs
// to read a reply.

// separatorValue marks the boundary between one parcel's vertex list
// and the next in EncodeParcelVertices.
const separatorValue = -999999

// EncodeRoadSegments packs segments into a stride-6 float32 array:
// (startX, startY, endX, endY, width, classCode).
func EncodeRoadSegments(segments []RoadSegment) []float32 {
	out := make([]float32, 0, len(segments)*6)
	for _, s := range segments {
		out = append(out,
			float32(s.Start.X), float32(s.Start.Y),
			float32(s.End.X), float32(s.End.Y),
			float32(s.Width), float32(s.Class.Code()),
		)
	}
	return out
}

// EncodeBlockHeaders packs block summaries into a stride-4 float32
// array: (id, area, perimeter, parcelCount).
func EncodeBlockHeaders(blocks []BlockSummary) []float32 {
	out := make([]float32, 0, len(blocks)*4)
	for _, b := range blocks {
		out = append(out, float32(b.ID), float32(b.Area), float32(b.Perimeter), float32(b.ParcelCount))
	}
	return out
}

// ParcelWire is the parcel-encoding request and return pair. EncodeParcels
// reconstructs the wire header/vertex streams in one pass over a
// []*parcel.Parcel-shaped reply, kept in engine rather than parcel so the
// stride layout (an engine/wire concern) doesn't leak into the parcel
// package's own API.
type ParcelWire struct {
	Headers  []float32
	Vertices []float32
}

// EncodeParcels packs a ParcelsReply into the §6 parcel wire format:
// a stride-9 header array (id, zoneTypeCode, densityCode, area,
// frontage, cornerFlag, centroidX, centroidY, blockId) and a stride-2
// vertex array with a (-999999,-999999) separator between parcels.
func EncodeParcels(reply ParcelsReply) ParcelWire {
	headers := make([]float32, 0, len(reply.Parcels)*9)
	vertices := make([]float32, 0)

	for i, p := range reply.Parcels {
		cornerFlag := float32(0)
		if p.IsCorner {
			cornerFlag = 1
		}
		headers = append(headers,
			float32(p.ID), float32(p.ZoneType.Code()), float32(p.Density.Code()),
			float32(p.Area), float32(p.Frontage), cornerFlag,
			float32(p.Centroid.X), float32(p.Centroid.Y), float32(p.BlockID),
		)

		for _, v := range p.Polygon {
			vertices = append(vertices, float32(v.X), float32(v.Y))
		}
		if i != len(reply.Parcels)-1 {
			vertices = append(vertices, separatorValue, separatorValue)
		}
	}

	return ParcelWire{Headers: headers, Vertices: vertices}
}
