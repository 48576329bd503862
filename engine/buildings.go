package engine

import (
	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/massing"
	"github.com/cityfab/cityfab/parcel"
)

const nearestParcelSearchRadius = 100.0
const centroidMatchRadius = 5.0

// locateParcel implements the `generate-building-for-zone` lookup chain
// (§6): point-in-polygon first, then a close centroid match, then the
// nearest parcel within search radius. Returns nil if nothing qualifies
// (the caller reports IndexMiss).
func (c *Context) locateParcel(pos geom.Vec2) *parcel.Parcel {
	all := c.Parcel.All()

	for _, p := range all {
		if geom.PointInPolygon(pos, p.Polygon) {
			return p
		}
	}

	var bestCentroid *parcel.Parcel
	bestCentroidDist := centroidMatchRadius
	for _, p := range all {
		if d := pos.Dist(p.Centroid); d <= bestCentroidDist {
			bestCentroidDist = d
			bestCentroid = p
		}
	}
	if bestCentroid != nil {
		return bestCentroid
	}

	var nearest *parcel.Parcel
	nearestDist := nearestParcelSearchRadius
	for _, p := range all {
		if d := pos.Dist(p.Centroid); d <= nearestDist {
			nearestDist = d
			nearest = p
		}
	}
	return nearest
}

// GenerateBuildingForZone implements the `generate-building-for-zone`
// request (§6, §8 scenario 5).
func (c *Context) GenerateBuildingForZone(req GenerateBuildingForZoneRequest) BuildingSpawnedReply {
	p := c.locateParcel(req.Position)
	if p == nil {
		return BuildingSpawnedReply{Success: false, Reason: ReasonIndexMiss}
	}

	lod := c.DefaultLOD
	m, mesh, err := massing.GenerateForParcel(c.nextBuildingID, p, c.Era, req.Level, lod)
	if err != nil {
		return BuildingSpawnedReply{Success: false, Reason: ReasonDegenerateGeometry, ParcelID: p.ID}
	}

	id := c.nextBuildingID
	c.nextBuildingID++
	c.buildings[id] = &BuildingRecord{ID: id, Massing: m, Mesh: mesh, LOD: lod}

	c.Log.Info().Int("buildingId", id).Int("parcelId", p.ID).Str("event", req.Event).Msg("building spawned")
	return BuildingSpawnedReply{Success: true, ParcelID: p.ID, Building: m, Mesh: mesh, LOD: lod}
}

// GenerateBuildings implements the `generate-buildings` bulk request:
// one building per parcel currently in the store, tracking emitted and
// dropped counts rather than aborting on the first failure (§7).
func (c *Context) GenerateBuildings(req GenerateBuildingsRequest) BuildingsGeneratedReply {
	all := c.Parcel.All()
	records := make([]*BuildingRecord, 0, len(all))
	dropped := 0

	for _, p := range all {
		m, mesh, err := massing.GenerateForParcel(c.nextBuildingID, p, c.Era, 1, req.LOD)
		if err != nil {
			dropped++
			continue
		}
		id := c.nextBuildingID
		c.nextBuildingID++
		rec := &BuildingRecord{ID: id, Massing: m, Mesh: mesh, LOD: req.LOD}
		c.buildings[id] = rec
		records = append(records, rec)
	}

	c.Log.Info().Int("emitted", len(records)).Int("dropped", dropped).Msg("bulk building generation complete")
	return BuildingsGeneratedReply{Emitted: len(records), Dropped: dropped, Records: records}
}

// GetBuildingMesh implements the `get-building-mesh` request: re-emits
// a building's mesh at an arbitrary LOD without re-rolling any of its
// style/height choices.
func (c *Context) GetBuildingMesh(req GetBuildingMeshRequest) BuildingMeshReply {
	rec, ok := c.buildings[req.BuildingID]
	if !ok {
		return BuildingMeshReply{Success: false, Reason: ReasonIndexMiss}
	}
	mesh := massing.BuildMesh(rec.Massing, req.LOD)
	rec.Mesh = mesh
	rec.LOD = req.LOD
	return BuildingMeshReply{Success: true, Mesh: mesh, LOD: req.LOD}
}

// SetBuildingLOD implements the `set-building-lod` request: changes the
// default LOD for subsequently generated buildings and re-triangulates
// every existing building at the new LOD.
func (c *Context) SetBuildingLOD(req SetBuildingLODRequest) SetBuildingLODReply {
	c.DefaultLOD = req.LOD
	for _, rec := range c.buildings {
		rec.Mesh = massing.BuildMesh(rec.Massing, req.LOD)
		rec.LOD = req.LOD
	}
	return SetBuildingLODReply{LOD: req.LOD}
}

// RegenerateWithZone implements the `regenerate-with-zone` request: a
// paint-zone followed by bulk building generation at the given LOD, as
// one atomic reply pair.
func (c *Context) RegenerateWithZone(req RegenerateWithZoneRequest) (ZonePaintedReply, BuildingsGeneratedReply) {
	zoneReply := c.PaintZone(req.Zone)
	buildReply := c.GenerateBuildings(GenerateBuildingsRequest{LOD: req.LOD})
	return zoneReply, buildReply
}
