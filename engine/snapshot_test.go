package engine

import (
	"testing"

	"github.com/cityfab/cityfab/geom"
	"github.com/cityfab/cityfab/parcel"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestoreReproducesRoadsParcelsAndBuildings(t *testing.T) {
	c := newTestContext()
	polygon := geom.Polygon{
		{X: 100, Y: 100}, {X: 200, Y: 100}, {X: 200, Y: 180}, {X: 100, Y: 180},
	}
	zoneReply := c.PaintZone(PaintZoneRequest{
		Polygon: polygon, ZoneType: parcel.ZoneResidential, Density: parcel.DensityMedium, Method: parcel.MethodSkeleton,
	})
	require.NotEmpty(t, zoneReply.AffectedParcels)

	buildReply := c.GenerateBuildingForZone(GenerateBuildingForZoneRequest{
		Position: zoneReply.Parcels[0].Centroid, Level: 1, Event: "spawn",
	})
	require.True(t, buildReply.Success)

	snap := c.Snapshot()
	restored := Restore(snap)

	beforeRoads := c.GetRoads()
	afterRoads := restored.GetRoads()
	if diff := cmp.Diff(beforeRoads, afterRoads); diff != "" {
		t.Errorf("restored context produced different roads (-before +after):\n%s", diff)
	}

	beforeParcels := c.GetParcels()
	afterParcels := restored.GetParcels()
	if diff := cmp.Diff(beforeParcels, afterParcels); diff != "" {
		t.Errorf("restored context produced different parcels (-before +after):\n%s", diff)
	}

	assert.Equal(t, len(c.buildings), len(restored.buildings))
	assert.Equal(t, c.nextBuildingID, restored.nextBuildingID)
	assert.Equal(t, c.RNG.State(), restored.RNG.State())

	restoredMesh := restored.GetBuildingMesh(GetBuildingMeshRequest{BuildingID: 0, LOD: buildReply.LOD})
	require.True(t, restoredMesh.Success)
	assert.Equal(t, buildReply.Mesh, restoredMesh.Mesh)
}

func TestSnapshotRestoreContinuesSameRNGStream(t *testing.T) {
	c := newTestContext()
	snap := c.Snapshot()
	restored := Restore(snap)

	want := c.RNG.Next()
	got := restored.RNG.Next()
	assert.Equal(t, want, got)
}
