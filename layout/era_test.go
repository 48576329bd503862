package layout

import (
	"testing"

	"github.com/cityfab/cityfab/roadgraph"
	"github.com/stretchr/testify/assert"
)

func TestMaterialForEraRules(t *testing.T) {
	assert.Equal(t, roadgraph.MaterialDirt, Era(1850).materialFor(roadgraph.ClassHighway))
	assert.Equal(t, roadgraph.MaterialCobblestone, Era(1920).materialFor(roadgraph.ClassAvenue))
	assert.Equal(t, roadgraph.MaterialDirt, Era(1920).materialFor(roadgraph.ClassLocal))
	assert.Equal(t, roadgraph.MaterialCobblestone, Era(1945).materialFor(roadgraph.ClassStreet))
	assert.Equal(t, roadgraph.MaterialAsphalt, Era(1970).materialFor(roadgraph.ClassStreet))
	assert.Equal(t, roadgraph.MaterialCobblestone, Era(1970).materialFor(roadgraph.ClassLocal))
	assert.Equal(t, roadgraph.MaterialConcrete, Era(2020).materialFor(roadgraph.ClassHighway))
	assert.Equal(t, roadgraph.MaterialAsphalt, Era(2020).materialFor(roadgraph.ClassAvenue))
}

func TestWidthScaleByEra(t *testing.T) {
	assert.Equal(t, preWidthScale, Era(1900).widthScale())
	assert.Equal(t, 1.0, Era(1940).widthScale())
	assert.Equal(t, postWidthScale, Era(1980).widthScale())
}

func TestUpgradesStreetsOnlyPost1950(t *testing.T) {
	assert.False(t, Era(1950).upgradesStreets())
	assert.True(t, Era(1951).upgradesStreets())
}

func TestClassForDistanceDegrades(t *testing.T) {
	assert.Equal(t, roadgraph.ClassAvenue, classForDistance(50))
	assert.Equal(t, roadgraph.ClassStreet, classForDistance(150))
	assert.Equal(t, roadgraph.ClassLocal, classForDistance(500))
}
