package layout

import (
	"testing"

	"github.com/cityfab/cityfab/roadgraph"
	"github.com/cityfab/cityfab/welder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesNonEmptyGraph(t *testing.T) {
	g := roadgraph.New()
	w := welder.New(g)

	m, err := Generate(g, w, 3000, 3000, Era(1975), WithSeed(1234))
	require.NoError(t, err)
	assert.Greater(t, m.NodesAfter, 0)
	assert.Greater(t, m.EdgesAfter, 0)
	assert.GreaterOrEqual(t, m.Centers, MinCenters)
}

func TestGenerateRejectsMissingRNG(t *testing.T) {
	g := roadgraph.New()
	w := welder.New(g)
	_, err := Generate(g, w, 1000, 1000, Era(2000))
	assert.ErrorIs(t, err, ErrNeedRandSource)
}

func TestGenerateRejectsInvalidArea(t *testing.T) {
	g := roadgraph.New()
	w := welder.New(g)
	_, err := Generate(g, w, 0, 1000, Era(2000), WithSeed(1))
	assert.ErrorIs(t, err, ErrInvalidPlanningArea)
}

func TestGenerateDeterministicForSameSeed(t *testing.T) {
	g1 := roadgraph.New()
	w1 := welder.New(g1)
	g2 := roadgraph.New()
	w2 := welder.New(g2)

	m1, err1 := Generate(g1, w1, 2000, 2000, Era(1940), WithSeed(99))
	m2, err2 := Generate(g2, w2, 2000, 2000, Era(1940), WithSeed(99))
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, m1.NodesAfter, m2.NodesAfter)
	assert.Equal(t, m1.EdgesAfter, m2.EdgesAfter)
}
