package layout

import (
	"testing"

	"github.com/cityfab/cityfab/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceCentersRespectsMinSpacing(t *testing.T) {
	cfg := newConfig(WithSeed(42))
	centers := placeCenters(2000, 2000, 3, cfg)
	require.True(t, len(centers) >= 1)
	minSpacing := 2000.0 / float64(3+1)
	for i := 0; i < len(centers); i++ {
		for j := i + 1; j < len(centers); j++ {
			assert.GreaterOrEqual(t, centers[i].Dist(centers[j]), minSpacing-1e-9)
		}
	}
}

func TestPlaceCentersDeterministicForSameSeed(t *testing.T) {
	cfg1 := newConfig(WithRNG(rng.NewMulberry32(7)))
	cfg2 := newConfig(WithRNG(rng.NewMulberry32(7)))
	a := placeCenters(1000, 1000, 2, cfg1)
	b := placeCenters(1000, 1000, 2, cfg2)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}
