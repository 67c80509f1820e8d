package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarPolygon(t *testing.T) {
	poly := starPolygon(rand.New(rand.NewSource(1)), 16)
	assert.Len(t, poly, 16)
	for _, v := range poly {
		assert.InDelta(t, 0.5, v.X, 0.45+1e-9)
		assert.InDelta(t, 0.5, v.Y, 0.45+1e-9)
	}
	assert.Len(t, starPolygon(rand.New(rand.NewSource(1)), 1), 3)
}

func TestGenerateRandomPoints(t *testing.T) {
	points := generateRandomPoints(1001, 4, 7)
	assert.Len(t, points, 1001)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.X, -0.25)
		assert.Less(t, p.X, 1.25)
	}
}

func TestBenchmarkModesAgree(t *testing.T) {
	poly := starPolygon(rand.New(rand.NewSource(2)), 12)
	points := generateRandomPoints(5000, 3, 2)

	var inside []int
	for _, mode := range []string{"sequential", "parallel", "bounds"} {
		result, err := benchmark(mode, poly, points, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, mode, result.Mode)
		assert.Equal(t, 2, result.Runs)
		inside = append(inside, result.Inside)
	}
	assert.Equal(t, inside[0], inside[1])
	assert.Equal(t, inside[0], inside[2])
	assert.Greater(t, inside[0], 0)
}
