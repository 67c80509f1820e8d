package postgis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1F47E/go-inside-polygon/pkg/models"
	"github.com/1F47E/go-inside-polygon/pkg/polygon"
)

var square = models.Polygon{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}

func TestPolygonWKT(t *testing.T) {
	assert.Equal(t, "POLYGON((0 0, 0 10, 10 10, 10 0, 0 0))", PolygonWKT(square))

	closed := append(append(models.Polygon{}, square...), square[0])
	assert.Equal(t, "POLYGON((0 0, 0 10, 10 10, 10 0, 0 0))", PolygonWKT(closed))

	tri := models.Polygon{{X: 0.5, Y: -1.25}, {X: 3, Y: 0}, {X: 1, Y: 2e-7}}
	assert.Equal(t, "POLYGON((0.5 -1.25, 3 0, 1 2e-07, 0.5 -1.25))", PolygonWKT(tri))
}

func TestCompare(t *testing.T) {
	points := []models.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	mismatches := Compare(points, []byte{1, 0, 2}, []byte{1, 1, 2})

	require.Len(t, mismatches, 1)
	assert.Equal(t, 1, mismatches[0].Index)
	assert.Equal(t, points[1], mismatches[0].Point)
	assert.Equal(t, byte(0), mismatches[0].Ours)
	assert.Equal(t, byte(1), mismatches[0].Theirs)

	assert.Empty(t, Compare(points, []byte{1}, []byte{1, 0, 0}))
}

// TestClassifyAgainstPostGIS needs a running PostGIS; set INPOLY_TEST_POSTGIS_DSN to enable it.
func TestClassifyAgainstPostGIS(t *testing.T) {
	dsn := os.Getenv("INPOLY_TEST_POSTGIS_DSN")
	if dsn == "" {
		t.Skip("INPOLY_TEST_POSTGIS_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := NewPostGISClassifier(ctx, dsn, 2)
	require.NoError(t, err)
	defer pg.Close()
	require.NoError(t, pg.InitSchema(ctx))

	// strictly interior and exterior points plus vertices; edge points differ by design
	points := []models.Point{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 0, Y: 0}, {X: 10, Y: 10}, {X: -1, Y: -1}}
	theirs, err := pg.Classify(ctx, square, points, 9)
	require.NoError(t, err)

	ours := make([]byte, len(points))
	for i, p := range points {
		ours[i] = polygon.ClassifyPoint(square, p, 9)
	}
	assert.Empty(t, Compare(points, ours, theirs))
}
