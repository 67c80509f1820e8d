package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1F47E/go-inside-polygon/pkg/models"
)

var squareFlat = []float64{0, 0, 0, 10, 10, 10, 10, 0}

func TestPointsInsidePolygon(t *testing.T) {
	points := []float64{5, 5, 15, 5, 0, 0, 5, 0, 10, 5}
	out := make([]byte, 5)

	err := PointsInsidePolygon(squareFlat, 4, points, 5, int(border), out)
	require.NoError(t, err)
	assert.Equal(t, []byte{models.Inside, models.Outside, border, models.Outside, models.Inside}, out)
}

func TestPointsInsidePolygonTypes(t *testing.T) {
	pointsF64 := []float64{5, 5, 15, 5, 0, 0, 10, 10, 3, 9, -1, 4}
	pointsF32 := []float32{5, 5, 15, 5, 0, 0, 10, 10, 3, 9, -1, 4}
	pointsInt := []int32{5, 5, 15, 5, 0, 0, 10, 10, 3, 9, -1, 4}
	n := len(pointsInt) / 2

	outF64 := make([]byte, n)
	outF32 := make([]byte, n)
	outInt := make([]byte, n)

	require.NoError(t, PointsInsidePolygon(squareFlat, 4, pointsF64, n, 255, outF64))
	require.NoError(t, PointsInsidePolygonF(squareFlat, 4, pointsF32, n, 255, outF32))
	require.NoError(t, PointsInsidePolygonInt(squareFlat, 4, pointsInt, n, 255, outInt))

	assert.Equal(t, outF64, outF32)
	assert.Equal(t, outF64, outInt)
	assert.Equal(t, byte(255), outF64[2])
}

func TestPointsInsidePolygonMatchesSinglePoint(t *testing.T) {
	var flat []float64
	for _, v := range cShape {
		flat = append(flat, v.X, v.Y)
	}

	var points []float64
	for x := -1.0; x <= 11; x += 0.5 {
		for y := -1.0; y <= 11; y += 0.5 {
			points = append(points, x, y)
		}
	}
	n := len(points) / 2
	out := make([]byte, n)

	require.NoError(t, PointsInsidePolygon(flat, len(cShape), points, n, int(border), out))
	for i := 0; i < n; i++ {
		assert.Equal(t, Classify(cShape, points[2*i], points[2*i+1], border), out[i], "point %d", i)
	}
}

func TestPointsInsidePolygonDoesNotMutateInputs(t *testing.T) {
	vertices := append([]float64(nil), squareFlat...)
	points := []float64{1, 2, 3, 4}
	out := make([]byte, 2)

	require.NoError(t, PointsInsidePolygon(vertices, 4, points, 2, 0, out))
	assert.Equal(t, squareFlat, vertices)
	assert.Equal(t, []float64{1, 2, 3, 4}, points)
}

func TestPointsInsidePolygonContract(t *testing.T) {
	testCases := []struct {
		name      string
		vertices  []float64
		nVertices int
		points    []float64
		nPoints   int
		border    int
		output    []byte
		expected  error
	}{
		{"nil vertices", nil, 4, []float64{1, 1}, 1, 0, make([]byte, 1), ErrNilBuffer},
		{"two vertices", []float64{0, 0, 1, 1}, 2, []float64{1, 1}, 1, 0, make([]byte, 1), ErrTooFewVertices},
		{"short vertex buffer", squareFlat[:6], 4, []float64{1, 1}, 1, 0, make([]byte, 1), ErrVertexBuffer},
		{"long vertex buffer", squareFlat, 3, []float64{1, 1}, 1, 0, make([]byte, 1), ErrVertexBuffer},
		{"nil points", squareFlat, 4, nil, 1, 0, make([]byte, 1), ErrNilBuffer},
		{"short point buffer", squareFlat, 4, []float64{1, 1, 2}, 2, 0, make([]byte, 2), ErrPointBuffer},
		{"negative point count", squareFlat, 4, []float64{}, -1, 0, []byte{}, ErrPointBuffer},
		{"nil output", squareFlat, 4, []float64{1, 1}, 1, 0, nil, ErrNilBuffer},
		{"short output", squareFlat, 4, []float64{1, 1, 2, 2}, 2, 0, make([]byte, 1), ErrOutputBuffer},
		{"border too large", squareFlat, 4, []float64{1, 1}, 1, 256, make([]byte, 1), ErrBorderRange},
		{"negative border", squareFlat, 4, []float64{1, 1}, 1, -1, make([]byte, 1), ErrBorderRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := PointsInsidePolygon(tc.vertices, tc.nVertices, tc.points, tc.nPoints, tc.border, tc.output)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestPointsInsidePolygonEmptyBatch(t *testing.T) {
	assert.NoError(t, PointsInsidePolygon(squareFlat, 4, nil, 0, 0, nil))
	assert.NoError(t, PointsInsidePolygonInt(squareFlat, 4, []int32{}, 0, 0, []byte{}))
}

func TestPolygonFromFlat(t *testing.T) {
	poly, err := PolygonFromFlat(squareFlat, 4)
	require.NoError(t, err)
	assert.Equal(t, square, poly)
}
