package polygon

import (
	"errors"
	"fmt"

	"github.com/1F47E/go-inside-polygon/pkg/models"
)

// Contract violations reported by the batch entry points
var (
	ErrNilBuffer      = errors.New("nil buffer")
	ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")
	ErrVertexBuffer   = errors.New("vertex buffer length mismatch")
	ErrPointBuffer    = errors.New("point buffer length mismatch")
	ErrOutputBuffer   = errors.New("output buffer length mismatch")
	ErrBorderRange    = errors.New("border value outside byte range")
)

// PolygonFromFlat pairs an interleaved x,y buffer into nVertices points
func PolygonFromFlat(vertices []float64, nVertices int) (models.Polygon, error) {
	if vertices == nil {
		return nil, fmt.Errorf("vertices: %w", ErrNilBuffer)
	}
	if nVertices < 3 {
		return nil, fmt.Errorf("got %d: %w", nVertices, ErrTooFewVertices)
	}
	if len(vertices) != 2*nVertices {
		return nil, fmt.Errorf("want %d values for %d vertices, got %d: %w",
			2*nVertices, nVertices, len(vertices), ErrVertexBuffer)
	}

	poly := make(models.Polygon, nVertices)
	for i := range poly {
		poly[i] = models.Point{X: vertices[2*i], Y: vertices[2*i+1]}
	}
	return poly, nil
}

// PointsInsidePolygon classifies nPoints float64 points stored as
// interleaved x,y pairs and writes one byte per point into output.
func PointsInsidePolygon(vertices []float64, nVertices int, points []float64, nPoints int, borderValue int, output []byte) error {
	return pointsInsidePolygon(vertices, nVertices, points, nPoints, borderValue, output)
}

// PointsInsidePolygonF is PointsInsidePolygon for float32 points
func PointsInsidePolygonF(vertices []float64, nVertices int, points []float32, nPoints int, borderValue int, output []byte) error {
	return pointsInsidePolygon(vertices, nVertices, points, nPoints, borderValue, output)
}

// PointsInsidePolygonInt is PointsInsidePolygon for int32 points
func PointsInsidePolygonInt(vertices []float64, nVertices int, points []int32, nPoints int, borderValue int, output []byte) error {
	return pointsInsidePolygon(vertices, nVertices, points, nPoints, borderValue, output)
}

// pointsInsidePolygon validates every buffer up front; the loop itself
// cannot fail.
func pointsInsidePolygon[T Scalar](vertices []float64, nVertices int, points []T, nPoints int, borderValue int, output []byte) error {
	poly, err := PolygonFromFlat(vertices, nVertices)
	if err != nil {
		return err
	}
	border, err := BorderByte(borderValue)
	if err != nil {
		return err
	}
	if err := checkPoints(len(points), points == nil, nPoints, output); err != nil {
		return err
	}

	for i := 0; i < nPoints; i++ {
		output[i] = Classify(poly, points[2*i], points[2*i+1], border)
	}
	return nil
}

// BorderByte narrows a border value to a byte, rejecting values that
// would otherwise be truncated.
func BorderByte(borderValue int) (byte, error) {
	if borderValue < 0 || borderValue > 255 {
		return 0, fmt.Errorf("got %d: %w", borderValue, ErrBorderRange)
	}
	return byte(borderValue), nil
}

func checkPoints(nValues int, isNil bool, nPoints int, output []byte) error {
	if nPoints < 0 {
		return fmt.Errorf("negative point count %d: %w", nPoints, ErrPointBuffer)
	}
	if nPoints > 0 && isNil {
		return fmt.Errorf("points: %w", ErrNilBuffer)
	}
	if nPoints > 0 && output == nil {
		return fmt.Errorf("output: %w", ErrNilBuffer)
	}
	if nValues != 2*nPoints {
		return fmt.Errorf("want %d values for %d points, got %d: %w",
			2*nPoints, nPoints, nValues, ErrPointBuffer)
	}
	if len(output) != nPoints {
		return fmt.Errorf("want %d bytes, got %d: %w", nPoints, len(output), ErrOutputBuffer)
	}
	return nil
}
