// Package polygon classifies points against a simple polygon using the
// crossing-number (ray casting) rule, with an exact-vertex short circuit
// that reports a caller supplied border value.
package polygon

import (
	"golang.org/x/exp/constraints"

	"github.com/1F47E/go-inside-polygon/pkg/models"
)

// Scalar is the set of coordinate types a query point may be stored in.
// Polygon vertices are always float64.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Classify returns models.Inside or models.Outside for the point (x, y),
// or border when the point equals one of the polygon vertices exactly.
//
// The comparison against vertices is exact: no tolerance is applied.
// Points on an edge but not on a vertex follow the parity rule, so for a
// counter-clockwise square the top and right edges classify as inside and
// the bottom and left edges as outside.
//
// Coordinates are promoted to float64 before any arithmetic. A polygon
// with fewer than three vertices gives an unspecified result.
func Classify[T Scalar](poly models.Polygon, x, y T, border byte) byte {
	n := len(poly)
	if n == 0 {
		return models.Outside
	}

	px, py := float64(x), float64(y)
	crossings := 0

	p1 := poly[0]
	for i := 1; i <= n; i++ {
		if p1.X == px && p1.Y == py {
			return border
		}
		p2 := poly[i%n]

		// Half-open in y: strictly above the lower endpoint, at or below the
		// upper one. Horizontal edges can never satisfy it.
		if py > min(p1.Y, p2.Y) && py <= max(p1.Y, p2.Y) && px <= max(p1.X, p2.X) && p1.Y != p2.Y {
			xinters := (py-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
			if p1.X == p2.X || px <= xinters {
				crossings++
			}
		}
		p1 = p2
	}

	if crossings%2 == 0 {
		return models.Outside
	}
	return models.Inside
}

// ClassifyPoint classifies a double-precision point
func ClassifyPoint(poly models.Polygon, p models.Point, border byte) byte {
	return Classify(poly, p.X, p.Y, border)
}

// ClassifyPointF classifies a single-precision point
func ClassifyPointF(poly models.Polygon, p models.PointF, border byte) byte {
	return Classify(poly, p.X, p.Y, border)
}

// ClassifyPointInt classifies an integer point
func ClassifyPointInt(poly models.Polygon, p models.PointInt, border byte) byte {
	return Classify(poly, p.X, p.Y, border)
}

// Bounds returns the axis-aligned bounding box of the polygon.
// The zero box is returned for an empty polygon.
func Bounds(poly models.Polygon) models.BoundingBox {
	if len(poly) == 0 {
		return models.BoundingBox{}
	}
	box := models.BoundingBox{BottomLeft: poly[0], TopRight: poly[0]}
	for _, v := range poly[1:] {
		box.BottomLeft.X = min(box.BottomLeft.X, v.X)
		box.BottomLeft.Y = min(box.BottomLeft.Y, v.Y)
		box.TopRight.X = max(box.TopRight.X, v.X)
		box.TopRight.Y = max(box.TopRight.Y, v.Y)
	}
	return box
}
