package models

// Classification values written to batch output buffers
const (
	Outside byte = 0
	Inside  byte = 1
	// DefaultBorder is the border value used by the CLI when none is configured
	DefaultBorder byte = 2
)

// Point represents a double-precision 2D point
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// PointF represents a single-precision 2D point
type PointF struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// PointInt represents an integer 2D point, laid out like a pair of C ints
type PointInt struct {
	X int32 `json:"x" yaml:"x"`
	Y int32 `json:"y" yaml:"y"`
}

// Polygon is an implicitly closed ring of vertices; the last vertex
// connects back to the first.
type Polygon []Point

// BoundingBox represents a rectangular area defined by two corners
type BoundingBox struct {
	BottomLeft Point `json:"bottom_left" yaml:"bottom_left"`
	TopRight   Point `json:"top_right" yaml:"top_right"`
}

// Contains reports whether (x, y) lies within the box, edges included
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.BottomLeft.X && x <= b.TopRight.X &&
		y >= b.BottomLeft.Y && y <= b.TopRight.Y
}
