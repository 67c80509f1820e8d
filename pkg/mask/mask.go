// Package mask turns a polygon into a per-pixel selection mask over an
// integer image grid.
package mask

import (
	"errors"
	"fmt"

	"github.com/1F47E/go-inside-polygon/pkg/models"
	"github.com/1F47E/go-inside-polygon/pkg/polygon"
)

// ErrInvalidSize is returned for a non-positive width or height
var ErrInvalidSize = errors.New("invalid mask size")

// Mask is a row-major byte mask; Data[y*Width+x] is the classification of
// pixel (x, y).
type Mask struct {
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	Border  byte           `json:"border"`
	Polygon models.Polygon `json:"polygon"`
	Data    []byte         `json:"data"`
}

// Rasterize classifies every integer pixel coordinate of a width x height
// grid against poly. Pixel x is the column and y the row.
func Rasterize(poly models.Polygon, width, height int, border byte) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}

	vertices := make([]float64, 0, 2*len(poly))
	for _, v := range poly {
		vertices = append(vertices, v.X, v.Y)
	}

	n := width * height
	points := make([]int32, 0, 2*n)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			points = append(points, int32(x), int32(y))
		}
	}

	data := make([]byte, n)
	if err := polygon.PointsInsidePolygonInt(vertices, len(poly), points, n, int(border), data); err != nil {
		return nil, fmt.Errorf("failed to rasterize polygon: %w", err)
	}

	return &Mask{
		Width:   width,
		Height:  height,
		Border:  border,
		Polygon: poly,
		Data:    data,
	}, nil
}

// At returns the classification of pixel (x, y)
func (m *Mask) At(x, y int) byte {
	return m.Data[y*m.Width+x]
}

// Count returns how many pixels hold value
func (m *Mask) Count(value byte) int {
	count := 0
	for _, v := range m.Data {
		if v == value {
			count++
		}
	}
	return count
}

// Selected returns the number of pixels that are inside or on a vertex
func (m *Mask) Selected() int {
	count := m.Count(models.Inside)
	if m.Border != models.Inside && m.Border != models.Outside {
		count += m.Count(m.Border)
	}
	return count
}
