// Package dataset reads polygon and query point documents. Documents are
// YAML; JSON input works too since JSON is valid YAML.
//
//	polygon: [[0, 0], [0, 10], [10, 10], [10, 0]]
//	points:  [[5, 5], [15, 5]]
package dataset

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1F47E/go-inside-polygon/pkg/models"
)

type document struct {
	Polygon [][]float64 `yaml:"polygon"`
	Points  [][]float64 `yaml:"points"`
}

// Dataset is one polygon and the points to classify against it
type Dataset struct {
	Polygon models.Polygon
	Points  []models.Point
}

// Load reads a dataset from a file, or from stdin when path is "-"
func Load(path string) (*Dataset, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	ds, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode parses a dataset document
func Decode(r io.Reader) (*Dataset, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	poly, err := toPoints(doc.Polygon, "polygon")
	if err != nil {
		return nil, err
	}
	points, err := toPoints(doc.Points, "points")
	if err != nil {
		return nil, err
	}

	return &Dataset{Polygon: models.Polygon(poly), Points: points}, nil
}

func toPoints(pairs [][]float64, field string) ([]models.Point, error) {
	points := make([]models.Point, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%s[%d]: want [x, y], got %d values", field, i, len(pair))
		}
		points[i] = models.Point{X: pair[0], Y: pair[1]}
	}
	return points, nil
}

// Flatten interleaves point coordinates as x0, y0, x1, y1, ...
func Flatten(points []models.Point) []float64 {
	flat := make([]float64, 0, 2*len(points))
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}
