package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/1F47E/go-inside-polygon/pkg/models"
)

// Result is the classification of one query point
type Result struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value byte    `json:"value"`
	Label string  `json:"label"`
}

// Label names a classification byte
func Label(value, border byte) string {
	switch value {
	case border:
		return "border"
	case models.Inside:
		return "inside"
	case models.Outside:
		return "outside"
	default:
		return "unknown"
	}
}

// Results pairs points with their classifications
func Results(points []models.Point, values []byte, border byte) []Result {
	results := make([]Result, len(points))
	for i, p := range points {
		results[i] = Result{
			Index: i,
			X:     p.X,
			Y:     p.Y,
			Value: values[i],
			Label: Label(values[i], border),
		}
	}
	return results
}

// WriteJSON writes results as an indented JSON array
func WriteJSON(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

// WriteText writes one line per result
func WriteText(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%d. (%g, %g) %s\n", r.Index+1, r.X, r.Y, r.Label); err != nil {
			return err
		}
	}
	return nil
}
