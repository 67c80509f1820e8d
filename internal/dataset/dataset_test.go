package dataset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1F47E/go-inside-polygon/pkg/models"
)

func TestDecodeYAML(t *testing.T) {
	ds, err := Decode(strings.NewReader(`
polygon:
  - [0, 0]
  - [0, 10]
  - [10, 10]
  - [10, 0]
points: [[5, 5], [15, 5.5]]
`))
	require.NoError(t, err)
	assert.Len(t, ds.Polygon, 4)
	assert.Equal(t, []models.Point{{X: 5, Y: 5}, {X: 15, Y: 5.5}}, ds.Points)
}

func TestDecodeJSON(t *testing.T) {
	ds, err := Decode(strings.NewReader(`{"polygon": [[0,0],[4,0],[2,3]], "points": [[1,1]]}`))
	require.NoError(t, err)
	assert.Equal(t, models.Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}, ds.Polygon)
	assert.Len(t, ds.Points, 1)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`polygon: [[0, 0, 1]]`))
	assert.ErrorContains(t, err, "polygon[0]")

	_, err = Decode(strings.NewReader(`points: [[1]]`))
	assert.ErrorContains(t, err, "points[0]")

	_, err = Decode(strings.NewReader(`polygon: {`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("polygon: [[0,0],[1,0],[0,1]]\npoints: []\n"), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, ds.Polygon, 3)
	assert.Empty(t, ds.Points)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, []float64{1, 2, 3, 4}, Flatten([]models.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}))
	assert.Empty(t, Flatten(nil))
}

func TestResults(t *testing.T) {
	points := []models.Point{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 0, Y: 0}}
	results := Results(points, []byte{models.Inside, models.Outside, 9}, 9)

	assert.Equal(t, "inside", results[0].Label)
	assert.Equal(t, "outside", results[1].Label)
	assert.Equal(t, "border", results[2].Label)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, results))
	var decoded []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, results, decoded)

	buf.Reset()
	require.NoError(t, WriteText(&buf, results))
	assert.Equal(t, "1. (5, 5) inside\n2. (15, 5) outside\n3. (0, 0) border\n", buf.String())
}

func TestLabelBorderTakesPrecedence(t *testing.T) {
	assert.Equal(t, "border", Label(models.Inside, models.Inside))
	assert.Equal(t, "unknown", Label(42, 9))
}
