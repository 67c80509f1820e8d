package polygon

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/1F47E/go-inside-polygon/pkg/models"
)

const (
	// minChunk keeps small batches on a single goroutine
	minChunk = 1024
	// cancelEvery is how many points a worker classifies between context checks
	cancelEvery = 4096
)

// Options configures a Classifier
type Options struct {
	// Workers is the number of goroutines a batch is split across.
	// Zero or negative means runtime.NumCPU().
	Workers int
	// BoundsCheck rejects points outside the polygon bounding box before
	// running the edge scan. Results are identical either way; polygons
	// with a NaN vertex coordinate always take the full scan.
	BoundsCheck bool
	// Border is written for points that coincide with a vertex
	Border byte
}

// Classifier runs batch classifications across worker goroutines.
// It holds no per-batch state and is safe for concurrent use.
type Classifier struct {
	opts Options
}

// NewClassifier creates a classifier using one worker per CPU
func NewClassifier(border byte) *Classifier {
	return NewClassifierWithOptions(Options{Border: border})
}

// NewClassifierWithOptions creates a classifier with explicit options
func NewClassifierWithOptions(opts Options) *Classifier {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Classifier{opts: opts}
}

// Options returns the effective options
func (c *Classifier) Options() Options {
	return c.opts
}

// ClassifyPoints classifies float64 points into out, which must have one
// slot per point.
func (c *Classifier) ClassifyPoints(ctx context.Context, poly models.Polygon, points []models.Point, out []byte) error {
	return runBatch(ctx, c, poly, len(points), out, func(i int) (float64, float64) {
		return points[i].X, points[i].Y
	})
}

// ClassifyPointsF classifies float32 points into out
func (c *Classifier) ClassifyPointsF(ctx context.Context, poly models.Polygon, points []models.PointF, out []byte) error {
	return runBatch(ctx, c, poly, len(points), out, func(i int) (float32, float32) {
		return points[i].X, points[i].Y
	})
}

// ClassifyPointsInt classifies int32 points into out
func (c *Classifier) ClassifyPointsInt(ctx context.Context, poly models.Polygon, points []models.PointInt, out []byte) error {
	return runBatch(ctx, c, poly, len(points), out, func(i int) (int32, int32) {
		return points[i].X, points[i].Y
	})
}

// ClassifyFlat classifies interleaved x,y coordinates of any scalar type
func ClassifyFlat[T Scalar](ctx context.Context, c *Classifier, poly models.Polygon, xy []T, out []byte) error {
	if len(xy)%2 != 0 {
		return fmt.Errorf("odd coordinate count %d: %w", len(xy), ErrPointBuffer)
	}
	return runBatch(ctx, c, poly, len(xy)/2, out, func(i int) (T, T) {
		return xy[2*i], xy[2*i+1]
	})
}

func runBatch[T Scalar](ctx context.Context, c *Classifier, poly models.Polygon, n int, out []byte, at func(i int) (T, T)) error {
	if len(poly) < 3 {
		return fmt.Errorf("got %d: %w", len(poly), ErrTooFewVertices)
	}
	if len(out) != n {
		return fmt.Errorf("want %d bytes, got %d: %w", n, len(out), ErrOutputBuffer)
	}
	if n == 0 {
		return nil
	}

	classify := func(x, y T) byte {
		return Classify(poly, x, y, c.opts.Border)
	}
	if box := Bounds(poly); c.opts.BoundsCheck && !hasNaN(box) {
		classify = func(x, y T) byte {
			if !box.Contains(float64(x), float64(y)) {
				return models.Outside
			}
			return Classify(poly, x, y, c.opts.Border)
		}
	}

	// Calculate batch size for each worker
	workers := c.opts.Workers
	batchSize := (n + workers - 1) / workers
	if batchSize < minChunk {
		batchSize = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += batchSize {
		start, end := start, min(start+batchSize, n)

		g.Go(func() error {
			for i := start; i < end; i++ {
				if (i-start)%cancelEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				out[i] = classify(at(i))
			}
			return nil
		})
	}

	return g.Wait()
}

// hasNaN reports whether any corner coordinate is NaN. The built-in min
// and max propagate NaN, so one NaN vertex poisons the whole box and
// Contains would reject every point.
func hasNaN(box models.BoundingBox) bool {
	return math.IsNaN(box.BottomLeft.X) || math.IsNaN(box.BottomLeft.Y) ||
		math.IsNaN(box.TopRight.X) || math.IsNaN(box.TopRight.Y)
}
