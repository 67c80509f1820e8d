package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/1F47E/go-inside-polygon/internal/logger"
	"github.com/1F47E/go-inside-polygon/pkg/models"
	"github.com/1F47E/go-inside-polygon/pkg/polygon"
)

type BenchmarkResult struct {
	Mode          string
	Runs          int
	Points        int
	TotalDuration time.Duration
	AvgDuration   time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	PointsPerSec  float64
	Inside        int
}

func main() {
	var (
		numPoints   = flag.Int("n", 1000000, "Number of points to classify")
		numVertices = flag.Int("m", 64, "Number of polygon vertices")
		runs        = flag.Int("r", 10, "Number of runs per mode")
		mode        = flag.String("t", "all", "Mode: sequential, parallel, bounds, all")
		workers     = flag.Int("w", runtime.NumCPU(), "Number of worker goroutines")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
		logLevel    = flag.String("log-level", "info", "Log level")
	)
	flag.Parse()

	if err := logger.Setup(*logLevel, "text"); err != nil {
		fmt.Println(err)
		return
	}
	log := logger.Get()

	r := rand.New(rand.NewSource(*seed))
	poly := starPolygon(r, *numVertices)
	log.Infof("Generating %d random points with %d workers...", *numPoints, *workers)
	points := generateRandomPoints(*numPoints, *workers, *seed)

	var modes []string
	switch *mode {
	case "all":
		modes = []string{"sequential", "parallel", "bounds"}
	case "sequential", "parallel", "bounds":
		modes = []string{*mode}
	default:
		log.Fatalf("Unknown mode: %s", *mode)
	}

	for _, m := range modes {
		log.Infof("Running %d %s runs over %d points, %d vertices", *runs, m, *numPoints, *numVertices)
		result, err := benchmark(m, poly, points, *runs, *workers)
		if err != nil {
			log.Fatalf("Benchmark %s failed: %v", m, err)
		}
		printResult(result)
	}
	fmt.Printf("CPU Cores: %d\n", runtime.NumCPU())
}

func benchmark(mode string, poly models.Polygon, points []models.Point, runs, workers int) (BenchmarkResult, error) {
	ctx := context.Background()
	out := make([]byte, len(points))

	var run func() error
	switch mode {
	case "sequential":
		vertices := make([]float64, 0, 2*len(poly))
		for _, v := range poly {
			vertices = append(vertices, v.X, v.Y)
		}
		flat := make([]float64, 0, 2*len(points))
		for _, p := range points {
			flat = append(flat, p.X, p.Y)
		}
		run = func() error {
			return polygon.PointsInsidePolygon(vertices, len(poly), flat, len(points), int(models.DefaultBorder), out)
		}
	default:
		c := polygon.NewClassifierWithOptions(polygon.Options{
			Workers:     workers,
			BoundsCheck: mode == "bounds",
			Border:      models.DefaultBorder,
		})
		run = func() error {
			return c.ClassifyPoints(ctx, poly, points, out)
		}
	}

	result := BenchmarkResult{Mode: mode, Runs: runs, Points: len(points), MinDuration: time.Hour}
	for i := 0; i < runs; i++ {
		start := time.Now()
		if err := run(); err != nil {
			return result, err
		}
		d := time.Since(start)

		result.TotalDuration += d
		result.MinDuration = min(result.MinDuration, d)
		result.MaxDuration = max(result.MaxDuration, d)
	}

	for _, v := range out {
		if v == models.Inside {
			result.Inside++
		}
	}
	if runs > 0 {
		result.AvgDuration = result.TotalDuration / time.Duration(runs)
		result.PointsPerSec = float64(len(points)*runs) / result.TotalDuration.Seconds()
	}
	return result, nil
}

func printResult(result BenchmarkResult) {
	fmt.Println("\n=== Benchmark Results ===")
	fmt.Printf("Mode: %s\n", result.Mode)
	fmt.Printf("Runs: %d\n", result.Runs)
	fmt.Printf("Points: %d\n", result.Points)
	fmt.Printf("Total Duration: %v\n", result.TotalDuration)
	fmt.Printf("Average Duration: %v\n", result.AvgDuration)
	fmt.Printf("Min Duration: %v\n", result.MinDuration)
	fmt.Printf("Max Duration: %v\n", result.MaxDuration)
	fmt.Printf("Points/Second: %.0f\n", result.PointsPerSec)
	fmt.Printf("Inside: %d (%.1f%%)\n", result.Inside, 100*float64(result.Inside)/float64(max(result.Points, 1)))
}

// starPolygon builds a concave star with alternating outer and inner radii
// centred in the unit square.
func starPolygon(r *rand.Rand, n int) models.Polygon {
	n = max(n, 3)
	poly := make(models.Polygon, n)
	for i := range poly {
		radius := 0.45
		if i%2 == 1 {
			radius = 0.15 + r.Float64()*0.2
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = models.Point{X: 0.5 + radius*math.Cos(angle), Y: 0.5 + radius*math.Sin(angle)}
	}
	return poly
}

// generateRandomPoints spreads points over [-0.25, 1.25)^2 so some land
// outside the polygon bounding box.
func generateRandomPoints(n, workers int, seed int64) []models.Point {
	points := make([]models.Point, n)
	workers = max(workers, 1)

	batchSize := n / workers
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		startIdx := w * batchSize
		endIdx := startIdx + batchSize
		if w == workers-1 {
			endIdx = n
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			// Each worker gets its own random generator to avoid contention
			r := rand.New(rand.NewSource(seed + int64(start)))
			for i := start; i < end; i++ {
				points[i] = models.Point{X: r.Float64()*1.5 - 0.25, Y: r.Float64()*1.5 - 0.25}
			}
		}(startIdx, endIdx)
	}

	wg.Wait()
	return points
}
