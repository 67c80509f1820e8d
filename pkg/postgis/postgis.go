// Package postgis classifies points with PostGIS so results from the
// crossing-number classifier can be cross-checked against a reference
// geometry engine.
package postgis

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/1F47E/go-inside-polygon/pkg/models"
)

// classifyQuery reports the border value for exact vertex hits, otherwise
// inside when the polygon covers the point (boundary included).
const classifyQuery = `
	WITH poly AS (SELECT ST_GeomFromText($1) AS g)
	SELECT t.ord,
		CASE
			WHEN ST_Intersects(ST_Points(poly.g), t.pt) THEN $2::int
			WHEN ST_Covers(poly.g, t.pt) THEN $3::int
			ELSE $4::int
		END
	FROM poly, (
		SELECT ord, ST_MakePoint(x, y) AS pt
		FROM unnest($5::float8[], $6::float8[]) WITH ORDINALITY AS u(x, y, ord)
	) t
	ORDER BY t.ord
`

// PostGISClassifier runs classifications inside PostgreSQL
type PostGISClassifier struct {
	db *sql.DB
}

// NewPostGISClassifier opens and pings a PostGIS connection
func NewPostGISClassifier(ctx context.Context, dsn string, maxConns int) (*PostGISClassifier, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
		db.SetMaxIdleConns(maxConns)
	}
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostGISClassifier{db: db}, nil
}

// InitSchema enables the PostGIS extension
func (p *PostGISClassifier) InitSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS postgis;`); err != nil {
		return fmt.Errorf("failed to enable postgis: %w", err)
	}
	return nil
}

// Classify returns one classification byte per point, in point order
func (p *PostGISClassifier) Classify(ctx context.Context, poly models.Polygon, points []models.Point, border byte) ([]byte, error) {
	if len(poly) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(poly))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, pt := range points {
		xs[i], ys[i] = pt.X, pt.Y
	}

	rows, err := p.db.QueryContext(ctx, classifyQuery,
		PolygonWKT(poly), int(border), int(models.Inside), int(models.Outside),
		pq.Array(xs), pq.Array(ys))
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	out := make([]byte, len(points))
	for rows.Next() {
		var ord int64
		var value int

		if err := rows.Scan(&ord, &value); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		if ord < 1 || ord > int64(len(out)) {
			return nil, fmt.Errorf("row ordinal %d out of range", ord)
		}
		out[ord-1] = byte(value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}

// Close closes the database connection
func (p *PostGISClassifier) Close() error {
	return p.db.Close()
}

// PolygonWKT renders poly as a closed WKT POLYGON ring
func PolygonWKT(poly models.Polygon) string {
	var b strings.Builder
	b.WriteString("POLYGON((")
	for i, v := range poly {
		if i > 0 {
			b.WriteString(", ")
		}
		writeCoord(&b, v)
	}
	if len(poly) > 0 && poly[0] != poly[len(poly)-1] {
		b.WriteString(", ")
		writeCoord(&b, poly[0])
	}
	b.WriteString("))")
	return b.String()
}

func writeCoord(b *strings.Builder, p models.Point) {
	b.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
}

// Mismatch is a point the two classifiers disagree on
type Mismatch struct {
	Index  int
	Point  models.Point
	Ours   byte
	Theirs byte
}

// Compare lists the indices where ours and theirs differ
func Compare(points []models.Point, ours, theirs []byte) []Mismatch {
	var mismatches []Mismatch
	for i := range points {
		if i >= len(ours) || i >= len(theirs) {
			break
		}
		if ours[i] != theirs[i] {
			mismatches = append(mismatches, Mismatch{
				Index:  i,
				Point:  points[i],
				Ours:   ours[i],
				Theirs: theirs[i],
			})
		}
	}
	return mismatches
}
