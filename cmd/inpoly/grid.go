package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1F47E/go-inside-polygon/pkg/models"
	"github.com/1F47E/go-inside-polygon/pkg/polygon"
)

var (
	insideStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	outsideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	borderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF79C6"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#282A36")).Background(lipgloss.Color("#F1FA8C"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BE9FD"))
)

const (
	insideGlyph  = "#"
	outsideGlyph = "."
	borderGlyph  = "o"
)

// grid samples a polygon on cols x rows cells spanning its bounding box.
// Row 0 is the top of the box.
type grid struct {
	cols, rows int
	box        models.BoundingBox
	border     byte
	points     []models.Point
	values     []byte
}

func newGrid(ctx context.Context, c *polygon.Classifier, poly models.Polygon, cols, rows int) (*grid, error) {
	g := &grid{
		cols:   cols,
		rows:   rows,
		box:    polygon.Bounds(poly),
		border: c.Options().Border,
	}

	g.points = make([]models.Point, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			g.points = append(g.points, g.cellPoint(col, row))
		}
	}

	g.values = make([]byte, len(g.points))
	if err := c.ClassifyPoints(ctx, poly, g.points, g.values); err != nil {
		return nil, err
	}
	return g, nil
}

// cellPoint maps a cell to world coordinates; the outer cells land
// exactly on the bounding box so vertices on it can be hit.
func (g *grid) cellPoint(col, row int) models.Point {
	return models.Point{
		X: lerp(g.box.BottomLeft.X, g.box.TopRight.X, col, g.cols),
		Y: lerp(g.box.TopRight.Y, g.box.BottomLeft.Y, row, g.rows),
	}
}

func lerp(from, to float64, i, n int) float64 {
	if n <= 1 {
		return from
	}
	return from + (to-from)*float64(i)/float64(n-1)
}

func (g *grid) at(col, row int) byte {
	return g.values[row*g.cols+col]
}

// render draws the grid; cursorCol < 0 disables the cursor
func (g *grid) render(styled bool, cursorCol, cursorRow int) string {
	var b strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			glyph, style := g.glyph(g.at(col, row))
			if col == cursorCol && row == cursorRow {
				style = cursorStyle
				if !styled {
					glyph = "+"
				}
			}
			if styled {
				glyph = style.Render(glyph)
			}
			b.WriteString(glyph)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *grid) glyph(value byte) (string, lipgloss.Style) {
	switch value {
	case g.border:
		return borderGlyph, borderStyle
	case models.Inside:
		return insideGlyph, insideStyle
	default:
		return outsideGlyph, outsideStyle
	}
}
