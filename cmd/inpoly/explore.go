package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/1F47E/go-inside-polygon/internal/dataset"
	"github.com/1F47E/go-inside-polygon/pkg/models"
	"github.com/1F47E/go-inside-polygon/pkg/polygon"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <dataset>",
	Short: "Move a cursor over the polygon grid interactively",
	Long:  `Render the polygon grid in the terminal and show the classification of the cell under the cursor. Arrow keys or hjkl move, q quits.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExplore,
}

type exploreModel struct {
	grid     *grid
	poly     models.Polygon
	col, row int
}

func newExploreModel(g *grid, poly models.Polygon) exploreModel {
	return exploreModel{grid: g, poly: poly, col: g.cols / 2, row: g.rows / 2}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.col = max(m.col-1, 0)
	case "right", "l":
		m.col = min(m.col+1, m.grid.cols-1)
	case "up", "k":
		m.row = max(m.row-1, 0)
	case "down", "j":
		m.row = min(m.row+1, m.grid.rows-1)
	case "home":
		m.col, m.row = 0, 0
	}
	return m, nil
}

// current classifies the cursor point directly rather than reading the grid
func (m exploreModel) current() (models.Point, byte) {
	p := m.grid.cellPoint(m.col, m.row)
	return p, polygon.ClassifyPoint(m.poly, p, m.grid.border)
}

func (m exploreModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("inpoly explore"))
	b.WriteString("\n\n")
	b.WriteString(m.grid.render(true, m.col, m.row))

	p, value := m.current()
	fmt.Fprintf(&b, "\n(%g, %g) %s\n", p.X, p.Y, dataset.Label(value, m.grid.border))
	b.WriteString(outsideStyle.Render("arrows/hjkl move • q quit"))
	b.WriteByte('\n')
	return b.String()
}

func runExplore(cmd *cobra.Command, args []string) error {
	if gridCols <= 0 || gridRows <= 0 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", gridCols, gridRows)
	}

	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	classifier, _, err := newClassifier()
	if err != nil {
		return err
	}

	g, err := newGrid(cmd.Context(), classifier, ds.Polygon, gridCols, gridRows)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newExploreModel(g, ds.Polygon), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	return nil
}
