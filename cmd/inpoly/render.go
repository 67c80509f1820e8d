package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/1F47E/go-inside-polygon/internal/dataset"
	"github.com/1F47E/go-inside-polygon/internal/logger"
)

var (
	gridCols int
	gridRows int
	noColor  bool
)

var renderCmd = &cobra.Command{
	Use:   "render <dataset>",
	Short: "Draw the polygon as a character grid",
	Long: `Sample the polygon's bounding box on a grid and print the classification of
every cell: '#' inside, '.' outside, 'o' on a vertex. Only the dataset's
polygon is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	for _, c := range []*cobra.Command{renderCmd, exploreCmd} {
		c.Flags().IntVar(&gridCols, "cols", 41, "Grid columns")
		c.Flags().IntVar(&gridRows, "rows", 21, "Grid rows")
	}
	renderCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// colorEnabled disables colors if not in a terminal
func colorEnabled() bool {
	if noColor {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runRender(cmd *cobra.Command, args []string) error {
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
	logger.Get().Debugf("Rendered %dx%d grid over %d vertices", gridCols, gridRows, len(ds.Polygon))

	styled := colorEnabled()
	title := fmt.Sprintf("x [%g, %g]  y [%g, %g]", g.box.BottomLeft.X, g.box.TopRight.X, g.box.BottomLeft.Y, g.box.TopRight.Y)
	if styled {
		title = titleStyle.Render(title)
	}
	fmt.Fprintln(cmd.OutOrStdout(), title)
	fmt.Fprint(cmd.OutOrStdout(), g.render(styled, -1, -1))
	return nil
}
