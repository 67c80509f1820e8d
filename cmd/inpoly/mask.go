package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/1F47E/go-inside-polygon/internal/dataset"
	"github.com/1F47E/go-inside-polygon/internal/logger"
	"github.com/1F47E/go-inside-polygon/pkg/mask"
)

var (
	maskWidth  int
	maskHeight int
	maskOutput string
)

var maskCmd = &cobra.Command{
	Use:   "mask <dataset>",
	Short: "Rasterize the polygon into a pixel selection mask",
	Long: `Classify every integer pixel (x = column, y = row) of a width x height image
against the dataset's polygon and save the mask to a gob file.`,
	Args: cobra.ExactArgs(1),
	RunE: runMask,
}

func init() {
	maskCmd.Flags().IntVar(&maskWidth, "width", 512, "Image width in pixels")
	maskCmd.Flags().IntVar(&maskHeight, "height", 512, "Image height in pixels")
	maskCmd.Flags().StringVarP(&maskOutput, "output", "o", "mask.gob", "Output file path")
}

func runMask(cmd *cobra.Command, args []string) error {
	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	_, border, err := newClassifier()
	if err != nil {
		return err
	}

	m, err := mask.Rasterize(ds.Polygon, maskWidth, maskHeight, border)
	if err != nil {
		return err
	}
	if err := m.SaveToFile(maskOutput); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"width":    m.Width,
		"height":   m.Height,
		"selected": m.Selected(),
		"file":     maskOutput,
	}).Info("Mask saved")
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d pixels selected\n", m.Selected(), m.Width*m.Height)
	return nil
}
