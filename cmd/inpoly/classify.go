package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/1F47E/go-inside-polygon/internal/dataset"
	"github.com/1F47E/go-inside-polygon/internal/logger"
)

var (
	outputJSON bool
	limit      int
)

var classifyCmd = &cobra.Command{
	Use:   "classify <dataset>",
	Short: "Classify the points of a dataset file",
	Long: `Read a YAML or JSON document with "polygon" and "points" arrays of [x, y]
pairs and print the classification of every point. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&outputJSON, "json", false, "Output results as JSON")
	classifyCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results to display (0 for all)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	log := logger.Get()

	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	classifier, border, err := newClassifier()
	if err != nil {
		return err
	}

	start := time.Now()
	out := make([]byte, len(ds.Points))
	if err := classifier.ClassifyPoints(cmd.Context(), ds.Polygon, ds.Points, out); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"vertices": len(ds.Polygon),
		"points":   len(ds.Points),
		"workers":  classifier.Options().Workers,
		"elapsed":  time.Since(start),
	}).Debug("classified dataset")

	results := dataset.Results(ds.Points, out, border)
	if limit > 0 && len(results) > limit {
		log.Infof("Showing first %d of %d results (use --limit to see more)", limit, len(results))
		results = results[:limit]
	}

	if outputJSON {
		return dataset.WriteJSON(cmd.OutOrStdout(), results)
	}
	return dataset.WriteText(cmd.OutOrStdout(), results)
}
