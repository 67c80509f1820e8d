package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/1F47E/go-inside-polygon/internal/dataset"
	"github.com/1F47E/go-inside-polygon/internal/logger"
	"github.com/1F47E/go-inside-polygon/pkg/postgis"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <dataset>",
	Short: "Cross-check classifications against PostGIS",
	Long: `Classify the dataset locally and with PostGIS (ST_Covers plus a vertex test)
and list the points where the two disagree. Points on an edge but not on a
vertex are expected to differ on some edges, since PostGIS counts the whole
boundary as covered. The DSN comes from postgis.dsn or INPOLY_POSTGIS_DSN.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	log := logger.Get()
	if cfg.PostGIS.DSN == "" {
		return fmt.Errorf("no PostGIS DSN configured (set postgis.dsn or INPOLY_POSTGIS_DSN)")
	}

	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	classifier, border, err := newClassifier()
	if err != nil {
		return err
	}

	ours := make([]byte, len(ds.Points))
	if err := classifier.ClassifyPoints(cmd.Context(), ds.Polygon, ds.Points, ours); err != nil {
		return err
	}

	pg, err := postgis.NewPostGISClassifier(cmd.Context(), cfg.PostGIS.DSN, cfg.PostGIS.MaxConnections)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.InitSchema(cmd.Context()); err != nil {
		return err
	}

	theirs, err := pg.Classify(cmd.Context(), ds.Polygon, ds.Points, border)
	if err != nil {
		return err
	}

	mismatches := postgis.Compare(ds.Points, ours, theirs)
	for _, m := range mismatches {
		log.WithFields(logrus.Fields{
			"index":   m.Index,
			"x":       m.Point.X,
			"y":       m.Point.Y,
			"ours":    dataset.Label(m.Ours, border),
			"postgis": dataset.Label(m.Theirs, border),
		}).Warn("Classification mismatch")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d points checked, %d mismatches\n", len(ds.Points), len(mismatches))
	return nil
}
