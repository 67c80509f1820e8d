package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/1F47E/go-inside-polygon/internal/config"
	"github.com/1F47E/go-inside-polygon/internal/logger"
	"github.com/1F47E/go-inside-polygon/pkg/polygon"
)

var (
	configFile  string
	envFile     string
	borderValue int
	numWorkers  int
	boundsCheck bool
	logLevel    string
	logFormat   string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "inpoly",
	Short: "Classify points as inside, outside or on a vertex of a polygon",
	Long: `Batch point-in-polygon classification using the crossing-number rule.
Points that coincide exactly with a polygon vertex get the border value.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile, "Config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded before reading INPOLY_* variables")
	rootCmd.PersistentFlags().IntVarP(&borderValue, "border", "b", 0, "Value reported for points on a vertex (2-255; 0 and 1 are outside and inside)")
	rootCmd.PersistentFlags().IntVarP(&numWorkers, "workers", "w", 0, "Number of worker goroutines")
	rootCmd.PersistentFlags().BoolVar(&boundsCheck, "bounds-check", false, "Reject points outside the polygon bounding box early")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")

	rootCmd.AddCommand(classifyCmd, renderCmd, exploreCmd, maskCmd, verifyCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// setup merges config file, environment and explicitly set flags
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configFile, envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("border") {
		cfg.Border = borderValue
	}
	if flags.Changed("workers") {
		cfg.Workers = numWorkers
	}
	if flags.Changed("bounds-check") {
		cfg.BoundsCheck = boundsCheck
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return logger.Setup(cfg.Log.Level, cfg.Log.Format)
}

func newClassifier() (*polygon.Classifier, byte, error) {
	border, err := polygon.BorderByte(cfg.Border)
	if err != nil {
		return nil, 0, err
	}
	c := polygon.NewClassifierWithOptions(polygon.Options{
		Workers:     cfg.Workers,
		BoundsCheck: cfg.BoundsCheck,
		Border:      border,
	})
	return c, border, nil
}
