package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vytor/clubstats/internal/apperr"
	"github.com/vytor/clubstats/internal/chesscom"
	"github.com/vytor/clubstats/internal/config"
	"github.com/vytor/clubstats/internal/export"
	"github.com/vytor/clubstats/internal/logger"
	"github.com/vytor/clubstats/internal/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if apperr.IsFetch(err) {
			// One-line diagnostic; the cause breakdown is in the log output.
			fmt.Fprintln(os.Stderr, "Error: unable to access chess.com")
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		chartEnabled bool
		outputPath   string
		chartPath    string
		workers      int
		logLevel     string
	)

	cmd := &cobra.Command{
		Use:   "clubstats [club-id]",
		Short: "Export member statistics of a chess.com club to a spreadsheet",
		Long: `clubstats fetches the roster of a chess.com club, enriches every member
from the public profile and stats endpoints, writes the merged table to an
xlsx workbook and optionally renders a ratings comparison chart.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if len(args) == 1 {
				cfg.ClubName = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("chart") {
				cfg.ChartEnabled = chartEnabled
			}
			if flags.Changed("out") {
				cfg.OutputPath = outputPath
			}
			if flags.Changed("chart-out") {
				cfg.ChartPath = chartPath
			}
			if flags.Changed("workers") {
				cfg.WorkerCount = workers
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	cmd.Flags().BoolVar(&chartEnabled, "chart", true, "render the ratings comparison chart")
	cmd.Flags().StringVar(&outputPath, "out", "Club_Data.xlsx", "path of the xlsx report")
	cmd.Flags().StringVar(&chartPath, "chart-out", "club_ratings.html", "path of the rendered chart")
	cmd.Flags().IntVar(&workers, "workers", 4, "member fetches in flight per stage")
	cmd.Flags().StringVar(&logLevel, "log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Debug("club_name=%s", cfg.ClubName)
	log.Debug("output_path=%s", cfg.OutputPath)
	log.Debug("chart=%v chart_path=%s", cfg.ChartEnabled, cfg.ChartPath)
	log.Debug("worker_count=%d", cfg.WorkerCount)
	log.Debug("requests_per_second=%v retry_max_tries=%d http_timeout=%ds",
		cfg.RequestsPerSecond, cfg.RetryMaxTries, cfg.HTTPTimeoutSeconds)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.NewContext(ctx, log)

	client := chesscom.New(
		chesscom.WithTimeout(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second),
		chesscom.WithRateLimit(cfg.RequestsPerSecond),
		chesscom.WithMaxTries(uint(cfg.RetryMaxTries)),
	)

	report := services.NewReportService(
		services.NewRosterService(client),
		services.NewProfileService(client),
		services.NewStatsService(client),
		cfg.WorkerCount,
	)

	roster, err := report.BuildReport(ctx, cfg.ClubName)
	if err != nil {
		return err
	}

	log.Info("Writing output file...")
	if err := export.WriteWorkbook(roster, cfg.OutputPath); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputPath, err)
	}

	if cfg.ChartEnabled {
		log.Info("Drawing chart...")
		if err := export.RenderChart(roster, cfg.ClubName, cfg.ChartPath); err != nil {
			return fmt.Errorf("rendering %s: %w", cfg.ChartPath, err)
		}
	}

	return nil
}
