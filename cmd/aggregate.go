package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/remotestarter/jobfeed/internal/clock/system"
	"github.com/remotestarter/jobfeed/internal/config"
	"github.com/remotestarter/jobfeed/internal/feed"
	"github.com/remotestarter/jobfeed/internal/fetch"
	"github.com/remotestarter/jobfeed/internal/hash/sha256"
	idgen "github.com/remotestarter/jobfeed/internal/id/uuid"
	"github.com/remotestarter/jobfeed/internal/logging"
	"github.com/remotestarter/jobfeed/internal/parse"
	"github.com/remotestarter/jobfeed/internal/pipeline"
	"github.com/remotestarter/jobfeed/internal/sink"
)

// newAggregateCmd creates the 'aggregate' subcommand, which runs one full
// aggregation pass and writes the result document.
func newAggregateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Runs one aggregation pass over all configured sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, err := logging.New(cfg.Logging.Development)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runAggregate(ctx, cfg, logger, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "run the pipeline but do not write the output file")
	return cmd
}

// runAggregate wires the pipeline services together and executes one run.
func runAggregate(ctx context.Context, cfg config.Config, logger *zap.Logger, dryRun bool) error {
	runID, err := idgen.New().NewID()
	if err != nil {
		return fmt.Errorf("generate run id: %w", err)
	}
	logger = logger.With(zap.String("run_id", runID))

	clock := system.New()
	client := fetch.New(fetch.Config{
		UserAgent:    cfg.HTTP.UserAgent,
		Timeout:      cfg.HTTPTimeout(),
		Backoff:      cfg.RateLimitDelay(),
		MaxRedirects: cfg.HTTP.MaxRedirects,
	})
	parsers := map[feed.SourceKind]feed.Parser{
		feed.KindRSS:  parse.NewFeedParser(clock, cfg.Pipeline.ExcerptLength),
		feed.KindJSON: parse.NewAPIParser(clock, cfg.Pipeline.ExcerptLength),
	}

	p := pipeline.New(cfg.FeedSources(), client, parsers, sha256.New(), clock, logger, pipeline.Config{
		MaxJobs:      cfg.Pipeline.MaxJobs,
		MaxTags:      cfg.Pipeline.MaxTags,
		BeginnerOnly: cfg.Pipeline.BeginnerOnly,
	})

	doc := p.Run(ctx)
	logger.Info("aggregation complete",
		zap.Int("jobs", doc.TotalJobs),
		zap.Strings("sources", doc.Sources),
	)

	if dryRun {
		logger.Info("dry run, skipping write", zap.String("path", cfg.Output.Path))
		return nil
	}

	out, err := sink.NewFile(cfg.Output.Path, logger)
	if err != nil {
		return err
	}
	status, err := out.Write(ctx, doc)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("run finished", zap.String("status", string(status)))
	return nil
}
