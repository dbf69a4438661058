package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marketsync/core/config"
	"marketsync/core/feed"
	"marketsync/core/reconcile"
	"marketsync/core/storage"
	"marketsync/core/syncer"
	"marketsync/feature/market"
	"marketsync/feature/ozon"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// targetRun bundles one marketplace destination with its collaborators.
type targetRun struct {
	target  syncer.Target
	catalog syncer.Catalog
	updater syncer.Updater
}

// buildRuns assembles the enabled targets in their fixed order:
// ozon, market-fbs, market-dbs.
func buildRuns(cfg *config.Config) []targetRun {
	var runs []targetRun

	if cfg.Ozon.Enabled {
		c := ozon.NewClient(cfg.Ozon)
		runs = append(runs, targetRun{target: c.Target(), catalog: c, updater: c})
	}

	if cfg.Market.Enabled {
		fbs := market.NewFBSClient(cfg.Market)
		dbs := market.NewDBSClient(cfg.Market)
		runs = append(runs,
			targetRun{target: fbs.Target(), catalog: fbs, updater: fbs},
			targetRun{target: dbs.Target(), catalog: dbs, updater: dbs},
		)
	}

	return runs
}

// loadRemnants fetches and parses the remnants feed once per run.
// The storage client is only built when the s3 source is configured.
func loadRemnants(ctx context.Context, cfg *config.Config) ([]reconcile.RemnantRecord, error) {
	var client storage.Client
	if cfg.Feed.Source == feed.SourceS3 {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		client = c
	}

	fetcher, err := feed.NewFetcher(cfg.Feed, client)
	if err != nil {
		return nil, err
	}

	return feed.Load(ctx, fetcher, cfg.Feed)
}

// runner executes sync runs and keeps the last outcome per target for the
// serve-mode report endpoint.
type runner struct {
	cfg    *config.Config
	logger *zap.Logger

	mu      sync.Mutex
	running bool
	reports map[string]*syncer.Report
	errors  map[string]string
	lastRun time.Time
}

func newRunner(cfg *config.Config, logger *zap.Logger) *runner {
	return &runner{
		cfg:     cfg,
		logger:  logger,
		reports: make(map[string]*syncer.Report),
		errors:  make(map[string]string),
	}
}

// RunAll syncs every enabled target sequentially, restricted to only when
// non-empty. A failed target is logged and the next target still runs; the
// returned error reflects whether any target failed. Overlapping runs are
// rejected rather than queued.
func (r *runner) RunAll(ctx context.Context, only string) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return fmt.Errorf("a sync run is already in progress")
	}
	r.running = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.running = false
		r.lastRun = time.Now()
		r.mu.Unlock()
	}()

	l := r.logger.With(zap.String("run_id", uuid.NewString()))

	runs := buildRuns(r.cfg)
	if only != "" {
		filtered := runs[:0]
		for _, run := range runs {
			if run.target.Name == only {
				filtered = append(filtered, run)
			}
		}
		runs = filtered
	}
	if len(runs) == 0 {
		return fmt.Errorf("no enabled sync targets match %q", only)
	}

	remnants, err := loadRemnants(ctx, r.cfg)
	if err != nil {
		return fmt.Errorf("failed to load remnants feed: %w", err)
	}
	l.Info("Remnants feed loaded", zap.Int("records", len(remnants)))

	var failed int
	for _, run := range runs {
		o := syncer.New(run.target, run.catalog, run.updater, l)
		report, err := o.Sync(ctx, remnants)

		r.mu.Lock()
		if err != nil {
			r.errors[run.target.Name] = err.Error()
			delete(r.reports, run.target.Name)
		} else {
			r.reports[run.target.Name] = report
			delete(r.errors, run.target.Name)
		}
		r.mu.Unlock()

		if err != nil {
			// One broken target must not block the others.
			l.Error("Target sync failed", zap.String("target", run.target.Name), zap.Error(err))
			failed++
			continue
		}

		l.Info("Target synced",
			zap.String("target", run.target.Name),
			zap.Int("stocks", len(report.Stocks)),
			zap.Int("non_empty_stocks", len(report.NonEmptyStocks)),
			zap.Int("prices", len(report.Prices)),
		)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(runs))
	}
	return nil
}

// Report returns the last successful report for a target, if any.
func (r *runner) Report(target string) (*syncer.Report, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[target]
	return rep, ok
}

// Status summarizes the runner state for the health endpoint.
func (r *runner) Status() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := map[string]any{
		"running": r.running,
	}
	if !r.lastRun.IsZero() {
		status["last_run"] = r.lastRun.UTC().Format(time.RFC3339)
	}
	if len(r.errors) > 0 {
		status["errors"] = r.errors
	}
	return status
}
