package syncer

import (
	"context"
	"fmt"

	"marketsync/core/reconcile"

	"go.uber.org/zap"
)

// Orchestrator runs the sync pipeline for one marketplace target.
type Orchestrator struct {
	target  Target
	catalog Catalog
	updater Updater
	logger  *zap.Logger
}

// New creates an orchestrator for the given target and its collaborators.
func New(target Target, catalog Catalog, updater Updater, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		target:  target,
		catalog: catalog,
		updater: updater,
		logger:  logger.With(zap.String("target", target.Name)),
	}
}

// Sync reconciles remnants against the target's catalog and pushes the
// resulting stock and price batches. The remnants slice is read-only input;
// concurrent runs for different targets may share it.
func (o *Orchestrator) Sync(ctx context.Context, remnants []reconcile.RemnantRecord) (*Report, error) {
	offerIDs, err := o.offerIDs(ctx)
	if err != nil {
		return nil, err
	}
	o.logger.Info("Catalog fetched", zap.Int("offer_ids", len(offerIDs)))

	stocks, err := reconcile.ReconcileStocks(remnants, offerIDs)
	if err != nil {
		return nil, fmt.Errorf("reconcile stocks: %w", err)
	}

	prices, err := reconcile.ReconcilePrices(remnants, offerIDs)
	if err != nil {
		return nil, fmt.Errorf("reconcile prices: %w", err)
	}

	stockBatches := reconcile.Chunks(stocks, o.target.StockBatchSize)
	for i, batch := range stockBatches {
		if err := o.updater.UpdateStocks(ctx, batch); err != nil {
			return nil, fmt.Errorf("%w: stock batch %d/%d: %v", ErrSubmission, i+1, len(stockBatches), err)
		}
	}
	o.logger.Info("Stocks submitted",
		zap.Int("decisions", len(stocks)),
		zap.Int("batches", len(stockBatches)),
	)

	priceBatches := reconcile.Chunks(prices, o.target.PriceBatchSize)
	for i, batch := range priceBatches {
		if err := o.updater.UpdatePrices(ctx, batch); err != nil {
			return nil, fmt.Errorf("%w: price batch %d/%d: %v", ErrSubmission, i+1, len(priceBatches), err)
		}
	}
	o.logger.Info("Prices submitted",
		zap.Int("decisions", len(prices)),
		zap.Int("batches", len(priceBatches)),
	)

	nonEmpty := make([]reconcile.StockDecision, 0, len(stocks))
	for _, d := range stocks {
		if d.Stock != 0 {
			nonEmpty = append(nonEmpty, d)
		}
	}

	return &Report{
		Stocks:         stocks,
		NonEmptyStocks: nonEmpty,
		Prices:         prices,
	}, nil
}

// offerIDs pages through the catalog until the collaborator reports no next
// cursor, accumulating ids in page order. An empty NextCursor is the explicit
// termination predicate; the catalog size is the only bound.
func (o *Orchestrator) offerIDs(ctx context.Context) ([]string, error) {
	var ids []string
	cursor := ""
	for {
		page, err := o.catalog.ListPage(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogFetch, err)
		}
		ids = append(ids, page.OfferIDs...)

		if page.NextCursor == "" {
			return ids, nil
		}
		cursor = page.NextCursor
	}
}
