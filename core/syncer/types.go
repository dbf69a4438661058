package syncer

import (
	"context"
	"errors"

	"marketsync/core/reconcile"
)

// Page is one portion of a marketplace's offer catalog.
type Page struct {
	// OfferIDs are the offer identifiers of this page, in catalog order.
	OfferIDs []string

	// NextCursor requests the following page. Empty means end of catalog.
	NextCursor string
}

// Catalog lists the offers a marketplace already knows about.
// The initial call uses an empty cursor.
type Catalog interface {
	ListPage(ctx context.Context, cursor string) (Page, error)
}

// Updater submits one batch of decisions per call to a marketplace update API.
// Implementations report any transport or validation failure as an error.
type Updater interface {
	UpdateStocks(ctx context.Context, batch []reconcile.StockDecision) error
	UpdatePrices(ctx context.Context, batch []reconcile.PriceDecision) error
}

// Target describes the external constraints of one marketplace destination.
type Target struct {
	// Name identifies the target in logs and reports, e.g. "ozon" or "market-fbs".
	Name string

	// StockBatchSize bounds one stock update call.
	StockBatchSize int

	// PriceBatchSize bounds one price update call.
	PriceBatchSize int
}

// Report is the outcome of one target's sync run.
type Report struct {
	// Stocks holds every stock decision, one per known offer id.
	Stocks []reconcile.StockDecision `json:"stocks"`

	// NonEmptyStocks holds the subset of Stocks with a nonzero count.
	NonEmptyStocks []reconcile.StockDecision `json:"non_empty_stocks"`

	// Prices holds one price decision per offer matched by the feed.
	Prices []reconcile.PriceDecision `json:"prices"`
}

var (
	// ErrCatalogFetch reports a failed or malformed catalog listing page.
	ErrCatalogFetch = errors.New("catalog fetch failed")

	// ErrSubmission reports a rejected or failed update batch.
	ErrSubmission = errors.New("update submission failed")
)
