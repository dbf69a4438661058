package syncer

import (
	"context"
	"fmt"
	"testing"

	"marketsync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCatalog serves a fixed sequence of pages keyed by cursor.
type mockCatalog struct {
	pages map[string]Page
	err   error
	calls []string
}

func (m *mockCatalog) ListPage(ctx context.Context, cursor string) (Page, error) {
	m.calls = append(m.calls, cursor)
	if m.err != nil {
		return Page{}, m.err
	}
	return m.pages[cursor], nil
}

// mockUpdater records submitted batches and can fail a specific call.
type mockUpdater struct {
	stockBatches [][]reconcile.StockDecision
	priceBatches [][]reconcile.PriceDecision
	failStockAt  int // 1-based call index, 0 = never
	failPriceAt  int
}

func (m *mockUpdater) UpdateStocks(ctx context.Context, batch []reconcile.StockDecision) error {
	m.stockBatches = append(m.stockBatches, batch)
	if m.failStockAt > 0 && len(m.stockBatches) == m.failStockAt {
		return fmt.Errorf("boom")
	}
	return nil
}

func (m *mockUpdater) UpdatePrices(ctx context.Context, batch []reconcile.PriceDecision) error {
	m.priceBatches = append(m.priceBatches, batch)
	if m.failPriceAt > 0 && len(m.priceBatches) == m.failPriceAt {
		return fmt.Errorf("boom")
	}
	return nil
}

func testTarget() Target {
	return Target{Name: "test", StockBatchSize: 2, PriceBatchSize: 2}
}

func TestSync_PaginatesUntilEmptyCursor(t *testing.T) {
	catalog := &mockCatalog{pages: map[string]Page{
		"":   {OfferIDs: []string{"1", "2"}, NextCursor: "p2"},
		"p2": {OfferIDs: []string{"3"}, NextCursor: "p3"},
		"p3": {OfferIDs: []string{"4"}},
	}}
	updater := &mockUpdater{}

	o := New(testTarget(), catalog, updater, zap.NewNop())
	report, err := o.Sync(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "p2", "p3"}, catalog.calls)

	// All four offers unknown to the feed: zero stock each, no prices.
	require.Len(t, report.Stocks, 4)
	for i, id := range []string{"1", "2", "3", "4"} {
		assert.Equal(t, reconcile.StockDecision{OfferID: id, Stock: 0}, report.Stocks[i])
	}
	assert.Empty(t, report.NonEmptyStocks)
	assert.Empty(t, report.Prices)
}

func TestSync_SubmitsBoundedBatchesInOrder(t *testing.T) {
	catalog := &mockCatalog{pages: map[string]Page{
		"": {OfferIDs: []string{"a", "b", "c", "d", "e"}},
	}}
	updater := &mockUpdater{}
	remnants := []reconcile.RemnantRecord{
		{Code: "a", RawQuantity: "5", RawPrice: "100.00"},
		{Code: "c", RawQuantity: ">10", RawPrice: "200.00"},
		{Code: "e", RawQuantity: "1", RawPrice: "300.00"},
	}

	o := New(testTarget(), catalog, updater, zap.NewNop())
	report, err := o.Sync(context.Background(), remnants)
	require.NoError(t, err)

	// Five stock decisions chunked by 2: sizes 2, 2, 1, order preserved.
	require.Len(t, updater.stockBatches, 3)
	assert.Equal(t, []reconcile.StockDecision{
		{OfferID: "a", Stock: 5},
		{OfferID: "c", Stock: 100},
	}, updater.stockBatches[0])
	assert.Equal(t, []reconcile.StockDecision{
		{OfferID: "e", Stock: 0},
		{OfferID: "b", Stock: 0},
	}, updater.stockBatches[1])
	assert.Equal(t, []reconcile.StockDecision{
		{OfferID: "d", Stock: 0},
	}, updater.stockBatches[2])

	// Three matched prices chunked by 2.
	require.Len(t, updater.priceBatches, 2)
	assert.Equal(t, []reconcile.PriceDecision{
		{OfferID: "a", Price: 100},
		{OfferID: "c", Price: 200},
	}, updater.priceBatches[0])
	assert.Equal(t, []reconcile.PriceDecision{
		{OfferID: "e", Price: 300},
	}, updater.priceBatches[1])

	assert.Equal(t, []reconcile.StockDecision{
		{OfferID: "a", Stock: 5},
		{OfferID: "c", Stock: 100},
	}, report.NonEmptyStocks)
}

func TestSync_CatalogFailureAbortsBeforeSubmission(t *testing.T) {
	catalog := &mockCatalog{err: fmt.Errorf("listing down")}
	updater := &mockUpdater{}

	o := New(testTarget(), catalog, updater, zap.NewNop())
	_, err := o.Sync(context.Background(), nil)

	assert.ErrorIs(t, err, ErrCatalogFetch)
	assert.Empty(t, updater.stockBatches)
	assert.Empty(t, updater.priceBatches)
}

func TestSync_StockSubmissionFailureAbortsRemainingBatches(t *testing.T) {
	catalog := &mockCatalog{pages: map[string]Page{
		"": {OfferIDs: []string{"a", "b", "c", "d", "e"}},
	}}
	updater := &mockUpdater{failStockAt: 2}

	o := New(testTarget(), catalog, updater, zap.NewNop())
	_, err := o.Sync(context.Background(), nil)

	assert.ErrorIs(t, err, ErrSubmission)
	// The failing call was the last one made; no prices were submitted.
	assert.Len(t, updater.stockBatches, 2)
	assert.Empty(t, updater.priceBatches)
}

func TestSync_PriceSubmissionFailureAfterStocksApplied(t *testing.T) {
	catalog := &mockCatalog{pages: map[string]Page{
		"": {OfferIDs: []string{"a", "b", "c"}},
	}}
	updater := &mockUpdater{failPriceAt: 1}
	remnants := []reconcile.RemnantRecord{
		{Code: "a", RawQuantity: "2", RawPrice: "10.00"},
	}

	o := New(testTarget(), catalog, updater, zap.NewNop())
	_, err := o.Sync(context.Background(), remnants)

	assert.ErrorIs(t, err, ErrSubmission)
	// Stock batches already submitted are not rolled back.
	assert.Len(t, updater.stockBatches, 2)
}

func TestSync_EmptyCatalog(t *testing.T) {
	catalog := &mockCatalog{pages: map[string]Page{"": {}}}
	updater := &mockUpdater{}

	o := New(testTarget(), catalog, updater, zap.NewNop())
	report, err := o.Sync(context.Background(), []reconcile.RemnantRecord{
		{Code: "x", RawQuantity: "5", RawPrice: "1.00"},
	})
	require.NoError(t, err)

	assert.Empty(t, report.Stocks)
	assert.Empty(t, report.Prices)
	assert.Empty(t, updater.stockBatches)
	assert.Empty(t, updater.priceBatches)
}
