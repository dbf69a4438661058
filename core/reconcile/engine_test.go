package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileStocks_MatchedThenUnmatched(t *testing.T) {
	remnants := []RemnantRecord{
		{Code: "123", RawQuantity: ">10", RawPrice: "5990.00"},
	}

	stocks, err := ReconcileStocks(remnants, []string{"123", "456"})
	require.NoError(t, err)

	assert.Equal(t, []StockDecision{
		{OfferID: "123", Stock: 100},
		{OfferID: "456", Stock: 0},
	}, stocks)
}

func TestReconcileStocks_Completeness(t *testing.T) {
	// Every known offer id must appear exactly once, whatever the feed holds.
	remnants := []RemnantRecord{
		{Code: "b", RawQuantity: "3"},
		{Code: "unknown", RawQuantity: "9"},
		{Code: "d", RawQuantity: ">10"},
		{Code: "b", RawQuantity: "8"},
	}
	offerIDs := []string{"a", "b", "c", "d"}

	stocks, err := ReconcileStocks(remnants, offerIDs)
	require.NoError(t, err)
	require.Len(t, stocks, len(offerIDs))

	seen := make(map[string]int)
	for _, d := range stocks {
		seen[d.OfferID]++
	}
	for _, id := range offerIDs {
		assert.Equal(t, 1, seen[id], "offer %s", id)
	}
	assert.NotContains(t, seen, "unknown")
}

func TestReconcileStocks_DuplicateCodeFirstWins(t *testing.T) {
	remnants := []RemnantRecord{
		{Code: "1", RawQuantity: "5"},
		{Code: "1", RawQuantity: "9"},
	}

	stocks, err := ReconcileStocks(remnants, []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, []StockDecision{{OfferID: "1", Stock: 5}}, stocks)
}

func TestReconcileStocks_UnmatchedKeepSuppliedOrder(t *testing.T) {
	stocks, err := ReconcileStocks(nil, []string{"z", "a", "m"})
	require.NoError(t, err)
	assert.Equal(t, []StockDecision{
		{OfferID: "z", Stock: 0},
		{OfferID: "a", Stock: 0},
		{OfferID: "m", Stock: 0},
	}, stocks)
}

func TestReconcileStocks_InvalidQuantityAbortsPass(t *testing.T) {
	remnants := []RemnantRecord{
		{Code: "1", RawQuantity: "two"},
	}

	_, err := ReconcileStocks(remnants, []string{"1"})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestReconcileStocks_InvalidQuantityOnUnknownCodeIgnored(t *testing.T) {
	// Rows the marketplace does not list are never normalized.
	remnants := []RemnantRecord{
		{Code: "ghost", RawQuantity: "garbage"},
	}

	stocks, err := ReconcileStocks(remnants, []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, []StockDecision{{OfferID: "1", Stock: 0}}, stocks)
}

func TestReconcilePrices_MatchedOnly(t *testing.T) {
	remnants := []RemnantRecord{
		{Code: "123", RawQuantity: ">10", RawPrice: "5'990.00 руб."},
	}

	prices, err := ReconcilePrices(remnants, []string{"123", "456"})
	require.NoError(t, err)
	assert.Equal(t, []PriceDecision{{OfferID: "123", Price: 5990}}, prices)
}

func TestReconcilePrices_DuplicateCodeFirstWins(t *testing.T) {
	remnants := []RemnantRecord{
		{Code: "7", RawPrice: "100.00"},
		{Code: "7", RawPrice: "200.00"},
	}

	prices, err := ReconcilePrices(remnants, []string{"7"})
	require.NoError(t, err)
	assert.Equal(t, []PriceDecision{{OfferID: "7", Price: 100}}, prices)
}

func TestReconcilePrices_InvalidPriceAbortsPass(t *testing.T) {
	remnants := []RemnantRecord{
		{Code: "1", RawPrice: "договорная"},
	}

	_, err := ReconcilePrices(remnants, []string{"1"})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	remnants := []RemnantRecord{
		{Code: "a", RawQuantity: "2", RawPrice: "10.00"},
		{Code: "b", RawQuantity: "3", RawPrice: "20.00"},
	}
	offerIDs := []string{"a", "b", "c"}

	firstStocks, err := ReconcileStocks(remnants, offerIDs)
	require.NoError(t, err)
	firstPrices, err := ReconcilePrices(remnants, offerIDs)
	require.NoError(t, err)

	// Inputs untouched, reruns identical.
	assert.Equal(t, []string{"a", "b", "c"}, offerIDs)

	secondStocks, err := ReconcileStocks(remnants, offerIDs)
	require.NoError(t, err)
	secondPrices, err := ReconcilePrices(remnants, offerIDs)
	require.NoError(t, err)

	assert.Equal(t, firstStocks, secondStocks)
	assert.Equal(t, firstPrices, secondPrices)
}
