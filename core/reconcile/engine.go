package reconcile

import "fmt"

// ReconcileStocks decides a stock value for every offer id the marketplace
// knows about.
//
// The pass walks remnants in feed order and consumes offer ids from a working
// set as they match: the first row for an id wins and later duplicates are
// inert. Offers never mentioned by the feed are appended afterwards with zero
// stock, in the order the ids were supplied. The result therefore contains
// exactly one decision per known offer id.
//
// The caller's offerIDs slice is never mutated; the working set is an internal
// copy, so repeated calls over the same inputs produce identical output.
func ReconcileStocks(remnants []RemnantRecord, offerIDs []string) ([]StockDecision, error) {
	remaining := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		remaining[id] = struct{}{}
	}

	decisions := make([]StockDecision, 0, len(offerIDs))
	for _, rec := range remnants {
		if _, known := remaining[rec.Code]; !known {
			continue
		}

		stock, err := NormalizeQuantity(rec.RawQuantity)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", rec.Code, err)
		}

		decisions = append(decisions, StockDecision{OfferID: rec.Code, Stock: stock})
		delete(remaining, rec.Code)
	}

	// Whatever the feed did not mention is out of stock.
	for _, id := range offerIDs {
		if _, unmatched := remaining[id]; unmatched {
			decisions = append(decisions, StockDecision{OfferID: id, Stock: 0})
		}
	}

	return decisions, nil
}

// ReconcilePrices decides a price for every offer matched by a feed row.
//
// Matching follows the same consumption semantics as ReconcileStocks, against
// this call's own copy of the id set. Offers absent from the feed get no entry;
// stale prices are left untouched rather than zeroed.
func ReconcilePrices(remnants []RemnantRecord, offerIDs []string) ([]PriceDecision, error) {
	remaining := make(map[string]struct{}, len(offerIDs))
	for _, id := range offerIDs {
		remaining[id] = struct{}{}
	}

	decisions := make([]PriceDecision, 0, len(remnants))
	for _, rec := range remnants {
		if _, known := remaining[rec.Code]; !known {
			continue
		}

		price, err := NormalizePrice(rec.RawPrice)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", rec.Code, err)
		}

		decisions = append(decisions, PriceDecision{OfferID: rec.Code, Price: price})
		delete(remaining, rec.Code)
	}

	return decisions, nil
}
