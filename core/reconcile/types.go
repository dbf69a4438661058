package reconcile

import "errors"

// RemnantRecord is one row of the merchant's remnants feed.
// Values are kept exactly as authored; normalization happens on demand.
type RemnantRecord struct {
	// Code is the vendor SKU, matched against marketplace offer ids.
	Code string `json:"code"`

	// RawQuantity is the human-authored stock token, e.g. "7" or ">10".
	RawQuantity string `json:"raw_quantity"`

	// RawPrice is the currency-formatted price, e.g. "5'990.00 руб.".
	RawPrice string `json:"raw_price"`
}

// StockDecision is the stock value to push for a single offer.
// Reconciliation emits exactly one per offer id known to the marketplace.
type StockDecision struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

// PriceDecision is the price value to push for a single offer.
// Only offers matched by a feed row receive one.
type PriceDecision struct {
	OfferID string `json:"offer_id"`
	Price   int    `json:"price"`
}

var (
	// ErrInvalidQuantity reports a quantity token that is neither the ample-stock
	// sentinel nor an exact base-10 integer.
	ErrInvalidQuantity = errors.New("invalid quantity format")

	// ErrInvalidPrice reports a price token with no parsable digits.
	ErrInvalidPrice = errors.New("invalid price format")
)
