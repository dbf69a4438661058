// Package reconcile implements the reconciliation engine that turns a
// merchant's remnants feed into marketplace-ready stock and price updates.
//
// The engine reconciles feed rows against the set of offer ids a marketplace
// already knows about: every known offer receives exactly one stock decision
// (zero stock when the feed does not mention it), and every matched offer
// receives one price decision. Feed rows for products the marketplace does not
// list contribute nothing.
//
// # Components
//
//  1. Normalizers: translate the human-authored quantity and price tokens of
//     the feed (">10", "5'990.00 руб.") into integer values the update APIs
//     accept. Normalization is a pure function of the input string.
//
//  2. Engine: single-pass matching with consumption semantics, where the first feed
//     row for an offer id wins, later duplicates are inert.
//
//  3. Batcher: splits decision lists into contiguous, order-preserving chunks
//     bounded by a marketplace's maximum batch size.
//
// The package performs no I/O and holds no state between calls; callers own
// the collaborators that fetch catalogs and submit batches.
package reconcile
