// Package market implements the Yandex.Market partner API collaborators for
// the sync orchestrator: campaign offer-mapping listing and stock/price
// updates.
//
// A merchant typically runs two campaigns (FBS and DBS) against the same
// token; each campaign gets its own Client carrying the campaign id and the
// warehouse id that stock updates must be tagged with. No retries are
// performed; failures surface as errors and end the current sync run.
package market
