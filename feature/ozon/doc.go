// Package ozon implements the Ozon Seller API collaborators consumed by the
// sync orchestrator: paginated product listing and stock/price import calls.
//
// Authentication uses the static Client-Id / Api-Key header pair. The client
// performs no retries; any transport failure or non-2xx response surfaces as
// an error and is fatal to the current sync run.
package ozon
