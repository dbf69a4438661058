// Package syncer orchestrates one marketplace synchronization run.
//
// For a single target it fetches the full offer catalog through a paginated
// Catalog collaborator, reconciles the remnants feed against it, splits the
// resulting decisions into the target's batch bounds and submits each batch
// through an Updater collaborator, in order. The run is strictly sequential:
// one page request at a time, one batch submission at a time, no retries.
//
// A failed catalog fetch aborts the run before anything is submitted; a failed
// submission aborts the remaining batches but already-submitted batches stay
// applied; there is no transactional guarantee across batches. Errors are
// wrapped with ErrCatalogFetch or ErrSubmission and propagate to the caller,
// which decides whether to continue with the next target.
package syncer
