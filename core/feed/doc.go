// Package feed loads the merchant's remnants feed: a periodically published
// zip archive holding one delimited spreadsheet export of watch stock levels
// and prices.
//
// The archive can be fetched over HTTP (the merchant's public URL) or from an
// S3 bucket the merchant drops it into; both sit behind the Fetcher interface.
// Load extracts the first file of the archive and parses it into
// reconcile.RemnantRecord rows. The published sheet carries a block of banner
// rows above the column header, so the parser skips a configurable number of
// lines before reading the header.
package feed
