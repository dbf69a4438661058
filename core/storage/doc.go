// Package storage provides the S3-compatible object storage client used as an
// alternative source for the remnants feed archive.
//
// The Client interface wraps the subset of Minio operations the application
// needs, so feed loading can be tested against a mock without a live bucket.
// Connection setup uses strict transport timeouts; per-operation deadlines
// come from the caller's context.
package storage
