// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Sync runs attach a run_id field so every log
// line of one run can be correlated; in serve mode the WithRayID helper
// attaches the per-request ray id from the Fiber context the same way.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
package logger
