// Package server holds the configuration for serve mode: the HTTP listener
// exposing health and report endpoints, and the interval scheduler that
// triggers sync runs.
package server
