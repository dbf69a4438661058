// Package config loads the application configuration from environment
// variables and an optional .env file.
//
// Defaults come from `default` struct tags on the partial config structs,
// bound into Viper via reflection so AutomaticEnv can override them. Nested
// keys map onto underscore-separated environment variables, e.g.
// MARKET_FBS_CAMPAIGN_ID -> market.fbs_campaign_id.
package config
