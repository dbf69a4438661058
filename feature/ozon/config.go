package ozon

// Config holds credentials and endpoint identity for the Ozon Seller API.
type Config struct {
	// Enabled toggles the ozon target for sync runs.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// BaseURL is the Seller API endpoint.
	BaseURL string `mapstructure:"base_url" default:"https://api-seller.ozon.ru"`
	// ClientID identifies the seller account.
	ClientID string `mapstructure:"client_id" default:""`
	// ApiKey is the seller API token.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds a single API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Update API constraints of the Seller API, external to the core.
const (
	// StockBatchSize bounds one stock import call.
	StockBatchSize = 100
	// PriceBatchSize bounds one price import call.
	PriceBatchSize = 1000

	// listLimit is the page size for product listing.
	listLimit = 1000
)
