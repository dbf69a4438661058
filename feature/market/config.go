package market

// Config holds credentials and campaign identity for the Yandex.Market
// partner API. FBS and DBS campaigns share the token but differ in campaign
// and warehouse ids.
type Config struct {
	// Enabled toggles the market targets for sync runs.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// BaseURL is the partner API endpoint.
	BaseURL string `mapstructure:"base_url" default:"https://api.partner.market.yandex.ru"`
	// Token is the OAuth access token sent as a Bearer header.
	Token string `mapstructure:"token" default:""`
	// FBSCampaignID is the campaign for the FBS delivery scheme.
	FBSCampaignID string `mapstructure:"fbs_campaign_id" default:""`
	// DBSCampaignID is the campaign for the DBS delivery scheme.
	DBSCampaignID string `mapstructure:"dbs_campaign_id" default:""`
	// FBSWarehouseID tags FBS stock updates.
	FBSWarehouseID string `mapstructure:"fbs_warehouse_id" default:""`
	// DBSWarehouseID tags DBS stock updates.
	DBSWarehouseID string `mapstructure:"dbs_warehouse_id" default:""`
	// TimeoutSeconds bounds a single API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Update API constraints of the partner API, external to the core.
const (
	// StockBatchSize bounds one stock update call.
	StockBatchSize = 2000
	// PriceBatchSize bounds one price update call.
	PriceBatchSize = 500

	// listLimit is the page size for offer-mapping listing.
	listLimit = 200
)
