package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "http", cfg.Feed.Source)
	assert.Equal(t, ";", cfg.Feed.Separator)
	assert.Equal(t, 17, cfg.Feed.HeaderSkip)
	assert.Equal(t, "Код", cfg.Feed.CodeColumn)
	assert.Equal(t, "https://api-seller.ozon.ru", cfg.Ozon.BaseURL)
	assert.Equal(t, "https://api.partner.market.yandex.ru", cfg.Market.BaseURL)
	assert.False(t, cfg.Ozon.Enabled)
	assert.False(t, cfg.Market.Enabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OZON_ENABLED", "true")
	t.Setenv("OZON_CLIENT_ID", "client-9")
	t.Setenv("MARKET_FBS_CAMPAIGN_ID", "camp-1")
	t.Setenv("FEED_HEADER_SKIP", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Ozon.Enabled)
	assert.Equal(t, "client-9", cfg.Ozon.ClientID)
	assert.Equal(t, "camp-1", cfg.Market.FBSCampaignID)
	assert.Equal(t, 5, cfg.Feed.HeaderSkip)
	assert.Equal(t, "debug", cfg.Log.Level)
}
