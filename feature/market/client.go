package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"marketsync/core/reconcile"
	"marketsync/core/syncer"
)

// Client talks to the Yandex.Market partner API for one campaign.
// It implements syncer.Catalog and syncer.Updater.
type Client struct {
	cfg         Config
	campaignID  string
	warehouseID string
	name        string
	http        *http.Client

	// now is swappable in tests; stock updates carry an updatedAt stamp.
	now func() time.Time
}

// NewFBSClient creates a client for the FBS campaign of the configuration.
func NewFBSClient(cfg Config) *Client {
	return newClient(cfg, "market-fbs", cfg.FBSCampaignID, cfg.FBSWarehouseID)
}

// NewDBSClient creates a client for the DBS campaign of the configuration.
func NewDBSClient(cfg Config) *Client {
	return newClient(cfg, "market-dbs", cfg.DBSCampaignID, cfg.DBSWarehouseID)
}

func newClient(cfg Config, name, campaignID, warehouseID string) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		cfg:         cfg,
		campaignID:  campaignID,
		warehouseID: warehouseID,
		name:        name,
		http:        &http.Client{Timeout: time.Duration(timeout) * time.Second},
		now:         time.Now,
	}
}

// Target describes this campaign as a sync destination with its batch bounds.
func (c *Client) Target() syncer.Target {
	return syncer.Target{
		Name:           c.name,
		StockBatchSize: StockBatchSize,
		PriceBatchSize: PriceBatchSize,
	}
}

type listResponse struct {
	Result struct {
		OfferMappingEntries []struct {
			Offer struct {
				ShopSku string `json:"shopSku"`
			} `json:"offer"`
		} `json:"offerMappingEntries"`
		Paging struct {
			NextPageToken string `json:"nextPageToken"`
		} `json:"paging"`
	} `json:"result"`
}

// ListPage fetches one page of the campaign's offer mappings.
// The paging object's nextPageToken maps directly onto the cursor contract.
func (c *Client) ListPage(ctx context.Context, cursor string) (syncer.Page, error) {
	query := url.Values{"limit": {strconv.Itoa(listLimit)}}
	if cursor != "" {
		query.Set("page_token", cursor)
	}
	path := fmt.Sprintf("/campaigns/%s/offer-mapping-entries?%s", c.campaignID, query.Encode())

	var resp listResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return syncer.Page{}, err
	}

	ids := make([]string, 0, len(resp.Result.OfferMappingEntries))
	for _, entry := range resp.Result.OfferMappingEntries {
		ids = append(ids, entry.Offer.ShopSku)
	}
	return syncer.Page{OfferIDs: ids, NextCursor: resp.Result.Paging.NextPageToken}, nil
}

type stockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

type skuStock struct {
	Sku         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []stockItem `json:"items"`
}

// UpdateStocks pushes one batch of warehouse-tagged stock levels.
func (c *Client) UpdateStocks(ctx context.Context, batch []reconcile.StockDecision) error {
	updatedAt := c.now().UTC().Truncate(time.Second).Format(time.RFC3339)

	skus := make([]skuStock, 0, len(batch))
	for _, d := range batch {
		skus = append(skus, skuStock{
			Sku:         d.OfferID,
			WarehouseID: c.warehouseID,
			Items: []stockItem{{
				Count:     d.Stock,
				Type:      "FIT",
				UpdatedAt: updatedAt,
			}},
		})
	}

	path := fmt.Sprintf("/campaigns/%s/offers/stocks", c.campaignID)
	return c.do(ctx, http.MethodPut, path, map[string]any{"skus": skus}, nil)
}

type offerPrice struct {
	ID    string     `json:"id"`
	Price priceValue `json:"price"`
}

type priceValue struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

// UpdatePrices pushes one batch of offer prices.
func (c *Client) UpdatePrices(ctx context.Context, batch []reconcile.PriceDecision) error {
	offers := make([]offerPrice, 0, len(batch))
	for _, d := range batch {
		offers = append(offers, offerPrice{
			ID:    d.OfferID,
			Price: priceValue{Value: d.Price, CurrencyID: "RUR"},
		})
	}

	path := fmt.Sprintf("/campaigns/%s/offer-prices/updates", c.campaignID)
	return c.do(ctx, http.MethodPost, path, map[string]any{"offers": offers}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request for %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status from %s: %s", path, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}
