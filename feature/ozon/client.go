package ozon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"marketsync/core/reconcile"
	"marketsync/core/syncer"
)

// Client talks to the Ozon Seller API.
// It implements syncer.Catalog and syncer.Updater.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Seller API client from the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Target describes the ozon destination with its batch bounds.
func (c *Client) Target() syncer.Target {
	return syncer.Target{
		Name:           "ozon",
		StockBatchSize: StockBatchSize,
		PriceBatchSize: PriceBatchSize,
	}
}

type listRequest struct {
	Filter listFilter `json:"filter"`
	LastID string     `json:"last_id"`
	Limit  int        `json:"limit"`
}

type listFilter struct {
	Visibility string `json:"visibility"`
}

type listResponse struct {
	Result struct {
		Items []struct {
			OfferID string `json:"offer_id"`
		} `json:"items"`
		Total  int    `json:"total"`
		LastID string `json:"last_id"`
	} `json:"result"`
}

// ListPage fetches one page of the product catalog.
//
// The Seller API signals continuation with a last_id cursor; a short page
// means the catalog is exhausted and is mapped to an empty NextCursor.
func (c *Client) ListPage(ctx context.Context, cursor string) (syncer.Page, error) {
	req := listRequest{
		Filter: listFilter{Visibility: "ALL"},
		LastID: cursor,
		Limit:  listLimit,
	}

	var resp listResponse
	if err := c.post(ctx, "/v2/product/list", req, &resp); err != nil {
		return syncer.Page{}, err
	}

	ids := make([]string, 0, len(resp.Result.Items))
	for _, item := range resp.Result.Items {
		ids = append(ids, item.OfferID)
	}

	next := resp.Result.LastID
	if len(ids) < listLimit {
		next = ""
	}
	return syncer.Page{OfferIDs: ids, NextCursor: next}, nil
}

type stockItem struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

// UpdateStocks imports one batch of stock levels.
func (c *Client) UpdateStocks(ctx context.Context, batch []reconcile.StockDecision) error {
	items := make([]stockItem, 0, len(batch))
	for _, d := range batch {
		items = append(items, stockItem{OfferID: d.OfferID, Stock: d.Stock})
	}
	return c.post(ctx, "/v1/product/import/stocks", map[string]any{"stocks": items}, nil)
}

type priceItem struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

// UpdatePrices imports one batch of prices. The API wants prices as strings.
func (c *Client) UpdatePrices(ctx context.Context, batch []reconcile.PriceDecision) error {
	items := make([]priceItem, 0, len(batch))
	for _, d := range batch {
		items = append(items, priceItem{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      "RUB",
			OfferID:           d.OfferID,
			OldPrice:          "0",
			Price:             strconv.Itoa(d.Price),
		})
	}
	return c.post(ctx, "/v1/product/import/prices", map[string]any{"prices": items}, nil)
}

// post sends a JSON request and decodes the response into out when non-nil.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Client-Id", c.cfg.ClientID)
	req.Header.Set("Api-Key", c.cfg.ApiKey)
	req.Header.Set("Content-Type", "application/json")

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
