package polymarket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"wallet-profiler/internal/interfaces"
	"wallet-profiler/internal/store"
	"wallet-profiler/internal/trace"
)

// Client talks to the Polymarket data API. All endpoints are public
// read-only JSON; responses arrive either as a bare list or wrapped in
// a {"data": [...]} envelope depending on endpoint version, and the
// client accepts both.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pageLimit  int
	limiter    *Limiter
	cache      *Cache

	posSizeThreshold float64
	posSortBy        string
	posSortDirection string
}

// Compile-time interface check
var _ interfaces.WalletDataSource = (*Client)(nil)

// NewClient creates a data-api client from config.
func NewClient(cfg *store.Config) *Client {
	c := &Client{
		baseURL: cfg.DataAPI.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.DataAPI.TimeoutSeconds) * time.Second,
		},
		pageLimit:        cfg.DataAPI.PageLimit,
		limiter:          NewLimiter(cfg.DataAPI.Burst, time.Duration(cfg.DataAPI.RequestDelayMs)*time.Millisecond),
		posSizeThreshold: cfg.DataAPI.Positions.SizeThreshold,
		posSortBy:        cfg.DataAPI.Positions.SortBy,
		posSortDirection: cfg.DataAPI.Positions.SortDirection,
	}
	if cfg.DataAPI.CacheTTLMinutes > 0 {
		c.cache = NewCache(cfg.DataAPI.CacheDir, time.Duration(cfg.DataAPI.CacheTTLMinutes)*time.Minute)
	}
	return c
}

// FetchTrades retrieves the wallet's trade fills.
func (c *Client) FetchTrades(ctx context.Context, wallet string) ([]interfaces.TradeRecord, error) {
	ctx, span := trace.StartSpan(ctx, "polymarket.FetchTrades")
	defer span.End()

	params := url.Values{}
	params.Set("user", wallet)
	params.Set("limit", strconv.Itoa(c.pageLimit))

	body, err := c.get(ctx, "/trades", params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trades: %w", err)
	}

	var recs []interfaces.TradeRecord
	if err := decodeItems(body, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode trades: %w", err)
	}
	return recs, nil
}

// FetchPositions retrieves the wallet's current open positions.
func (c *Client) FetchPositions(ctx context.Context, wallet string) ([]interfaces.PositionRecord, error) {
	ctx, span := trace.StartSpan(ctx, "polymarket.FetchPositions")
	defer span.End()

	params := url.Values{}
	params.Set("user", wallet)
	params.Set("limit", strconv.Itoa(c.pageLimit))
	params.Set("sizeThreshold", strconv.FormatFloat(c.posSizeThreshold, 'f', -1, 64))
	params.Set("sortBy", c.posSortBy)
	params.Set("sortDirection", c.posSortDirection)

	body, err := c.get(ctx, "/positions", params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch positions: %w", err)
	}

	var recs []interfaces.PositionRecord
	if err := decodeItems(body, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode positions: %w", err)
	}
	return recs, nil
}

// FetchClosedPositions retrieves the feed's closed-position report.
func (c *Client) FetchClosedPositions(ctx context.Context, wallet string) ([]interfaces.ClosedPositionRecord, error) {
	ctx, span := trace.StartSpan(ctx, "polymarket.FetchClosedPositions")
	defer span.End()

	params := url.Values{}
	params.Set("user", wallet)
	params.Set("limit", strconv.Itoa(c.pageLimit))

	body, err := c.get(ctx, "/closed-positions", params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch closed positions: %w", err)
	}

	var recs []interfaces.ClosedPositionRecord
	if err := decodeItems(body, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode closed positions: %w", err)
	}
	return recs, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	fullURL := c.baseURL + path + "?" + params.Encode()

	if c.cache != nil {
		return c.cache.GetOrFetch(fullURL, func() ([]byte, error) {
			return c.request(ctx, fullURL)
		})
	}
	return c.request(ctx, fullURL)
}

func (c *Client) request(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("data-api returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// decodeItems unmarshals either a bare JSON list or a {"data": [...]}
// envelope into dst (a pointer to a slice).
func decodeItems(body []byte, dst any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, dst)
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, dst)
}
