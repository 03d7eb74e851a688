package woocommerce

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pharmaplus-backend/pkg/logger"

	"github.com/goccy/go-json"
)

// HTTPClient is the production StoreAPI backed by the WooCommerce and
// WordPress REST APIs. Authentication uses the consumer key/secret as
// query credentials (the store is served over HTTPS). The client
// carries a bounded timeout and no retries: a failed zone fetch is
// degraded to an empty snapshot by the caller, and the next page load
// retries naturally.
type HTTPClient struct {
	baseURL        string // e.g. https://store.example.com
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
}

// NewHTTPClient creates the production store client.
func NewHTTPClient(baseURL, consumerKey, consumerSecret string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:        baseURL,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) wcURL(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("consumer_key", c.consumerKey)
	query.Set("consumer_secret", c.consumerSecret)
	return fmt.Sprintf("%s/wp-json/wc/v3%s?%s", c.baseURL, path, query.Encode())
}

func (c *HTTPClient) wpURL(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	return fmt.Sprintf("%s/wp-json/wp/v2%s?%s", c.baseURL, path, query.Encode())
}

func (c *HTTPClient) getJSON(ctx context.Context, path, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	logger.UpstreamFetch(path, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("store returned status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) postJSON(ctx context.Context, path, rawURL string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	logger.UpstreamFetch(path, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("store returned status %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *HTTPClient) ListShippingZones(ctx context.Context) ([]Zone, error) {
	var zones []Zone
	if err := c.getJSON(ctx, "/shipping/zones", c.wcURL("/shipping/zones", nil), &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (c *HTTPClient) ListZoneLocations(ctx context.Context, zoneID int) ([]ZoneLocation, error) {
	var locations []ZoneLocation
	path := fmt.Sprintf("/shipping/zones/%d/locations", zoneID)
	if err := c.getJSON(ctx, path, c.wcURL(path, nil), &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *HTTPClient) ListZoneMethods(ctx context.Context, zoneID int) ([]ZoneMethod, error) {
	var methods []ZoneMethod
	path := fmt.Sprintf("/shipping/zones/%d/methods", zoneID)
	if err := c.getJSON(ctx, path, c.wcURL(path, nil), &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

func (c *HTTPClient) ListProducts(ctx context.Context, page, perPage int, search, category string) ([]ProductJSON, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("status", "publish")
	if search != "" {
		query.Set("search", search)
	}
	if category != "" {
		query.Set("category", category)
	}

	var products []ProductJSON
	if err := c.getJSON(ctx, "/products", c.wcURL("/products", query), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) GetProductBySlug(ctx context.Context, slug string) (*ProductJSON, error) {
	query := url.Values{}
	query.Set("slug", slug)

	var products []ProductJSON
	if err := c.getJSON(ctx, "/products", c.wcURL("/products", query), &products); err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

func (c *HTTPClient) GetProduct(ctx context.Context, id int64) (*ProductJSON, error) {
	var product ProductJSON
	path := fmt.Sprintf("/products/%d", id)
	if err := c.getJSON(ctx, path, c.wcURL(path, nil), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]CategoryJSON, error) {
	query := url.Values{}
	query.Set("per_page", "100")
	query.Set("hide_empty", "true")

	var categories []CategoryJSON
	if err := c.getJSON(ctx, "/products/categories", c.wcURL("/products/categories", query), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) GetPageBySlug(ctx context.Context, slug string) (*PageJSON, error) {
	query := url.Values{}
	query.Set("slug", slug)

	var pages []PageJSON
	if err := c.getJSON(ctx, "/pages", c.wpURL("/pages", query), &pages); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, nil
	}
	return &pages[0], nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, req *OrderRequest) (*OrderJSON, error) {
	var order OrderJSON
	if err := c.postJSON(ctx, "/orders", c.wcURL("/orders", nil), req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
