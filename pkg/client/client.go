// Package client is the typed consumer of the analytics API. Reads are
// cached per path and filter until invalidated; every response body is
// checked against the record shape before it is returned. The cache holds
// checked bodies, so each read decodes a value the caller owns.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/schema"
)

const (
	PathCrops             = "/api/crops"
	PathCrop              = "/api/crops/:id"
	PathCropResources     = "/api/crop-resources"
	PathMarketTrends      = "/api/market-trends"
	PathEnvironmentalLogs = "/api/environmental-logs"
	PathLabor             = "/api/labor"
)

type Client struct {
	base   *url.URL
	http   *http.Client
	notify Notifier
	log    *slog.Logger

	cache *lru.Cache[string, []byte]
}

// CacheSize bounds the number of distinct reads kept.
const CacheSize = 256

type Option func(*Client)

// WithHTTPClient replaces the default client. Its cookie jar, if any, is kept.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

func WithNotifier(n Notifier) Option { return func(c *Client) { c.notify = n } }

func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.log = l } }

// New creates a client for the API rooted at baseURL. Cookies set by the
// server are sent back on later requests.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q needs scheme and host", baseURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	cache, err := lru.New[string, []byte](CacheSize)
	if err != nil {
		return nil, err
	}
	c := &Client{
		base:   u,
		http:   &http.Client{Timeout: 15 * time.Second, Jar: jar},
		notify: nopNotifier{},
		log:    slog.Default(),
		cache:  cache,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Key is the cache key of a read: the route path plus its argument.
func Key(path, arg string) string { return path + "|" + arg }

func filterArg(cropID *int) string {
	if cropID == nil {
		return ""
	}
	return strconv.Itoa(*cropID)
}

// Invalidate drops every cached read of path, whatever its argument.
func (c *Client) Invalidate(path string) {
	prefix := path + "|"
	for _, k := range c.cache.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Remove(k)
		}
	}
}

// Cached reports whether key currently holds a value.
func (c *Client) Cached(key string) bool {
	return c.cache.Contains(key)
}

func (c *Client) Crops(ctx context.Context) ([]entities.Crop, error) {
	return query[[]entities.Crop](ctx, c, request{
		key: Key(PathCrops, ""), path: PathCrops,
		shape: schema.CropShape, list: true, label: "crops.list", what: "crops",
	})
}

// Crop returns nil without error when the crop does not exist. id 0 is
// treated as "no crop selected" and makes no request.
func (c *Client) Crop(ctx context.Context, id int) (*entities.Crop, error) {
	if id == 0 {
		return nil, nil
	}
	arg := strconv.Itoa(id)
	return query[*entities.Crop](ctx, c, request{
		key: Key(PathCrop, arg), path: PathCrops + "/" + arg,
		shape: schema.CropShape, label: "crops.get(" + arg + ")", what: "crop", nilOn404: true,
	})
}

func (c *Client) CropResources(ctx context.Context, cropID *int) ([]entities.CropResource, error) {
	return query[[]entities.CropResource](ctx, c, listRequest(PathCropResources, cropID,
		schema.CropResourceShape, "cropResources.list", "crop resources"))
}

func (c *Client) MarketTrends(ctx context.Context, cropID *int) ([]entities.MarketTrend, error) {
	return query[[]entities.MarketTrend](ctx, c, listRequest(PathMarketTrends, cropID,
		schema.MarketTrendShape, "marketTrends.list", "market trends"))
}

func (c *Client) EnvironmentalLogs(ctx context.Context, cropID *int) ([]entities.EnvironmentalLog, error) {
	return query[[]entities.EnvironmentalLog](ctx, c, listRequest(PathEnvironmentalLogs, cropID,
		schema.EnvironmentalLogShape, "environmentalLogs.list", "environmental logs"))
}

func (c *Client) Labor(ctx context.Context) ([]entities.LaborAvailability, error) {
	return query[[]entities.LaborAvailability](ctx, c, request{
		key: Key(PathLabor, ""), path: PathLabor,
		shape: schema.LaborAvailabilityShape, list: true, label: "laborAvailability.list", what: "labor availability",
	})
}

// CreateCrop checks in locally, posts it and on success drops the cached
// crop lists. The notifier hears about both outcomes.
func (c *Client) CreateCrop(ctx context.Context, in entities.InsertCrop) (*entities.Crop, error) {
	crop, err := c.createCrop(ctx, in)
	if err != nil {
		c.notify.Notify(Notification{Title: "Error", Description: err.Error(), Destructive: true})
		return nil, err
	}
	c.Invalidate(PathCrops)
	c.notify.Notify(Notification{Title: "Success", Description: "Crop created successfully"})
	return crop, nil
}

func (c *Client) createCrop(ctx context.Context, in entities.InsertCrop) (*entities.Crop, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	var checked entities.InsertCrop
	if fe := schema.Decode(schema.InsertCropShape, body, &checked); fe != nil {
		return nil, &ValidationError{Message: fe.Message, Field: fe.Field}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(PathCrops, nil), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "create crop", Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: "create crop", Status: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		if fe := schema.ErrorShape.Check(data); fe != nil {
			return nil, c.shapeError("crops.create.400", fe)
		}
		var ve ValidationError
		if err := json.Unmarshal(data, &ve); err != nil {
			return nil, err
		}
		return nil, &ve
	case resp.StatusCode/100 != 2:
		return nil, &FetchError{Op: "create crop", Status: resp.StatusCode}
	}

	if fe := schema.CropShape.Check(data); fe != nil {
		return nil, c.shapeError("crops.create", fe)
	}
	var crop entities.Crop
	if err := json.Unmarshal(data, &crop); err != nil {
		return nil, err
	}
	return &crop, nil
}

type request struct {
	key      string
	path     string
	params   url.Values
	shape    schema.Shape
	list     bool
	label    string
	what     string
	nilOn404 bool
}

func listRequest(path string, cropID *int, shape schema.Shape, label, what string) request {
	arg := filterArg(cropID)
	var params url.Values
	if arg != "" {
		params = url.Values{"cropId": {arg}}
	}
	return request{key: Key(path, arg), path: path, params: params, shape: shape, list: true, label: label, what: what}
}

func query[T any](ctx context.Context, c *Client, r request) (T, error) {
	var zero T
	if data, ok := c.cache.Get(r.key); ok {
		var out T
		if err := json.Unmarshal(data, &out); err != nil {
			return zero, err
		}
		return out, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(r.path, r.params), nil)
	if err != nil {
		return zero, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return zero, &FetchError{Op: "fetch " + r.what, Err: err}
	}
	defer resp.Body.Close()

	if r.nilOn404 && resp.StatusCode == http.StatusNotFound {
		c.cache.Add(r.key, []byte("null"))
		return zero, nil
	}
	if resp.StatusCode/100 != 2 {
		return zero, &FetchError{Op: "fetch " + r.what, Status: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &FetchError{Op: "fetch " + r.what, Status: resp.StatusCode, Err: err}
	}

	check := r.shape.Check
	if r.list {
		check = r.shape.CheckList
	}
	if fe := check(data); fe != nil {
		return zero, c.shapeError(r.label, fe)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, c.shapeError(r.label, &schema.FieldError{Message: err.Error()})
	}
	c.cache.Add(r.key, data)
	return out, nil
}

func (c *Client) shapeError(label string, fe *schema.FieldError) error {
	c.log.Error("[schema] "+label+" validation failed", "field", fe.Field, "message", fe.Message)
	return &ShapeError{Label: label, Err: fe}
}

func (c *Client) url(path string, params url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + path
	u.RawQuery = params.Encode()
	return u.String()
}
