// Package lookup issues HTTP GET requests against the external data-lookup
// services and unwraps their per-provider JSON envelopes.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/recondesk/lookup-bot/internal/report"
)

// ErrNoRecord reports a well-formed response that contained no matching
// record. It is distinct from transport, status, and decode failures, which
// the dispatcher surfaces as a generic server error.
var ErrNoRecord = errors.New("no record found")

const requestTimeout = 30 * time.Second

// Config holds the lookup service endpoint.
type Config struct {
	BaseURL string
}

// Client queries the seven lookup endpoints. Each endpoint nests its payload
// differently; the per-kind methods own that unwrapping.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a Client with a 30-second request timeout.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger.With(slog.String("component", "lookup")),
	}
}

// Mobile fetches subscriber details for a mobile number.
// Envelope: data.data.result[0].
func (c *Client) Mobile(ctx context.Context, number string) (report.Result, error) {
	body, err := c.get(ctx, "mobile", "number", number)
	if err != nil {
		return nil, err
	}
	inner, err := dig(body, "data", "data")
	if err != nil {
		return nil, err
	}
	return firstOfList(inner, "result")
}

// Aadhaar fetches identity details for an Aadhaar number.
// Envelope: data.result[0].
func (c *Client) Aadhaar(ctx context.Context, id string) (report.Result, error) {
	body, err := c.get(ctx, "aadhaar", "id", id)
	if err != nil {
		return nil, err
	}
	inner, err := dig(body, "data")
	if err != nil {
		return nil, err
	}
	return firstOfList(inner, "result")
}

// GST fetches registration details for a GSTIN. Envelope: data.data.
func (c *Client) GST(ctx context.Context, gstin string) (report.Result, error) {
	body, err := c.get(ctx, "gst", "number", gstin)
	if err != nil {
		return nil, err
	}
	inner, err := dig(body, "data")
	if err != nil {
		return nil, err
	}
	return objectAt(inner, "data")
}

// IFSC fetches branch details for a bank routing code. Envelope: data.
func (c *Client) IFSC(ctx context.Context, code string) (report.Result, error) {
	body, err := c.get(ctx, "ifsc", "code", code)
	if err != nil {
		return nil, err
	}
	return objectAt(body, "data")
}

// UPI fetches verification details for a payment address.
// Envelope: data.data.verify_chumts[0].
func (c *Client) UPI(ctx context.Context, id string) (report.Result, error) {
	body, err := c.get(ctx, "upi", "id", id)
	if err != nil {
		return nil, err
	}
	inner, err := dig(body, "data", "data")
	if err != nil {
		return nil, err
	}
	return firstOfList(inner, "verify_chumts")
}

// Fam fetches details for a family-payment address. Envelope: data.
func (c *Client) Fam(ctx context.Context, id string) (report.Result, error) {
	body, err := c.get(ctx, "upi2", "id", id)
	if err != nil {
		return nil, err
	}
	return objectAt(body, "data")
}

// Vehicle fetches registration details for a vehicle plate. The vehicle
// service skips the data wrapper: {success, address{...}}. A false success
// flag means no record, and a present record may still omit every field.
func (c *Client) Vehicle(ctx context.Context, reg string) (report.Result, error) {
	body, err := c.get(ctx, "vehicle", "registration", reg)
	if err != nil {
		return nil, err
	}
	success, _ := body["success"].(bool)
	if !success {
		return nil, ErrNoRecord
	}
	if addr, ok := body["address"].(map[string]any); ok {
		return report.Result(addr), nil
	}
	return report.Result{}, nil
}

func (c *Client) get(ctx context.Context, path, param, value string) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s/%s?%s=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), path, param, url.QueryEscape(value))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: build request: %w", path, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Android)")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching", slog.String("path", path))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lookup %s: unexpected status %d", path, resp.StatusCode)
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("lookup %s: decode response: %w", path, err)
	}
	return body, nil
}

// dig walks intermediate envelope levels. A missing or mistyped level is a
// provider contract violation, not an empty result.
func dig(m map[string]any, keys ...string) (map[string]any, error) {
	for _, key := range keys {
		next, ok := m[key].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("envelope missing %q", key)
		}
		m = next
	}
	return m, nil
}

// firstOfList extracts the first record of the terminal result list. An
// absent or empty list means no record matched.
func firstOfList(m map[string]any, key string) (report.Result, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, ErrNoRecord
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("envelope field %q is not a list", key)
	}
	if len(list) == 0 {
		return nil, ErrNoRecord
	}
	rec, ok := list[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("envelope field %q holds a non-object record", key)
	}
	return report.Result(rec), nil
}

// objectAt extracts a terminal result object. Absent or empty means no record.
func objectAt(m map[string]any, key string) (report.Result, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, ErrNoRecord
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("envelope field %q is not an object", key)
	}
	if len(obj) == 0 {
		return nil, ErrNoRecord
	}
	return report.Result(obj), nil
}
