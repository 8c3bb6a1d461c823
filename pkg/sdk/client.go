package strdex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const apiBase = "/api/v1/strings"

// Client is the strdex HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// New creates a Client for the strdex API at baseURL
// (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: cfg.httpClient,
		userAgent:  cfg.userAgent,
	}
}

// CreateString analyzes and stores a new string.
func (c *Client) CreateString(ctx context.Context, value string) (Record, error) {
	var rec Record
	err := c.do(ctx, http.MethodPost, apiBase, map[string]string{"value": value}, &rec)
	return rec, err
}

// GetString returns the stored record for a value.
func (c *Client) GetString(ctx context.Context, value string) (Record, error) {
	var rec Record
	err := c.do(ctx, http.MethodGet, apiBase+"/"+url.PathEscape(value), nil, &rec)
	return rec, err
}

// DeleteString removes the record for a value.
func (c *Client) DeleteString(ctx context.Context, value string) error {
	return c.do(ctx, http.MethodDelete, apiBase+"/"+url.PathEscape(value), nil, nil)
}

// ListStrings returns a page of records matching the options,
// in insertion order.
func (c *Client) ListStrings(ctx context.Context, opts ListOptions) (ListResult, error) {
	q := url.Values{}
	if opts.IsPalindrome != nil {
		q.Set("isPalindrome", strconv.FormatBool(*opts.IsPalindrome))
	}
	if opts.MinLength != nil {
		q.Set("minLength", strconv.Itoa(*opts.MinLength))
	}
	if opts.MaxLength != nil {
		q.Set("maxLength", strconv.Itoa(*opts.MaxLength))
	}
	if opts.WordCount != nil {
		q.Set("wordCount", strconv.Itoa(*opts.WordCount))
	}
	if opts.ContainsCharacter != nil {
		q.Set("containsCharacter", *opts.ContainsCharacter)
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	path := apiBase
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var res ListResult
	err := c.do(ctx, http.MethodGet, path, nil, &res)
	return res, err
}

// Query translates a natural-language query into filters server-side
// and returns all matching records.
func (c *Client) Query(ctx context.Context, query string) (QueryResult, error) {
	var res QueryResult
	err := c.do(ctx, http.MethodPost, apiBase+"/query", map[string]string{"query": query}, &res)
	return res, err
}

// Health returns the service health report. A degraded service
// returns the report alongside a non-nil *APIError.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &h)
	return h, err
}

// do issues a request and decodes the response into out (if non-nil).
// Non-2xx responses are returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)

		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "internal_error"}
		var errResp struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if decErr := json.Unmarshal(raw, &errResp); decErr == nil && errResp.Code != "" {
			apiErr.Code = errResp.Code
			apiErr.Message = errResp.Message
		}
		// Degraded health still carries a useful body.
		if out != nil && resp.StatusCode == http.StatusServiceUnavailable {
			_ = json.Unmarshal(raw, out)
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
