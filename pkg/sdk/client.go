package faqdex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the faqdex SDK entry point.
type Client struct {
	baseURL   string
	apiKey    string
	sessionID string
	hc        *http.Client
}

// New creates a faqdex Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{
		sessionID:  "anon",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    cfg.apiKey,
		sessionID: cfg.sessionID,
		hc:        cfg.httpClient,
	}
}

// Ask sends a question and returns the server's reply.
func (c *Client) Ask(ctx context.Context, question string) (Reply, error) {
	var reply Reply
	err := c.do(ctx, http.MethodPost, "/chat", chatRequest{Question: question}, &reply)
	return reply, err
}

// CreateRecord stores a record. Keywords are derived server-side from the
// question text when omitted.
func (c *Client) CreateRecord(ctx context.Context, rec Record) (Record, error) {
	var out Record
	err := c.do(ctx, http.MethodPost, "/records", rec, &out)
	return out, err
}

// ImportRecords stores a batch of records, one result per item.
func (c *Client) ImportRecords(ctx context.Context, records []Record) ([]ImportResult, error) {
	var out importResponse
	if err := c.do(ctx, http.MethodPost, "/records/import", importRequest{Records: records}, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// GetRecord fetches a record by ID.
func (c *Client) GetRecord(ctx context.Context, id string) (Record, error) {
	var out Record
	err := c.do(ctx, http.MethodGet, "/records/"+id, nil, &out)
	return out, err
}

// ListRecords returns all records.
func (c *Client) ListRecords(ctx context.Context) ([]Record, error) {
	var out listResponse
	if err := c.do(ctx, http.MethodGet, "/records", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// DeleteRecord removes a record.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/records/"+id, nil, nil)
}

// Health fetches the server health report.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var out Health
	err := c.do(ctx, http.MethodGet, "/health", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("X-Session-ID", c.sessionID)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return &APIError{StatusCode: resp.StatusCode, Code: er.Code, Message: er.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
