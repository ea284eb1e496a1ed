package grist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmdatafocus/payroll_sync/config"
)

// Client talks to one Grist document over the REST API.
type Client struct {
	baseURL string
	docID   string
	apiKey  string
	http    *http.Client
	limiter <-chan time.Time
}

func NewClient(cfg *config.Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("grist api key is empty")
	}
	if strings.TrimSpace(cfg.DocID) == "" {
		return nil, errors.New("grist doc id is empty")
	}
	rateLimitPerMin := cfg.RateLimitPerMin
	if rateLimitPerMin <= 0 {
		rateLimitPerMin = 120
	}
	interval := time.Minute / time.Duration(rateLimitPerMin)

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		docID:   cfg.DocID,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: time.Tick(interval),
	}, nil
}

// Columns returns the column ids of a table.
func (c *Client) Columns(ctx context.Context, table string) ([]string, error) {
	var parsed columnsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/tables/"+table+"/columns", nil, nil, &parsed); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(parsed.Columns))
	for _, col := range parsed.Columns {
		ids = append(ids, col.ID)
	}
	return ids, nil
}

// Records fetches records of a table, optionally filtered by column values,
// e.g. {"Month_Year": ["Mar-24"]}.
func (c *Client) Records(ctx context.Context, table string, filter map[string][]string) ([]Record, error) {
	params := url.Values{}
	if len(filter) > 0 {
		encoded, err := json.Marshal(filter)
		if err != nil {
			return nil, err
		}
		params.Set("filter", string(encoded))
	}

	var parsed recordsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/tables/"+table+"/records", params, nil, &parsed); err != nil {
		return nil, err
	}
	return parsed.Records, nil
}

// Insert creates records in bulk and returns them with their new ids.
func (c *Client) Insert(ctx context.Context, table string, fields []Fields) ([]Record, error) {
	payload := insertRequest{Records: make([]insertRecord, 0, len(fields))}
	for _, f := range fields {
		payload.Records = append(payload.Records, insertRecord{Fields: f})
	}

	var parsed recordsResponse
	if err := c.doJSON(ctx, http.MethodPost, "/tables/"+table+"/records", nil, payload, &parsed); err != nil {
		return nil, err
	}
	return parsed.Records, nil
}

// Patch applies partial updates in bulk.
func (c *Client) Patch(ctx context.Context, table string, updates []RecordUpdate) error {
	return c.doJSON(ctx, http.MethodPatch, "/tables/"+table+"/records", nil, patchRequest{Records: updates}, nil)
}

func (c *Client) doJSON(ctx context.Context, method string, path string, params url.Values, payload any, out any) error {
	<-c.limiter
	endpoint := c.baseURL + "/api/docs/" + c.docID + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("grist api error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}
