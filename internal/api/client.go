package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/url-shortener/internal/logger"
	"github.com/ytget/url-shortener/internal/model"
)

// API paths relative to the base URL
const (
	PathShorten      = "/api/shorten"
	PathStatsPattern = "/api/shorten/%s/stats"
	PathHealth       = "/api/health"
)

// maxErrorBody bounds how much of an error response is read
const maxErrorBody = 64 << 10

// Client talks to the shortening API over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Gateway = (*Client)(nil)

// NewClient creates a client for baseURL. A nil httpClient uses a client
// without a timeout: requests run until the server or transport settles them.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the API address this client targets
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Shorten posts longURL as a JSON string body
func (c *Client) Shorten(ctx context.Context, longURL string) (*model.ShortenResult, error) {
	body, err := json.Marshal(model.ShortenRequest{LongURL: longURL})
	if err != nil {
		return nil, fmt.Errorf("encode shorten request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathShorten, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build shorten request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Error("shorten request failed", zap.String("url", longURL), zap.Error(err))
		return nil, &NetworkError{Op: "shorten", Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		apiErr := readAPIError(resp)
		logger.Log.Warn("shorten rejected", zap.Int("status", apiErr.Status), zap.String("message", apiErr.Message))
		return nil, apiErr
	}

	var result model.ShortenResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Log.Error("decode shorten response", zap.Error(err))
		return nil, &APIError{Status: resp.StatusCode}
	}

	logger.Log.Info("url shortened", zap.String("shortCode", result.ShortCode))
	return &result, nil
}

// FetchStats gets statistics for shortCode
func (c *Client) FetchStats(ctx context.Context, shortCode string) (*model.StatsResult, error) {
	endpoint := c.baseURL + fmt.Sprintf(PathStatsPattern, url.PathEscape(shortCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build stats request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Error("stats request failed", zap.String("shortCode", shortCode), zap.Error(err))
		return nil, &NetworkError{Op: "stats", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("stats for %q: %w", shortCode, ErrNotFound)
	case !isSuccess(resp.StatusCode):
		apiErr := readAPIError(resp)
		logger.Log.Warn("stats rejected", zap.Int("status", apiErr.Status), zap.String("message", apiErr.Message))
		return nil, apiErr
	}

	var result model.StatsResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Log.Error("decode stats response", zap.Error(err))
		return nil, &APIError{Status: resp.StatusCode}
	}
	result.Normalize()

	return &result, nil
}

// CheckHealth returns true only for a 2xx answer from the health endpoint
func (c *Client) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathHealth, nil)
	if err != nil {
		logger.Log.Error("API health check failed", zap.Error(err))
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Error("API health check failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		logger.Log.Warn("API health check failed", zap.Int("status", resp.StatusCode))
		return false
	}

	status, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	logger.Log.Info("API health", zap.String("status", strings.TrimSpace(string(status))))
	return true
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// readAPIError builds an APIError, taking the message from a JSON body when present
func readAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body model.ErrorBody
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = strings.TrimSpace(body.Message)
	}
	return apiErr
}
