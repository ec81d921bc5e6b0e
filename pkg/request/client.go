// Package request provides an HTTP client with response caching, per-provider
// rate limiting, and exponential backoff on retryable failures.
package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"shutterplan/pkg/cache"
	"shutterplan/pkg/tracker"
	"shutterplan/pkg/version"
)

var defaultUserAgent = fmt.Sprintf("shutterplan/%s (daily photo task planner)", version.Version)

// Client handles HTTP requests with caching, pacing, and tracking.
type Client struct {
	httpClient *http.Client
	cache      cache.Cacher
	tracker    *tracker.Tracker
	baseDelay  time.Duration
	ratePerS   float64

	// Limiters per provider (domain)
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New creates a new Client. ratePerS throttles calls per provider domain.
func New(c cache.Cacher, t *tracker.Tracker, timeout, baseDelay time.Duration, ratePerS float64) *Client {
	if ratePerS <= 0 {
		ratePerS = 5
	}
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cache:      c,
		tracker:    t,
		baseDelay:  baseDelay,
		ratePerS:   ratePerS,
		limiters:   make(map[string]*rate.Limiter),
	}
}

// Get performs a GET request, caching the response under cacheKey for ttl
// when a key is provided.
func (c *Client) Get(ctx context.Context, u, cacheKey string, ttl time.Duration) ([]byte, error) {
	return c.do(ctx, http.MethodGet, u, nil, nil, cacheKey, ttl)
}

// GetWithHeaders performs a GET request with custom headers.
func (c *Client) GetWithHeaders(ctx context.Context, u string, headers map[string]string, cacheKey string, ttl time.Duration) ([]byte, error) {
	return c.do(ctx, http.MethodGet, u, nil, headers, cacheKey, ttl)
}

// Post performs a POST request with an optional cache key.
func (c *Client) Post(ctx context.Context, u string, body []byte, contentType, cacheKey string, ttl time.Duration) ([]byte, error) {
	return c.do(ctx, http.MethodPost, u, body, map[string]string{"Content-Type": contentType}, cacheKey, ttl)
}

func (c *Client) do(ctx context.Context, method, u string, body []byte, headers map[string]string, cacheKey string, ttl time.Duration) ([]byte, error) {
	parsedURL, err := url.Parse(u)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	provider := normalizeProvider(parsedURL.Host)

	// 1. Check cache (only if key is provided)
	if cacheKey != "" {
		if val, hit := c.cache.GetCache(ctx, cacheKey); hit {
			c.tracker.TrackCacheHit(provider)
			slog.Debug("Cache Hit", "provider", provider, "key", cacheKey)
			return val, nil
		}
		c.tracker.TrackCacheMiss(provider)
		slog.Debug("Cache Miss", "provider", provider, "key", cacheKey)
	}

	// 2. Pace per provider
	if err := c.limiter(provider).Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	uaSet := false
	for k, v := range headers {
		req.Header.Set(k, v)
		if http.CanonicalHeaderKey(k) == "User-Agent" {
			uaSet = true
		}
	}
	if !uaSet {
		req.Header.Set("User-Agent", defaultUserAgent)
	}

	respBody, err := c.executeWithBackoff(req, body)
	if err != nil {
		c.tracker.TrackAPIFailure(provider)
		return nil, err
	}
	c.tracker.TrackAPISuccess(provider)

	// 3. Cache result (only if key is provided)
	if cacheKey != "" {
		if err := c.cache.SetCache(ctx, cacheKey, respBody, ttl); err != nil {
			slog.Error("Failed to cache response", "url", req.URL, "error", err)
		}
	}
	return respBody, nil
}

func (c *Client) limiter(provider string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.limiters[provider]
	if !ok {
		l = rate.NewLimiter(rate.Limit(c.ratePerS), 1)
		c.limiters[provider] = l
	}
	return l
}

func normalizeProvider(host string) string {
	// Group provider subdomains into one bucket for pacing and stats
	switch {
	case strings.HasSuffix(host, "googleapis.com"):
		return "google"
	case strings.HasSuffix(host, "openstreetmap.org"):
		return "nominatim"
	case strings.Contains(host, "overpass"):
		return "overpass"
	case strings.HasSuffix(host, "openweathermap.org"):
		return "openweather"
	case strings.HasSuffix(host, "open-meteo.com"):
		return "open-meteo"
	case strings.HasSuffix(host, "sunrise-sunset.org"):
		return "sunrise-sunset"
	}
	return host
}

// executeWithBackoff attempts the request with exponential backoff on
// retryable errors (network failures, 429, 5xx).
func (c *Client) executeWithBackoff(req *http.Request, body []byte) ([]byte, error) {
	maxAttempts := 3

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}

		// Rewind the body for retries.
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		slog.Debug("Network Request", "host", req.URL.Host, "path", req.URL.Path, "attempt", attempt+1)
		resp, err := c.httpClient.Do(req)

		if err != nil {
			if req.Context().Err() != nil {
				return nil, req.Context().Err()
			}

			slog.Warn("Request failed, retrying", "url", req.URL, "attempt", attempt+1, "error", err)
			if err := c.sleepBackoff(req.Context(), attempt); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || (resp.StatusCode >= 500 && resp.StatusCode < 600) {
			resp.Body.Close()
			slog.Warn("API Backoff", "status", resp.StatusCode, "url", req.URL, "attempt", attempt+1)
			if err := c.sleepBackoff(req.Context(), attempt); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("api error: status %d", resp.StatusCode)
		}

		// Success
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read error: %w", err)
		}
		return respBody, nil
	}

	return nil, fmt.Errorf("max retries exceeded")
}

func (c *Client) sleepBackoff(ctx context.Context, attempt int) error {
	sleepDur := time.Duration(math.Pow(2, float64(attempt))) * c.baseDelay
	select {
	case <-time.After(sleepDur):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
