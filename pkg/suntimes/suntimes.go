// Package suntimes fetches sunrise/sunset times from sunrise-sunset.org.
// The data annotates the generated task; routing never depends on it.
package suntimes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"shutterplan/pkg/request"
)

// Times holds the sunrise and sunset instants for one day, ISO 8601 strings
// as delivered by the provider.
type Times struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// Client queries the sunrise-sunset.org API.
type Client struct {
	client  *request.Client
	baseURL string
	ttl     time.Duration
}

// New creates a sun-times client. baseURL overrides the API endpoint for
// tests; pass "" for the production endpoint.
func New(client *request.Client, baseURL string, ttl time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.sunrise-sunset.org/json"
	}
	return &Client{client: client, baseURL: baseURL, ttl: ttl}
}

// Times returns sunrise/sunset for the coordinate. date may be empty for
// today. Failures return an error the caller is expected to ignore.
func (c *Client) Times(ctx context.Context, lat, lon float64, date string) (*Times, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lng", fmt.Sprintf("%f", lon))
	params.Set("formatted", "0")
	if date != "" {
		params.Set("date", date)
	}
	u := c.baseURL + "?" + params.Encode()

	key := fmt.Sprintf("sun:%.3f,%.3f:%s", lat, lon, date)
	body, err := c.client.Get(ctx, u, key, c.ttl)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Results Times  `json:"results"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("sun times status %q", resp.Status)
	}
	return &resp.Results, nil
}
