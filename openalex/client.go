// Package openalex is a minimal client for the OpenAlex institutions API,
// used to fill in countries for affiliations the lexicons cannot place.
// Responses are cached on disk so reruns do not re-query the service.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public OpenAlex API root.
	DefaultBaseURL = "https://api.openalex.org"

	defaultAttempts = 4
	defaultBackoff  = 600 * time.Millisecond
	defaultTimeout  = 30 * time.Second
)

// Lookup is the best institution match for a name query.
type Lookup struct {
	DisplayName string
	CountryCode string // ISO 3166-1 alpha-2, may be empty
	Found       bool
}

// Client queries the OpenAlex institutions endpoint with polite
// identification, fixed-backoff retries, and an optional disk cache.
type Client struct {
	BaseURL    string
	Mailto     string
	HTTPClient *http.Client
	Cache      *Cache

	// MaxAttempts and Backoff control the retry loop: attempt n sleeps
	// n×Backoff before retrying on 429, 5xx, and transport errors.
	MaxAttempts int
	Backoff     time.Duration
}

// NewClient returns a client with production defaults and a disk cache
// under cacheDir. An empty cacheDir disables caching.
func NewClient(cacheDir, mailto string) (*Client, error) {
	c := &Client{
		BaseURL:     DefaultBaseURL,
		Mailto:      mailto,
		HTTPClient:  &http.Client{Timeout: defaultTimeout},
		MaxAttempts: defaultAttempts,
		Backoff:     defaultBackoff,
	}
	if cacheDir != "" {
		cache, err := NewCache(cacheDir)
		if err != nil {
			return nil, err
		}
		c.Cache = cache
	}
	return c, nil
}

type searchResponse struct {
	Results []struct {
		DisplayName string `json:"display_name"`
		CountryCode string `json:"country_code"`
	} `json:"results"`
}

// LookupInstitution searches institutions by name and returns the top
// match. A clean "no results" answer is (Lookup{Found: false}, nil);
// errors are reserved for exhausted retries and malformed responses.
func (c *Client) LookupInstitution(ctx context.Context, name string) (Lookup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Lookup{}, nil
	}

	key := "institutions:search:" + strings.ToLower(name)
	if c.Cache != nil {
		if data, ok := c.Cache.Get(key); ok {
			return parseLookup(data)
		}
	}

	data, err := c.fetch(ctx, name)
	if err != nil {
		return Lookup{}, err
	}
	if c.Cache != nil {
		if err := c.Cache.Put(key, data); err != nil {
			slog.Warn("caching openalex response failed", "err", err)
		}
	}
	return parseLookup(data)
}

func (c *Client) fetch(ctx context.Context, name string) ([]byte, error) {
	q := url.Values{}
	q.Set("search", name)
	q.Set("per-page", "1")
	if c.Mailto != "" {
		q.Set("mailto", c.Mailto)
	}
	endpoint := strings.TrimRight(c.BaseURL, "/") + "/institutions?" + q.Encode()

	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			backoff := c.Backoff
			if backoff <= 0 {
				backoff = defaultBackoff
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}

		resp, err := httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Debug("openalex request failed", "attempt", attempt, "err", err)
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if readErr != nil {
				lastErr = readErr
				continue
			}
			return body, nil
		case resp.StatusCode == http.StatusNotFound:
			// A clean miss, not a failure.
			return []byte(`{"results":[]}`), nil
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			lastErr = fmt.Errorf("openalex status %d", resp.StatusCode)
			slog.Debug("openalex retryable status", "attempt", attempt, "status", resp.StatusCode)
			continue
		default:
			return nil, fmt.Errorf("openalex status %d", resp.StatusCode)
		}
	}
	return nil, fmt.Errorf("openalex lookup failed after %d attempts: %w", attempts, lastErr)
}

func parseLookup(data []byte) (Lookup, error) {
	var parsed searchResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Lookup{}, fmt.Errorf("parsing openalex response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return Lookup{}, nil
	}
	top := parsed.Results[0]
	return Lookup{
		DisplayName: top.DisplayName,
		CountryCode: strings.ToUpper(top.CountryCode),
		Found:       true,
	}, nil
}
