package keyring

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Endpoint is a cheap authenticated request used to test a key.
type Endpoint struct {
	URL    string
	Header string
	// Prefix is prepended to the key in the header value.
	Prefix string
}

// DefaultEndpoints lists the check request of every provider.
var DefaultEndpoints = map[Provider]Endpoint{
	ProviderNewsAPI: {URL: "https://newsapi.org/v2/sources", Header: "X-Api-Key"},
	ProviderIGDB:    {URL: "https://api-v3.igdb.com/games?fields=id&limit=1", Header: "user-key"},
	ProviderTwitter: {URL: "https://api.twitter.com/1.1/application/rate_limit_status.json", Header: "Authorization", Prefix: "Bearer "},
	ProviderGoogle:  {URL: "https://www.googleapis.com/youtube/v3/videoCategories?part=snippet&regionCode=US", Header: "X-Goog-Api-Key"},
}

// Checker tests keys against their provider.
type Checker struct {
	client    *http.Client
	endpoints map[Provider]Endpoint
}

// NewChecker creates a checker. Nil endpoints means DefaultEndpoints.
func NewChecker(client *http.Client, endpoints map[Provider]Endpoint) *Checker {
	if endpoints == nil {
		endpoints = DefaultEndpoints
	}
	return &Checker{client: client, endpoints: endpoints}
}

// Check returns nil when the provider accepts key.
func (c *Checker) Check(ctx context.Context, p Provider, key string) error {
	ep, ok := c.endpoints[p]
	if !ok {
		return fmt.Errorf("no check endpoint for %s", p)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to build %s check: %w", p, err)
	}
	req.Header.Set(ep.Header, ep.Prefix+key)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s check failed: %w", p, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s rejected key %s: status %d", p, Mask(key), resp.StatusCode)
	}
	return nil
}

// FirstWorking rotates through the ring until a key passes Check and returns
// that key.
func (c *Checker) FirstWorking(ctx context.Context, ring *Ring) (string, error) {
	var working string
	err := ring.Do(ctx, func(ctx context.Context, key string) error {
		if err := c.Check(ctx, ring.provider, key); err != nil {
			return err
		}
		working = key
		return nil
	})
	return working, err
}
