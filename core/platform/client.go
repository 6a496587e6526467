package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Record is a single label record as returned by the vendor API.
// Payload schemas differ between platform versions, so records stay loosely
// typed and field interpretation is left to the caller.
type Record map[string]any

// collectionKeys lists the object keys under which vendor APIs wrap the
// label collection when the response is not a bare array. Checked in order.
var collectionKeys = []string{"labels", "labelList", "items", "data", "content"}

// Client defines the interface for vendor platform operations.
type Client interface {
	// FetchLabels lists the label records the platform holds for a store.
	FetchLabels(ctx context.Context, storeCode string) ([]Record, error)
	// Ping probes the platform health endpoint.
	Ping(ctx context.Context) error
}

// NewClient creates a new platform client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	profile, err := GetProfileByName(cfg.Profile)
	if err != nil {
		return nil, err
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.ApiKey,
		profile: profile,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}, nil
}

type httpClient struct {
	baseURL string
	apiKey  string
	profile Profile
	http    *http.Client
}

func (c *httpClient) FetchLabels(ctx context.Context, storeCode string) ([]Record, error) {
	url := c.baseURL + fmt.Sprintf(c.profile.LabelsPath, storeCode)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch labels for store %s: %w", storeCode, err)
	}

	records, err := decodeRecords(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode label response for store %s: %w", storeCode, err)
	}
	return records, nil
}

func (c *httpClient) Ping(ctx context.Context) error {
	if _, err := c.get(ctx, c.baseURL+c.profile.HealthPath); err != nil {
		return fmt.Errorf("platform ping failed: %w", err)
	}
	return nil
}

func (c *httpClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// decodeRecords accepts both bare JSON arrays and object-wrapped collections.
func decodeRecords(body []byte) ([]Record, error) {
	var direct []Record
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("response is neither an array nor an object: %w", err)
	}

	for _, key := range collectionKeys {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("collection %q is not an array of records: %w", key, err)
		}
		return records, nil
	}

	return nil, fmt.Errorf("no known collection key found in response")
}
