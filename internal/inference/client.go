package inference

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

	"github.com/google/uuid"
)

// Client is a one-shot prediction client for a KServe v1 inference
// endpoint.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

// NewClient creates a client for the given predict endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type predictResponse struct {
	Predictions []json.RawMessage `json:"predictions"`
}

// ModelStatus is the KServe v1 model metadata response.
type ModelStatus struct {
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// Predict sends one batched prediction request and returns the fraud
// probability for each instance. A prediction may be a bare scalar or a
// two-element class-probability pair whose second element is the fraud
// probability; any other shape is a contract error.
func (c *Client) Predict(ctx context.Context, instances [][]float64) ([]float64, error) {
	body, err := json.Marshal(predictRequest{Instances: instances})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	respBody, err := c.roundTrip(req)
	if err != nil {
		return nil, err
	}

	var parsed predictResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	probs := make([]float64, len(parsed.Predictions))
	for i, raw := range parsed.Predictions {
		p, err := parsePrediction(raw)
		if err != nil {
			return nil, fmt.Errorf("prediction %d: %w", i, err)
		}
		probs[i] = p
	}
	return probs, nil
}

// Status fetches model metadata from the endpoint's model URL.
func (c *Client) Status(ctx context.Context) (*ModelStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ModelURL(c.Endpoint), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	respBody, err := c.roundTrip(req)
	if err != nil {
		return nil, err
	}

	var status ModelStatus
	if err := json.Unmarshal(respBody, &status); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &status, nil
}

// roundTrip performs the request and returns the body of a 200 response.
// Any other status is an error echoing the response body.
func (c *Client) roundTrip(req *http.Request) ([]byte, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server error (%d): %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// ModelURL strips the :predict verb from a predict endpoint, yielding the
// model metadata URL.
func ModelURL(endpoint string) string {
	return strings.TrimSuffix(endpoint, ":predict")
}

// parsePrediction accepts a scalar fraud probability or a two-element
// class-probability pair.
func parsePrediction(raw json.RawMessage) (float64, error) {
	var scalar float64
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return scalar, nil
	}
	var pair []float64
	if err := json.Unmarshal(raw, &pair); err == nil {
		if len(pair) != 2 {
			return 0, fmt.Errorf("expected 2 class probabilities, got %d", len(pair))
		}
		return pair[1], nil
	}
	return 0, fmt.Errorf("unrecognized prediction shape: %s", string(raw))
}

// IsConnectionError reports whether err means the endpoint could not be
// reached at all, as opposed to a timeout or a server-side failure.
func IsConnectionError(err error) bool {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return false
	}
	return !urlErr.Timeout()
}
