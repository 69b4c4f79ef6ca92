package detection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the boundary to the external object-detection service.
type Client interface {
	Detect(ctx context.Context, imageBytes []byte) ([]Prediction, error)
}

// VisionClient calls an Azure Custom Vision prediction endpoint.
type VisionClient struct {
	URL    string
	Key    string
	client *http.Client
}

func NewVisionClient(url, key string) *VisionClient {
	return &VisionClient{
		URL: url,
		Key: key,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type predictResponse struct {
	Predictions []Prediction `json:"predictions"`
}

func (c *VisionClient) Detect(ctx context.Context, imageBytes []byte) ([]Prediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Prediction-Key", c.Key)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prediction API returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed predictResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse prediction response: %w", err)
	}

	return parsed.Predictions, nil
}
