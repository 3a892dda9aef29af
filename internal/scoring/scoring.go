// Package scoring talks to the remote scoring service: it posts the user
// profile and decodes the per-career dynamic fields the service returns. The
// service's matching algorithm is opaque to this client; any failure is
// reported as an error and handled by the caller's fallback path.
package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/ayanchyaziz123/career-AI/internal/career"
	"github.com/ayanchyaziz123/career-AI/internal/profile"
)

const (
	// DefaultURL is where the companion `serve` command listens.
	DefaultURL = "http://localhost:8000/api/analyze"

	contentType = "application/json"
)

// ScoredCareer is one record of the scoring response: the dynamic fields
// merged onto catalog content by the session.
type ScoredCareer struct {
	ID         string         `json:"id"`
	MatchScore int            `json:"matchScore"`
	Skills     []career.Skill `json:"skills"`
}

// Response is the scoring service's payload shape.
type Response struct {
	Careers []any `json:"careers"`
}

// Client is an HTTP client for the scoring service.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	URL        string
}

// New creates a client for the given endpoint URL.
func New(url string, logger *zap.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		URL: url,
	}
}

// Analyze posts the profile and returns the scored careers in response
// order. Transport errors, non-200 statuses and malformed bodies all come
// back as errors; the client never partially succeeds.
func (c *Client) Analyze(ctx context.Context, p profile.Profile) ([]*ScoredCareer, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	c.logger.Debug("make scoring request",
		zap.String("url", c.URL),
		zap.Int("profile_skills", len(p.Skills)),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("decode scoring response: %w", err)
	}

	// A missing or null careers field is a malformed payload, not an empty
	// result. An empty result is an explicit [].
	if response.Careers == nil {
		return nil, fmt.Errorf("scoring response has no careers field")
	}

	var scored []*ScoredCareer
	cfg := &mapstructure.DecoderConfig{
		Result:  &scored,
		TagName: "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(response.Careers); err != nil {
		return nil, fmt.Errorf("decode scored careers: %w", err)
	}

	c.logger.Debug("got scoring response", zap.Int("careers", len(scored)))

	return scored, nil
}
