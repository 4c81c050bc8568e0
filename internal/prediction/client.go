// Package prediction forwards mapped assessment records to the external
// prediction service and turns its binary answer into a display message.
package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"maternal-screening-server/internal/config"
	"maternal-screening-server/internal/metrics"
	"maternal-screening-server/internal/models"
)

// maxErrorBody bounds how much of an upstream error body is logged.
const maxErrorBody = 4 << 10

var (
	ErrUpstreamStatus = errors.New("prediction service returned non-success status")
	ErrDecode         = errors.New("prediction service returned malformed response")
	ErrUnknownKind    = errors.New("unknown assessment kind")
)

// Client calls the prediction service. It performs a single attempt per call
// and sets no timeout of its own.
type Client struct {
	baseURLs   map[models.Kind]string
	httpClient *http.Client
	logger     zerolog.Logger
	metrics    *metrics.Metrics
}

// NewClient creates a Client for the configured base addresses. A nil
// httpClient uses a zero http.Client; m may be nil.
func NewClient(cfg config.PredictionConfig, httpClient *http.Client, logger zerolog.Logger, m *metrics.Metrics) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURLs: map[models.Kind]string{
			models.KindMaternalRisk:   cfg.MaternalBaseURL,
			models.KindDepressionRisk: cfg.DepressionBaseURL,
		},
		httpClient: httpClient,
		logger:     logger.With().Str("component", "prediction").Logger(),
		metrics:    m,
	}
}

// Endpoint returns the prediction URL for kind.
func (c *Client) Endpoint(kind models.Kind) (string, error) {
	base, ok := c.baseURLs[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return strings.TrimRight(base, "/") + "/predict/" + string(kind), nil
}

// Predict posts payload as JSON to the kind's endpoint and interprets the answer.
func (c *Client) Predict(ctx context.Context, kind models.Kind, payload any) (*Result, error) {
	endpoint, err := c.Endpoint(kind)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", kind, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("kind", string(kind)).RawJSON("payload", body).Msg("calling prediction service")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveUpstream(string(kind), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error().
			Str("kind", string(kind)).
			Int("status", resp.StatusCode).
			Str("body", string(excerpt)).
			Msg("prediction service error response")
		return nil, fmt.Errorf("%w: %s", ErrUpstreamStatus, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", kind, err)
	}
	result, err := Interpret(kind, raw)
	if err != nil {
		return nil, err
	}

	c.logger.Info().Str("kind", string(kind)).RawJSON("raw", result.Raw).Str("risk_level", result.RiskLevel).Msg("prediction result")
	return result, nil
}
