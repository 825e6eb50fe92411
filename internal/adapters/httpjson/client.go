// Package httpjson is the shared JSON-over-HTTP transport for the external
// adapters. Every call is fire-once; a circuit breaker per adapter makes an
// unreachable service fail fast instead of blocking on each request.
package httpjson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"pdfmanager/internal/domain"
)

// BreakerConfig holds configuration for the circuit breaker.
type BreakerConfig struct {
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

// DefaultBreakerConfig returns the breaker settings used when none are configured.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:         1,
		Interval:            60 * time.Second,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 3,
	}
}

// Config configures one adapter's transport.
type Config struct {
	Name    string
	Timeout time.Duration
	Breaker BreakerConfig
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string { return "unexpected status: " + e.Status }

// Client sends JSON requests on behalf of a named adapter.
type Client struct {
	name   string
	client *http.Client
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

// New creates a transport. Errors it returns are domain.AdapterError values
// carrying cfg.Name.
func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := cfg.Timeout
	if t == 0 {
		t = 15 * time.Second
	}
	bc := cfg.Breaker
	if bc.ConsecutiveFailures == 0 {
		bc = DefaultBreakerConfig()
	}
	logger = logger.With(zap.String("adapter", cfg.Name))
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= bc.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		// Client errors mean the service answered; only transport and 5xx failures count.
		IsSuccessful: func(err error) bool {
			var se *StatusError
			if errors.As(err, &se) {
				return se.StatusCode < 500
			}
			return err == nil
		},
	})
	return &Client{
		name:   cfg.Name,
		client: &http.Client{Timeout: t},
		cb:     cb,
		logger: logger,
	}
}

// Name returns the adapter name used in errors.
func (c *Client) Name() string { return c.name }

// Get fetches url and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.NewAdapterError(c.name, err)
	}
	return c.do(req, out)
}

// Post sends body as JSON to url and decodes the JSON response into out.
func (c *Client) Post(ctx context.Context, url string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return domain.NewAdapterError(c.name, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return domain.NewAdapterError(c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	_, err := c.cb.Execute(func() (interface{}, error) {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
		}
		if out == nil {
			return nil, nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return nil, fmt.Errorf("malformed response: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		c.logger.Debug("request failed", zap.String("url", req.URL.Redacted()), zap.Error(err))
		return domain.NewAdapterError(c.name, err)
	}
	return nil
}
