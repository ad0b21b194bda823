package contact

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hydroavia/showcase/internal/logger"
)

// Submitter delivers a form.
type Submitter interface {
	Submit(ctx context.Context, f Form) error
}

// Client posts forms to a relay endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a client for endpoint. A zero timeout means none.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Named("contact"),
	}
}

// Endpoint returns the relay URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts f as JSON. Any transport error or non-2xx status is an
// ErrSubmitFailed.
func (c *Client) Submit(ctx context.Context, f Form) error {
	id := uuid.New()

	body, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: creating request: %v", ErrSubmitFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("contact submission failed",
			zap.Stringer("submission_id", id),
			zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("contact relay rejected submission",
			zap.Stringer("submission_id", id),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: relay returned status %d", ErrSubmitFailed, resp.StatusCode)
	}

	c.log.Info("contact submission sent",
		zap.Stringer("submission_id", id),
		zap.Duration("took", time.Since(start)))
	return nil
}
