package creativesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/creatives-cli/internal/core/domain"
	"github.com/custodia-labs/creatives-cli/internal/core/ports/driven"
	"github.com/custodia-labs/creatives-cli/internal/logger"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// HeaderRequestID carries a per-request identifier for server-side tracing.
	HeaderRequestID = "X-Request-ID"

	// maxBodyBytes bounds how much of a response body is read.
	maxBodyBytes = 16 << 20

	// maxErrorBytes bounds how much of an error body is quoted in APIError.
	maxErrorBytes = 512
)

// Ensure Client implements the interface.
var _ driven.CreativeSource = (*Client)(nil)

// Config configures the creatives API client.
type Config struct {
	// BaseURL is the API root; pages are read from {BaseURL}/creatives.
	BaseURL string

	// Token is an optional bearer token.
	Token string

	// RateLimit caps requests per second. Zero disables throttling.
	RateLimit float64

	// Timeout is the per-request timeout. Zero uses DefaultTimeout.
	Timeout time.Duration

	// HTTPClient is the underlying transport client. Nil uses a new client.
	HTTPClient *http.Client
}

// Client fetches creative pages over HTTP.
type Client struct {
	endpoint *url.URL
	http     *http.Client
	throttle *Throttle
	now      func() time.Time
}

// NewClient creates a creatives API client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("parse base URL %q: %w", cfg.BaseURL, domain.ErrInvalidInput)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		hc = oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, hc), ts)
	} else {
		copied := *hc
		hc = &copied
	}
	hc.Timeout = timeout

	return &Client{
		endpoint: base.JoinPath("creatives"),
		http:     hc,
		throttle: NewThrottle(cfg.RateLimit),
		now:      time.Now,
	}, nil
}

// Endpoint returns the collection URL.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// FetchPage implements driven.CreativeSource.
func (c *Client) FetchPage(ctx context.Context, req domain.PageRequest) (*domain.Page, error) {
	if req.Limit <= 0 {
		return nil, fmt.Errorf("page limit %d: %w", req.Limit, domain.ErrInvalidInput)
	}

	if err := c.throttle.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := *c.endpoint
	q := u.Query()
	q.Set("limit", strconv.Itoa(req.Limit))
	if req.Cursor != "" {
		q.Set("cursor", req.Cursor)
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set(HeaderRequestID, requestID)
	httpReq.Header.Set("Accept", "application/json")

	logger.Debug("GET %s (request %s)", u.String(), requestID)
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get creatives: %w", err)
	}
	defer resp.Body.Close()

	if err := CheckRateLimit(resp, c.now()); err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			URL:        u.String(),
			RequestID:  requestID,
		}
	}

	var payload pageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	return payload.toDomain(), nil
}
