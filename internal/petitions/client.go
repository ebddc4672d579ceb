package petitions

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"petitions/internal/domain"
)

const (
	// DefaultBaseURL is the We The People petitions endpoint.
	DefaultBaseURL = "https://api.whitehouse.gov/v1/petitions.json"

	DefaultLimit          = 100
	DefaultSignatureFloor = 10000
)

// Fetcher retrieves the raw petitions payload for a mode.
type Fetcher interface {
	Fetch(ctx context.Context, mode domain.Mode) ([]byte, error)
}

// Client fetches petitions over HTTP. It performs one GET per call and
// never retries.
type Client struct {
	baseURL        string
	limit          int
	signatureFloor int
	timeout        time.Duration
	httpClient     *http.Client
	logger         *zap.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds each request. Zero leaves the HTTP client's own
// timeout. It applies to the client from WithHTTPClient whatever the option
// order, without modifying that client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLimit sets the limit query parameter.
func WithLimit(limit int) Option {
	return func(c *Client) {
		c.limit = limit
	}
}

// WithSignatureFloor sets signatureCountFloor for ModePopular.
func WithSignatureFloor(floor int) Option {
	return func(c *Client) {
		c.signatureFloor = floor
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new petitions API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:        DefaultBaseURL,
		limit:          DefaultLimit,
		signatureFloor: DefaultSignatureFloor,
		httpClient:     http.DefaultClient,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// URLFor builds the request URL for a mode.
func (c *Client) URLFor(mode domain.Mode) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("parsing URL: %q is not absolute", c.baseURL)
	}

	// Parameters go out in the API's documented order, after any query the
	// base URL already carries
	var params []string
	if u.RawQuery != "" {
		params = append(params, u.RawQuery)
	}
	switch mode {
	case domain.ModeAll:
	case domain.ModePopular:
		params = append(params, "signatureCountFloor="+strconv.Itoa(c.signatureFloor))
	default:
		return "", fmt.Errorf("unsupported mode %s", mode)
	}
	params = append(params, "limit="+strconv.Itoa(c.limit))
	u.RawQuery = strings.Join(params, "&")
	return u.String(), nil
}

// Fetch performs a blocking GET and returns the response body.
func (c *Client) Fetch(ctx context.Context, mode domain.Mode) ([]byte, error) {
	start := time.Now()

	target, err := c.URLFor(mode)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("petitions request failed",
			zap.String("url", target),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug("petitions request returned error",
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: target}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	c.logger.Debug("petitions request completed",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)),
	)
	return body, nil
}
