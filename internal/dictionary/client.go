package dictionary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmptyTerm         = errors.New("search term is empty")
	ErrInvalidAPIKey     = errors.New("dictionary API rejected the API key")
	ErrUnexpectedStatus  = errors.New("unexpected response status from dictionary API")
	ErrMalformedResponse = errors.New("malformed response from dictionary API")
)

const (
	lookupPath   = "/api/v3/references/medical/json/"
	maxBodyBytes = 2 << 20
)

// Client talks to the Merriam-Webster Medical Dictionary API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *Logger
}

type Option func(*Client)

func WithLogger(l *Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTimeout bounds every request issued by the client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Suggest returns up to limit candidate terms for a partially typed term.
func (c *Client) Suggest(ctx context.Context, term string, limit int) ([]string, error) {
	body, err := c.fetch(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	return ParseSuggestions(body, limit)
}

// Define performs a full lookup of term.
func (c *Client) Define(ctx context.Context, term string) (*Result, error) {
	body, err := c.fetch(ctx, term, 0)
	if err != nil {
		return nil, err
	}
	result, err := ParseLookup(term, body)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("client", "lookup classified", map[string]interface{}{
		"term": term,
		"kind": result.Kind.String(),
	})
	return result, nil
}

// LookupURL builds the request URL for term. A limit of zero omits the limit parameter.
func (c *Client) LookupURL(term string, limit int) string {
	q := url.Values{}
	q.Set("key", c.apiKey)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return c.baseURL + lookupPath + url.PathEscape(term) + "?" + q.Encode()
}

func (c *Client) fetch(ctx context.Context, term string, limit int) ([]byte, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptyTerm
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LookupURL(term, limit), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create request for %q: %w", term, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request for %q failed: %w", term, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response for %q: %w", term, err)
	}

	c.logger.Debug("client", "lookup response", map[string]interface{}{
		"term":        term,
		"limit":       limit,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return body, nil
}
