// Package reviewsapi is the HTTP client the review views use to talk to the API.
package reviewsapi

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

	"golang.org/x/time/rate"

	"stayhub/internal/adapters/observability"
	"stayhub/internal/domain"
)

var ErrNotFound = errors.New("reviewsapi: not found")

// StatusError is any non-success answer from the API.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("reviewsapi: status %d", e.Status)
	}
	return fmt.Sprintf("reviewsapi: status %d: %s", e.Status, e.Message)
}

type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

// New returns a client for the API at base. Requests are not retried; callers
// decide whether to try again.
func New(base string, rps int) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", base)
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (c *Client) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.do(ctx, http.MethodGet, "reviews.list", c.reviewsURL(propertyID), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Review{}
	}
	return out, nil
}

func (c *Client) SubmitReview(ctx context.Context, propertyID string, in domain.NewReview) (domain.Review, error) {
	var out domain.Review
	return out, c.do(ctx, http.MethodPost, "reviews.create", c.reviewsURL(propertyID), in, &out)
}

func (c *Client) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	var out domain.Property
	return out, c.do(ctx, http.MethodGet, "properties.get", c.base+"/properties/"+url.PathEscape(id), nil, &out)
}

func (c *Client) reviewsURL(propertyID string) string {
	return c.base + "/properties/" + url.PathEscape(propertyID) + "/reviews"
}

// do sends one request with client-side rate limiting and decodes a JSON answer into out.
func (c *Client) do(ctx context.Context, method, endpoint, u string, in, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "stayhub-reviewctl/1.0")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("stayhub-api", endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("stayhub-api", endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s response: %w", endpoint, err)
		}
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return &StatusError{Status: resp.StatusCode, Message: readMessage(resp.Body)}
	}
}

// readMessage pulls {"message"} out of an error body, falling back to the raw text.
func readMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 4096))
	var m struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(b, &m) == nil && m.Message != "" {
		return m.Message
	}
	return strings.TrimSpace(string(b))
}
