package automation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pix-funnel/internal/pkg/errs"
)

// Transport delivers one encoded payload. Any error counts as a failed attempt.
type Transport interface {
	Deliver(ctx context.Context, body []byte) error
}

// HTTPStatusError is returned for non-2xx acknowledgements.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("automation: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

var ErrWebhookNotConfigured = errs.New("automation webhook url is not configured")

type HTTPTransport struct {
	url        string
	token      string
	httpClient *http.Client
}

type Option func(*HTTPTransport)

func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTransport) {
		t.httpClient = c
	}
}

func NewHTTPTransport(url, token string, timeout time.Duration, opts ...Option) *HTTPTransport {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	t := &HTTPTransport{
		url:        strings.TrimSpace(url),
		token:      strings.TrimSpace(token),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *HTTPTransport) Deliver(ctx context.Context, body []byte) error {
	if t.url == "" {
		return ErrWebhookNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build automation request")
	}
	req.Header.Set("Content-Type", "application/json")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return errs.Wrapf(err, "post automation event to %s", t.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &HTTPStatusError{StatusCode: resp.StatusCode, URL: t.url, Body: strings.TrimSpace(string(snippet))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
