// Package gateway asks the payment gateway for the live status of an order.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pix-funnel/internal/pkg/errs"
)

// orderPlaceholder is replaced by the escaped order reference. A URL without
// it gets the reference appended as the last path segment.
const orderPlaceholder = "{order}"

var ErrStatusNotConfigured = errs.New("payment status url is not configured")

// StatusError is returned for unexpected status codes. 404 is not an error:
// the gateway does not know the order, so it is not paid.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway: unexpected status %d from %s", e.StatusCode, e.URL)
}

type statusBody struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	Data          *struct {
		Status string `json:"status"`
	} `json:"data"`
}

func (b statusBody) value() string {
	switch {
	case b.Status != "":
		return b.Status
	case b.PaymentStatus != "":
		return b.PaymentStatus
	case b.Data != nil:
		return b.Data.Status
	}
	return ""
}

type StatusClient struct {
	url        string
	token      string
	httpClient *http.Client
}

type Option func(*StatusClient)

func WithHTTPClient(c *http.Client) Option {
	return func(s *StatusClient) {
		s.httpClient = c
	}
}

func NewStatusClient(statusURL, token string, timeout time.Duration, opts ...Option) *StatusClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	s := &StatusClient{
		url:        strings.TrimSpace(statusURL),
		token:      strings.TrimSpace(token),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enabled reports whether a status URL was configured.
func (s *StatusClient) Enabled() bool {
	return s.url != ""
}

// IsPaid fetches the order and reports whether the gateway settled it.
func (s *StatusClient) IsPaid(ctx context.Context, orderReference string) (bool, error) {
	if !s.Enabled() {
		return false, ErrStatusNotConfigured
	}
	target := s.orderURL(orderReference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false, errs.Wrap(err, "build payment status request")
	}
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, errs.Wrapf(err, "get payment status for %s", orderReference)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, &StatusError{StatusCode: resp.StatusCode, URL: target}
	}

	var body statusBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err != nil {
		return false, errs.Wrap(err, "decode payment status")
	}
	return IsPaidStatus(body.value()), nil
}

func (s *StatusClient) orderURL(orderReference string) string {
	escaped := url.PathEscape(orderReference)
	if strings.Contains(s.url, orderPlaceholder) {
		return strings.ReplaceAll(s.url, orderPlaceholder, escaped)
	}
	return strings.TrimRight(s.url, "/") + "/" + escaped
}

// IsPaidStatus matches the spellings the gateway uses for a settled order.
func IsPaidStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "paid", "sale_approved":
		return true
	}
	return false
}
