package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// maxBodyBytes caps how much of a provider response is read.
const maxBodyBytes = 2 * 1024 * 1024

// NewProviderClient creates the outbound HTTP client for one recommendation
// request. The aggregator owns it: all adapters of the request share it and
// it is torn down exactly once after they settle.
func NewProviderClient() *http.Client {
	return &http.Client{
		Timeout: 15 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     60 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}
}

// GetJSON performs a GET against a provider API and returns the body.
// The call is bounded by Cfg.FetchTimeout and retried with exponential
// backoff on transient failures; extra headers override the defaults.
func GetJSON(ctx context.Context, client *http.Client, rawURL string, header http.Header) ([]byte, error) {
	return doJSON(ctx, client, http.MethodGet, rawURL, nil, header)
}

// PostJSON marshals payload, POSTs it to a provider API and returns the
// body. The request is rebuilt per attempt so the payload replays on retry.
func PostJSON(ctx context.Context, client *http.Client, rawURL string, payload any, header http.Header) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return doJSON(ctx, client, http.MethodPost, rawURL, body, header)
}

func doJSON(ctx context.Context, client *http.Client, method, rawURL string, body []byte, header http.Header) ([]byte, error) {
	IncrFetchRequests()

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	operation := func() ([]byte, error) {
		var rd io.Reader
		if body != nil {
			rd = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, rd)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", UserAgentBot)
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, vs := range header {
			req.Header[k] = vs
		}

		resp, err := client.Do(req)
		if err != nil {
			if isRetryable(err) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		defer resp.Body.Close()

		if isRetryableStatus(resp.StatusCode) {
			return nil, &httpStatusError{StatusCode: resp.StatusCode}
		}
		if resp.StatusCode != http.StatusOK {
			return nil, backoff.Permanent(&httpStatusError{StatusCode: resp.StatusCode})
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		return data, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second

	data, err := backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(3))
	if err != nil {
		IncrFetchErrors()
		return nil, err
	}
	return data, nil
}

// httpStatusError wraps a non-success HTTP status code.
type httpStatusError struct {
	StatusCode int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d", e.StatusCode)
}

// isRetryable returns true for transient transport errors worth retrying.
func isRetryable(err error) bool {
	// Connection errors (dial failures, connection refused, etc.)
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	// DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	// Timeout errors (net.Error includes OpError, so check after OpError)
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}

// isRetryableStatus returns true for HTTP status codes worth retrying.
func isRetryableStatus(code int) bool {
	switch code {
	case 429, 500, 502, 503, 504:
		return true
	}
	return false
}
