package common

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// ConfigKeyHTTPTimeout per-request timeout in milliseconds, covers connecting, sending and reading the body
	ConfigKeyHTTPTimeout = "httpTimeout"
	// ConfigKeyUserAgent the User-Agent header sent with every request (some pages refuse Go's default one)
	ConfigKeyUserAgent = "userAgent"
	// ConfigKeyMaxResponseSize the maximum size of a response body in bytes
	ConfigKeyMaxResponseSize = "maxResponseSize"
)

const (
	defaultHTTPTimeout     = 30 * time.Second
	defaultUserAgent       = "Mozilla/5.0"
	defaultMaxResponseSize = 32 << 20
	maxErrorBodySize       = 1024
)

// StatusError is returned when the server responds with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (s *StatusError) Error() string {
	if s.Body == "" {
		return fmt.Sprintf("unexpected status %d", s.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", s.StatusCode, s.Body)
}

// HTTPClient performs one-shot requests which only succeed on 2xx responses. Response bodies are read in full,
// but never beyond the configured limit.
type HTTPClient struct {
	client          *http.Client
	userAgent       string
	maxResponseSize int64
}

func NewHTTPClient(config *Config) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: config.GetDurationOrDefault(ConfigKeyHTTPTimeout, defaultHTTPTimeout),
		},
		userAgent:       config.GetStringOrDefault(ConfigKeyUserAgent, defaultUserAgent),
		maxResponseSize: int64(config.GetIntOrDefault(ConfigKeyMaxResponseSize, defaultMaxResponseSize)),
	}
}

// Get reads all content from the URL.
func (h *HTTPClient) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return h.do(req)
}

// PostJSON posts `body` as is (it must already be JSON) and returns the response body. `token`, if not empty,
// is sent as a bearer credential.
func (h *HTTPClient) PostJSON(ctx context.Context, url, token string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return h.do(req)
}

func (h *HTTPClient) do(req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", h.userAgent)
	res, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		return nil, &StatusError{StatusCode: res.StatusCode, Body: string(bytes.TrimSpace(data))}
	}
	content, err := io.ReadAll(io.LimitReader(res.Body, h.maxResponseSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > h.maxResponseSize {
		return nil, fmt.Errorf("response body exceeds %d bytes", h.maxResponseSize)
	}
	return content, nil
}
