// Package helpers provides common test utilities for e2e testing.
//
// This package includes HTTP request builders, response validators,
// and assertion helpers for testing API endpoints over a live test
// server.
package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"
)

// ============================================================================
// HTTP Request Helpers
// ============================================================================

// RequestBuilder helps construct and send HTTP requests against a test
// server.
type RequestBuilder struct {
	t       *testing.T
	client  *http.Client
	method  string
	url     string
	body    any
	raw     []byte
	headers map[string]string
	token   string
}

// NewRequest creates a new request builder. baseURL is the test server's
// URL, path the endpoint under test.
func NewRequest(t *testing.T, method, baseURL, path string) *RequestBuilder {
	t.Helper()
	return &RequestBuilder{
		t:       t,
		client:  &http.Client{Timeout: 10 * time.Second},
		method:  method,
		url:     baseURL + path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body (will be JSON encoded)
func (rb *RequestBuilder) WithBody(body any) *RequestBuilder {
	rb.body = body
	return rb
}

// WithRawBody sets the request body to the exact bytes, for non-JSON
// payloads like picture uploads.
func (rb *RequestBuilder) WithRawBody(data []byte, contentType string) *RequestBuilder {
	rb.raw = data
	rb.headers["Content-Type"] = contentType
	return rb
}

// WithHeader adds a header to the request
func (rb *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	rb.headers[key] = value
	return rb
}

// WithToken adds a bearer token to the request
func (rb *RequestBuilder) WithToken(token string) *RequestBuilder {
	rb.token = token
	return rb
}

// Do sends the request and returns the response. The caller owns the
// response body.
func (rb *RequestBuilder) Do() *http.Response {
	rb.t.Helper()

	var bodyReader io.Reader
	switch {
	case rb.raw != nil:
		bodyReader = bytes.NewReader(rb.raw)
	case rb.body != nil:
		bodyBytes, err := json.Marshal(rb.body)
		if err != nil {
			rb.t.Fatalf("helpers: failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
		rb.headers["Content-Type"] = "application/json"
	}

	req, err := http.NewRequest(rb.method, rb.url, bodyReader)
	if err != nil {
		rb.t.Fatalf("helpers: failed to build request: %v", err)
	}

	for k, v := range rb.headers {
		req.Header.Set(k, v)
	}
	if rb.token != "" {
		req.Header.Set("Authorization", "Bearer "+rb.token)
	}

	resp, err := rb.client.Do(req)
	if err != nil {
		rb.t.Fatalf("helpers: request failed: %v", err)
	}
	return resp
}

// ============================================================================
// Response Helpers
// ============================================================================

// ReadBody reads and closes the response body.
func ReadBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("helpers: failed to read response body: %v", err)
	}
	return data
}

// DecodeResponse reads, closes, and decodes the response body into v.
func DecodeResponse(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	data := ReadBody(t, resp)
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("helpers: failed to decode response: %v. Body: %s", err, string(data))
	}
}

// GetDataFromResponse extracts the "data" field from a standard response
func GetDataFromResponse(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var response struct {
		Data map[string]any `json:"data"`
	}
	DecodeResponse(t, resp, &response)
	return response.Data
}

// ============================================================================
// Utility Helpers
// ============================================================================

// StringPtr returns a pointer to the string
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to the int
func IntPtr(i int) *int {
	return &i
}

// BoolPtr returns a pointer to the bool
func BoolPtr(b bool) *bool {
	return &b
}

// MustParseTime parses a time string or fails the test
func MustParseTime(t *testing.T, layout, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(layout, value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return parsed
}
