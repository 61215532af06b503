// Package testutil provides testing helpers for servant endpoints. It is
// import-cycle safe and can be used from any package.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// RequestBuilder constructs test HTTP requests with a fluent API, focused
// on query-string construction.
type RequestBuilder struct {
	method string
	path   string
	tokens []string
}

// NewRequest creates a GET request builder for path.
func NewRequest(path string) *RequestBuilder {
	return &RequestBuilder{method: "GET", path: path}
}

// Method overrides the HTTP method.
func (b *RequestBuilder) Method(m string) *RequestBuilder {
	b.method = m
	return b
}

// WithParam appends name=value to the query string, percent-escaping both.
func (b *RequestBuilder) WithParam(name, value string) *RequestBuilder {
	b.tokens = append(b.tokens, url.QueryEscape(name)+"="+url.QueryEscape(value))
	return b
}

// WithFlag appends name as a bare key, no "=".
func (b *RequestBuilder) WithFlag(name string) *RequestBuilder {
	b.tokens = append(b.tokens, url.QueryEscape(name))
	return b
}

// WithRawQuery replaces the whole query string with raw, verbatim. Earlier
// WithParam/WithFlag calls are discarded. Use this to exercise exact
// wire-level token forms like "a=" versus "a".
func (b *RequestBuilder) WithRawQuery(raw string) *RequestBuilder {
	b.tokens = []string{raw}
	return b
}

// Build returns the assembled *http.Request.
func (b *RequestBuilder) Build() *http.Request {
	target := b.path
	if len(b.tokens) > 0 {
		target += "?" + strings.Join(b.tokens, "&")
	}
	return httptest.NewRequest(b.method, target, nil)
}

// Do builds the request, serves it through h, and returns the recorder.
func (b *RequestBuilder) Do(h http.Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, b.Build())
	return w
}

// DecodeResult unmarshals the {"result": ...} envelope from a recorded
// response body into T, failing the test on malformed JSON.
func DecodeResult[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		Result T `json:"result"`
	}
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode result envelope: %v", err)
	}
	return env.Result
}

// DecodeError unmarshals the {"error": {...}} envelope, failing the test if
// the body does not carry one.
func DecodeError(t *testing.T, w *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var env struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	if env.Error == nil {
		t.Fatalf("response carries no error envelope")
	}
	return env.Error.Code, env.Error.Message
}
