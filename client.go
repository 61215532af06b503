package servant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Request accumulates an outgoing request while the client interpreter
// walks an endpoint's chain. It is a pure value: the With* methods return
// an updated copy, and each BuildRequest call owns its accumulator
// exclusively. Appended parameters keep their append order in the rendered
// query string.
type Request struct {
	method string
	path   string
	query  []queryPair
}

// Method returns the HTTP method of the request under construction.
func (r Request) Method() string { return r.method }

// Path returns the path of the request under construction.
func (r Request) Path() string { return r.path }

// WithParam returns the request with name=value appended to its query
// string. The value may be empty, which still renders an explicit "=".
func (r Request) WithParam(name, value string) Request {
	return r.append(queryPair{key: name, value: value, hasValue: true})
}

// WithFlag returns the request with name appended as a bare key, no "=".
func (r Request) WithFlag(name string) Request {
	return r.append(queryPair{key: name})
}

func (r Request) append(p queryPair) Request {
	query := make([]queryPair, len(r.query), len(r.query)+1)
	copy(query, r.query)
	r.query = append(query, p)
	return r
}

// QueryString renders the accumulated query with standard query escaping.
// It returns the empty string when no parameters were appended.
func (r Request) QueryString() string {
	var b strings.Builder
	for i, p := range r.query {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		if p.hasValue {
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(p.value))
		}
	}
	return b.String()
}

// HTTPRequest materializes the accumulated request against a base URL.
func (r Request) HTTPRequest(ctx context.Context, baseURL string) (*http.Request, error) {
	target := strings.TrimSuffix(baseURL, "/") + r.path
	if qs := r.QueryString(); qs != "" {
		target += "?" + qs
	}
	return http.NewRequestWithContext(ctx, r.method, target, nil)
}

// Client calls servant endpoints over HTTP. The same *Endpoint values the
// server registers drive request construction, so a client and server built
// from one route description cannot drift apart.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API served at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// WithHTTPClient sets a custom *http.Client (timeouts, transport, cookies).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// Call builds the request for e from args, executes it, and decodes the
// response envelope into result. A non-nil *Error in the envelope is
// returned as-is; result may be nil when the caller discards the payload.
// Argument count and order must match e's combinator chain.
func (c *Client) Call(ctx context.Context, e *Endpoint, result any, args ...any) error {
	req, err := e.BuildRequest(args...)
	if err != nil {
		return err
	}
	httpReq, err := req.HTTPRequest(ctx, c.baseURL)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env struct {
		Result json.RawMessage `json:"result"`
		Error  *Error          `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// Drain so the connection can be reused even on a bad body.
		io.Copy(io.Discard, resp.Body)
		return Errorf(CodeInternal, "failed to decode response from %s: %v", req.Path(), err)
	}
	if env.Error != nil {
		return env.Error
	}
	if resp.StatusCode != http.StatusOK {
		return Errorf(CodeInternal, "unexpected status %d from %s", resp.StatusCode, req.Path())
	}
	if result != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, result); err != nil {
			return fmt.Errorf("failed to unmarshal result: %w", err)
		}
	}
	return nil
}
