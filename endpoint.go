package servant

import (
	"context"
	"fmt"

	"github.com/input-output-hk/servant/internal/meta"
)

// Endpoint describes one HTTP endpoint: a method and path, an ordered chain
// of query-parameter combinators, and a terminal action. The same endpoint
// value drives all three interpreters: the server decodes requests with it,
// the client builds requests from it, and Docs documents it.
//
// Chain order is significant: handler-argument order, client-argument order
// and doc-entry order all follow it. An endpoint is immutable once its
// action is attached and it is registered.
type Endpoint struct {
	method       string
	path         string
	chain        []Combinator
	action       *Action
	interceptors []UnaryInterceptor
}

// NewEndpoint creates an endpoint for path with the given combinator chain.
// The HTTP method defaults to "GET".
func NewEndpoint(path string, combinators ...Combinator) *Endpoint {
	return &Endpoint{
		method: "GET",
		path:   path,
		chain:  combinators,
	}
}

// Method sets the HTTP method (e.g. "GET", "POST").
func (e *Endpoint) Method(m string) *Endpoint {
	e.method = m
	return e
}

// WithInterceptor adds an interceptor to this endpoint. Endpoint
// interceptors run after App-level interceptors.
func (e *Endpoint) WithInterceptor(i UnaryInterceptor) *Endpoint {
	e.interceptors = append(e.interceptors, i)
	return e
}

// Handle attaches the terminal action. The action's argument types are
// checked against the combinator chain here, at composition time, so that
// the dynamically-typed argument list threaded through the interpreters can
// never be asserted to a wrong type at request time. A mismatched signature
// panics: endpoints are composed at startup and a bad one is a programming
// error, not a runtime condition.
func (e *Endpoint) Handle(a *Action) *Endpoint {
	if a == nil {
		panic(fmt.Sprintf("servant: endpoint %s %s: nil action", e.method, e.path))
	}
	if len(a.args) != len(e.chain) {
		panic(fmt.Sprintf("servant: endpoint %s %s: handler takes %d arguments but chain has %d combinators",
			e.method, e.path, len(a.args), len(e.chain)))
	}
	for i, c := range e.chain {
		if a.args[i] != c.ArgType() {
			panic(fmt.Sprintf("servant: endpoint %s %s: parameter %d (%s) decodes %s but handler argument %d is %s",
				e.method, e.path, i, c.ParamName(), c.ArgType(), i, a.args[i]))
		}
	}
	e.action = a
	return e
}

// Path returns the endpoint's path.
func (e *Endpoint) Path() string { return e.path }

// HTTPMethod returns the endpoint's HTTP method.
func (e *Endpoint) HTTPMethod() string { return e.method }

// Invoke runs the server interpreter directly against a parsed query:
// each combinator decodes its argument and the action is applied to the
// accumulated argument list. The App uses this via its interceptor chain;
// it is exported for tests and for embedding in other HTTP stacks.
func (e *Endpoint) Invoke(ctx context.Context, q ParsedQuery) (any, error) {
	return e.invoke(ctx, q, e.action.call)
}

// invoke walks the chain head-to-tail. Each combinator receives the parsed
// query plus a continuation for the remainder; the leaf continuation is
// handler, which receives the fully accumulated argument list. Recursion
// depth equals chain length, which is fixed by the API surface and never
// depends on request data.
func (e *Endpoint) invoke(ctx context.Context, q ParsedQuery, handler func(context.Context, []any) (any, error)) (any, error) {
	var walk func(i int, args []any) (any, error)
	walk = func(i int, args []any) (any, error) {
		if i == len(e.chain) {
			return handler(ctx, args)
		}
		return e.chain[i].DecodeRequest(q, func(arg any) (any, error) {
			return walk(i+1, append(args, arg))
		})
	}
	return walk(0, make([]any, 0, len(e.chain)))
}

// BuildRequest runs the client interpreter: each combinator consumes one
// call argument and appends its encoding to the outgoing request. Argument
// count must match the chain; argument types were fixed when the endpoint
// was composed.
func (e *Endpoint) BuildRequest(args ...any) (Request, error) {
	if len(args) != len(e.chain) {
		return Request{}, Errorf(CodeInternal, "endpoint %s %s: got %d arguments, want %d",
			e.method, e.path, len(args), len(e.chain))
	}
	req := Request{method: e.method, path: e.path}
	var walk func(i int, req Request) (Request, error)
	walk = func(i int, req Request) (Request, error) {
		if i == len(e.chain) {
			return req, nil
		}
		return e.chain[i].EncodeRequest(req, args[i], func(r Request) (Request, error) {
			return walk(i+1, r)
		})
	}
	return walk(0, req)
}

// metadata returns the runtime metadata for the endpoint.
func (e *Endpoint) metadata() *meta.EndpointMetadata {
	md := &meta.EndpointMetadata{
		Method: e.method,
		Path:   e.path,
	}
	for _, c := range e.chain {
		md.Params = append(md.Params, meta.ParamMetadata{
			Name: c.ParamName(),
			Kind: c.Kind().String(),
			Arg:  c.ArgType(),
		})
	}
	if e.action != nil {
		md.Result = e.action.result
	}
	return md
}
