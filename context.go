package servant

import (
	"context"
	"net/http"
)

// RouteInfo identifies the endpoint being served.
type RouteInfo struct {
	Method string
	Path   string
}

type contextKey struct {
	name string
}

var (
	requestKey = &contextKey{"request"}
	writerKey  = &contextKey{"writer"}
	routeKey   = &contextKey{"route"}
)

// RequestFromContext returns the HTTP request from the context, or nil if
// the handler was not invoked through an App.
func RequestFromContext(ctx context.Context) *http.Request {
	if r, ok := ctx.Value(requestKey).(*http.Request); ok {
		return r
	}
	return nil
}

// RouteFromContext returns the route being served.
func RouteFromContext(ctx context.Context) (*RouteInfo, bool) {
	info, ok := ctx.Value(routeKey).(*RouteInfo)
	return info, ok
}

// SetHeader sets an HTTP response header. It requires that the handler was
// invoked through an App.
func SetHeader(ctx context.Context, key, value string) {
	if w, ok := ctx.Value(writerKey).(http.ResponseWriter); ok {
		w.Header().Set(key, value)
	}
}

func newContext(ctx context.Context, w http.ResponseWriter, r *http.Request, info *RouteInfo) context.Context {
	ctx = context.WithValue(ctx, writerKey, w)
	ctx = context.WithValue(ctx, requestKey, r)
	ctx = context.WithValue(ctx, routeKey, info)
	return ctx
}
