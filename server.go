package servant

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
)

// App is the server-side interpreter entry point: a router that serves
// registered endpoints. It manages registration, middleware, interceptors,
// and error handling. Use Handler() to get an http.Handler for
// http.ListenAndServe.
type App struct {
	mu                 sync.RWMutex
	routes             map[string]*Endpoint // keyed by path
	errorTransformer   ErrorTransformer
	maskInternalErrors bool
	interceptors       []UnaryInterceptor
	middlewares        []func(http.Handler) http.Handler
	logger             *slog.Logger
}

// NewApp creates an empty App.
func NewApp() *App {
	return &App{
		routes: make(map[string]*Endpoint),
	}
}

// WithErrorTransformer adds a custom error transformer.
// It returns the app for chaining.
func (a *App) WithErrorTransformer(fn ErrorTransformer) *App {
	a.errorTransformer = fn
	return a
}

// WithMaskInternalErrors replaces internal error messages with a generic
// one. Useful in production to avoid leaking details; the original error is
// still visible to interceptors and logging.
func (a *App) WithMaskInternalErrors() *App {
	a.maskInternalErrors = true
	return a
}

// WithUnaryInterceptor adds a global interceptor. Global interceptors run
// before endpoint-level ones; within each level, interceptors run in the
// order they were added.
func (a *App) WithUnaryInterceptor(i UnaryInterceptor) *App {
	a.interceptors = append(a.interceptors, i)
	return a
}

// WithMiddleware adds an HTTP middleware to wrap the app.
// Middleware is applied in the order added (first added is outermost).
func (a *App) WithMiddleware(mw func(http.Handler) http.Handler) *App {
	a.middlewares = append(a.middlewares, mw)
	return a
}

// WithLogger sets a custom logger. If not set, slog.Default() is used.
func (a *App) WithLogger(logger *slog.Logger) *App {
	a.logger = logger
	return a
}

func (a *App) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return slog.Default()
}

// Register adds an endpoint to the route table. The endpoint must have an
// action attached with Handle; registering twice for one path replaces the
// earlier endpoint and logs a warning.
func (a *App) Register(e *Endpoint) {
	if e.action == nil {
		panic(fmt.Sprintf("servant: endpoint %s %s registered without a handler", e.method, e.path))
	}

	md := e.metadata()
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.routes[e.path]; exists {
		a.log().Warn("duplicate route registration",
			slog.String("method", e.method),
			slog.String("path", e.path))
	}
	a.routes[e.path] = e
	a.log().Debug("route registered",
		slog.String("method", md.Method),
		slog.String("path", md.Path),
		slog.Int("params", len(md.Params)))
}

// Handler returns an http.Handler with all configured middleware applied.
//
//	app := servant.NewApp().WithMiddleware(middleware.CORS(nil))
//	http.ListenAndServe(":8080", app.Handler())
func (a *App) Handler() http.Handler {
	var h http.Handler = http.HandlerFunc(a.serveHTTP)
	// Apply middleware in reverse order so first added is outermost.
	for i := len(a.middlewares) - 1; i >= 0; i-- {
		h = a.middlewares[i](h)
	}
	return h
}

// serveHTTP handles incoming requests (internal, reached via Handler()).
func (a *App) serveHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			a.log().Error("panic recovered",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())))
			writeError(w, Errorf(CodeInternal, "internal server error (panic): %v", rec), a.logger)
		}
	}()

	a.mu.RLock()
	e, ok := a.routes[r.URL.Path]
	a.mu.RUnlock()
	if !ok {
		writeError(w, NewError(CodeNotFound, "route not found"), a.logger)
		return
	}
	if r.Method != e.method {
		writeError(w, Errorf(CodeMethodNotAllowed, "method %s not allowed, expected %s", r.Method, e.method), a.logger)
		return
	}

	// The combinator core operates on already percent-decoded text, so the
	// raw query is decoded here, at the transport boundary.
	q := parseRawQuery(r.URL.RawQuery)

	info := &RouteInfo{Method: e.method, Path: e.path}
	ctx := newContext(r.Context(), w, r, info)

	interceptors := make([]UnaryInterceptor, 0, len(a.interceptors)+len(e.interceptors))
	interceptors = append(interceptors, a.interceptors...)
	interceptors = append(interceptors, e.interceptors...)
	handler := chainInterceptors(interceptors, info, e.action.call)

	res, err := e.invoke(ctx, q, handler)
	if err != nil {
		a.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := encodeResponse(w, res); err != nil {
		// Response may be partially written at this point; log only.
		a.log().Error("failed to encode response",
			slog.String("path", e.path),
			slog.Any("error", err))
	}
}

func (a *App) handleError(w http.ResponseWriter, err error) {
	var svcErr *Error
	if a.errorTransformer != nil {
		svcErr = a.errorTransformer(err)
	}
	if svcErr == nil {
		svcErr = DefaultErrorTransformer(err)
	}
	if a.maskInternalErrors && svcErr.Code == CodeInternal {
		svcErr = NewError(CodeInternal, "internal server error")
	}
	writeError(w, svcErr, a.logger)
}

// Manifest returns the documentation records of every registered endpoint,
// sorted by path.
func (a *App) Manifest() []Docs {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Docs, 0, len(a.routes))
	for _, e := range a.routes {
		out = append(out, e.Docs())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ManifestHandler returns an http.Handler that serves the manifest as JSON.
// Register it on a plain mux next to the app itself:
//
//	mux.Handle("/servant/manifest", app.ManifestHandler())
func (a *App) ManifestHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, NewError(CodeMethodNotAllowed, "method not allowed"), a.logger)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := encodeResponse(w, a.Manifest()); err != nil {
			a.log().Error("failed to encode manifest", slog.Any("error", err))
		}
	})
}

// parseRawQuery parses a raw (still percent-encoded) query string. Tokens
// are split before decoding so that encoded separators ("%26", "%3D")
// cannot change the token structure, then each key and value is unescaped.
// Unescaping is lenient: text with invalid escape sequences is kept
// verbatim rather than failing the request.
func parseRawQuery(raw string) ParsedQuery {
	var pq ParsedQuery
	for raw != "" {
		var token string
		token, raw, _ = strings.Cut(raw, "&")
		if token == "" {
			continue
		}
		key, value, hasValue := strings.Cut(token, "=")
		pq.pairs = append(pq.pairs, queryPair{
			key:      unescape(key),
			value:    unescape(value),
			hasValue: hasValue,
		})
	}
	return pq
}

func unescape(s string) string {
	u, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return u
}
