package servant

import "context"

// HandlerFunc represents the next handler in an interceptor chain. args is
// the decoded positional argument list produced by the endpoint's
// combinator chain, in chain order.
type HandlerFunc func(ctx context.Context, args []any) (any, error)

// UnaryInterceptor wraps endpoint execution. Interceptors run after the
// query string has been decoded, so they observe the typed argument list
// rather than raw text. They can short-circuit by returning without calling
// next, or add values to the context.
//
//	func timing(ctx context.Context, info *servant.RouteInfo, args []any, next servant.HandlerFunc) (any, error) {
//	    start := time.Now()
//	    res, err := next(ctx, args)
//	    log.Printf("%s %s took %v", info.Method, info.Path, time.Since(start))
//	    return res, err
//	}
type UnaryInterceptor func(ctx context.Context, info *RouteInfo, args []any, next HandlerFunc) (any, error)

// chainInterceptors wires interceptors around final. The first interceptor
// in the slice is the outermost one.
func chainInterceptors(interceptors []UnaryInterceptor, info *RouteInfo, final HandlerFunc) HandlerFunc {
	h := final
	for i := len(interceptors) - 1; i >= 0; i-- {
		ic, next := interceptors[i], h
		h = func(ctx context.Context, args []any) (any, error) {
			return ic(ctx, info, args, next)
		}
	}
	return h
}
