package servant

import (
	"context"
	"reflect"
)

// Action is the terminal leaf of an endpoint's combinator chain: the
// function that runs once every combinator has contributed its decoded
// argument. Use the HandlerN adapters to build one from a typed function.
type Action struct {
	fn     func(ctx context.Context, args []any) (any, error)
	args   []reflect.Type
	result reflect.Type
}

func (a *Action) call(ctx context.Context, args []any) (any, error) {
	return a.fn(ctx, args)
}

func (a *Action) resultName() string {
	if a == nil || a.result == nil {
		return ""
	}
	return a.result.String()
}

// Handler0 adapts a no-parameter handler.
func Handler0[Res any](fn func(context.Context) (Res, error)) *Action {
	return &Action{
		fn: func(ctx context.Context, args []any) (any, error) {
			return fn(ctx)
		},
		result: reflect.TypeFor[Res](),
	}
}

// Handler1 adapts a one-parameter handler. The argument type must match the
// decoded type of the endpoint's single combinator; Endpoint.Handle checks
// this at composition time.
func Handler1[A, Res any](fn func(context.Context, A) (Res, error)) *Action {
	return &Action{
		fn: func(ctx context.Context, args []any) (any, error) {
			return fn(ctx, arg[A](args[0]))
		},
		args:   []reflect.Type{reflect.TypeFor[A]()},
		result: reflect.TypeFor[Res](),
	}
}

// Handler2 adapts a two-parameter handler.
func Handler2[A, B, Res any](fn func(context.Context, A, B) (Res, error)) *Action {
	return &Action{
		fn: func(ctx context.Context, args []any) (any, error) {
			return fn(ctx, arg[A](args[0]), arg[B](args[1]))
		},
		args:   []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()},
		result: reflect.TypeFor[Res](),
	}
}

// Handler3 adapts a three-parameter handler.
func Handler3[A, B, C, Res any](fn func(context.Context, A, B, C) (Res, error)) *Action {
	return &Action{
		fn: func(ctx context.Context, args []any) (any, error) {
			return fn(ctx, arg[A](args[0]), arg[B](args[1]), arg[C](args[2]))
		},
		args:   []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()},
		result: reflect.TypeFor[Res](),
	}
}

// Handler4 adapts a four-parameter handler. Endpoints with more parameters
// than that usually want a single Bind combinator instead.
func Handler4[A, B, C, D, Res any](fn func(context.Context, A, B, C, D) (Res, error)) *Action {
	return &Action{
		fn: func(ctx context.Context, args []any) (any, error) {
			return fn(ctx, arg[A](args[0]), arg[B](args[1]), arg[C](args[2]), arg[D](args[3]))
		},
		args:   []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D]()},
		result: reflect.TypeFor[Res](),
	}
}

// arg recovers the static type of one decoded argument. A nil any (which a
// combinator never produces, but a raw []any caller might) becomes the zero
// value rather than a panicking assertion.
func arg[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
