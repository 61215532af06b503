package servant

import "reflect"

// ServerCont interprets the remainder of a combinator chain after the
// current combinator has decoded its argument. The decoded value is applied
// as the next positional handler argument.
type ServerCont func(arg any) (any, error)

// ClientCont interprets the remainder of a combinator chain on the client
// side, threading the outgoing request accumulator by value.
type ClientCont func(req Request) (Request, error)

// DocsCont documents the remainder of a combinator chain, threading the
// accumulated docs record by value.
type DocsCont func(doc Docs) Docs

// ServerInterpretable is the server-side capability of a combinator: extract
// this combinator's argument from the parsed query and hand it to next.
//
// Decoding must only inspect this combinator's own key name(s); the rest of
// the query passes through unexamined.
type ServerInterpretable interface {
	DecodeRequest(q ParsedQuery, next ServerCont) (any, error)
}

// ClientInterpretable is the client-side capability of a combinator: consume
// one call argument, append its encoding (if any) to req, and hand the
// updated request to next.
type ClientInterpretable interface {
	EncodeRequest(req Request, arg any, next ClientCont) (Request, error)
}

// DocsInterpretable is the documentation capability of a combinator:
// register this parameter's doc entry and hand the updated record to next.
type DocsInterpretable interface {
	DocumentParam(doc Docs, next DocsCont) Docs
}

// Combinator is one link in an endpoint's parameter chain. A combinator
// kind is a type implementing the three interpreter capabilities plus the
// metadata used for composition-time argument checking. Adding a new kind
// means writing one type with these methods; the chain-walking drivers and
// the existing kinds are never touched.
type Combinator interface {
	ServerInterpretable
	ClientInterpretable
	DocsInterpretable

	// ParamName is the logical query key (or a descriptive name for
	// combinators spanning several keys).
	ParamName() string

	// Kind categorizes the combinator for documentation.
	Kind() ParamKind

	// ArgType is the static type of the handler argument this combinator
	// produces on the server and consumes on the client.
	ArgType() reflect.Type
}

// argError reports a client-side call argument whose dynamic type does not
// match the combinator's declared argument type. Endpoints validate
// handler signatures at composition time, so this only fires when a caller
// bypasses BuildRequest's arity check with a mistyped any value.
func argError(name string, want reflect.Type, got any) *Error {
	return Errorf(CodeInternal, "parameter %q: argument type %T does not match %s", name, got, want)
}
