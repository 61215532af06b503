package servant

import "reflect"

// requiredCombinator is a single mandatory scalar query parameter.
type requiredCombinator[T any] struct {
	name  string
	codec Codec[T]
}

// Required declares a single mandatory query parameter named name. The
// decoded handler argument is T. Unlike Param, absence or an undecodable
// value is terminal: interpretation stops with an invalid_argument error
// and the handler is never called.
func Required[T any](name string, codec Codec[T]) Combinator {
	return requiredCombinator[T]{name: name, codec: codec}
}

func (p requiredCombinator[T]) ParamName() string     { return p.name }
func (p requiredCombinator[T]) Kind() ParamKind       { return KindRequired }
func (p requiredCombinator[T]) ArgType() reflect.Type { return reflect.TypeFor[T]() }

func (p requiredCombinator[T]) DecodeRequest(q ParsedQuery, next ServerCont) (any, error) {
	v := q.Lookup(p.name)
	if v.Presence != PresentWithValue {
		return nil, Errorf(CodeInvalidArgument, "missing required query parameter %q", p.name)
	}
	decoded, ok := p.codec.Decode(v.Text)
	if !ok {
		return nil, Errorf(CodeInvalidArgument, "invalid value for query parameter %q", p.name)
	}
	return next(decoded)
}

func (p requiredCombinator[T]) EncodeRequest(req Request, a any, next ClientCont) (Request, error) {
	v, ok := a.(T)
	if !ok {
		return Request{}, argError(p.name, p.ArgType(), a)
	}
	return next(req.WithParam(p.name, p.codec.Encode(v)))
}

func (p requiredCombinator[T]) DocumentParam(doc Docs, next DocsCont) Docs {
	return next(doc.RegisterParam(DocEntry{Name: p.name, Kind: KindRequired}))
}
