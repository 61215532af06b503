package servant

import "reflect"

// paramCombinator is a single optional scalar query parameter.
type paramCombinator[T any] struct {
	name  string
	codec Codec[T]
}

// Param declares a single optional query parameter named name. The decoded
// handler argument is *T: nil when the key is absent, present without a
// value, or present with text the codec cannot decode. Absence and a failed
// decode are indistinguishable to the handler; use Required for parameters
// where a malformed value should fail the request instead.
func Param[T any](name string, codec Codec[T]) Combinator {
	return paramCombinator[T]{name: name, codec: codec}
}

func (p paramCombinator[T]) ParamName() string     { return p.name }
func (p paramCombinator[T]) Kind() ParamKind       { return KindOptional }
func (p paramCombinator[T]) ArgType() reflect.Type { return reflect.TypeFor[*T]() }

func (p paramCombinator[T]) DecodeRequest(q ParsedQuery, next ServerCont) (any, error) {
	var arg *T
	if v := q.Lookup(p.name); v.Presence == PresentWithValue {
		if decoded, ok := p.codec.Decode(v.Text); ok {
			arg = &decoded
		}
	}
	return next(arg)
}

func (p paramCombinator[T]) EncodeRequest(req Request, a any, next ClientCont) (Request, error) {
	v, ok := a.(*T)
	if !ok && a != nil {
		return Request{}, argError(p.name, p.ArgType(), a)
	}
	if v != nil {
		req = req.WithParam(p.name, p.codec.Encode(*v))
	}
	return next(req)
}

func (p paramCombinator[T]) DocumentParam(doc Docs, next DocsCont) Docs {
	return next(doc.RegisterParam(DocEntry{Name: p.name, Kind: KindOptional}))
}
