package servant

import "reflect"

// paramsCombinator is a zero-or-more query parameter with array-style key
// support.
type paramsCombinator[T any] struct {
	name  string
	codec Codec[T]
}

// Params declares a query parameter named name that may occur any number of
// times, under the key name or name+"[]" interchangeably. The decoded
// handler argument is []T holding the successfully decoded occurrences in
// their original order. Occurrences without a value contribute nothing, and
// occurrences the codec cannot decode are silently dropped; the handler
// cannot tell a dropped occurrence from one that was never sent.
func Params[T any](name string, codec Codec[T]) Combinator {
	return paramsCombinator[T]{name: name, codec: codec}
}

func (p paramsCombinator[T]) ParamName() string     { return p.name }
func (p paramsCombinator[T]) Kind() ParamKind       { return KindList }
func (p paramsCombinator[T]) ArgType() reflect.Type { return reflect.TypeFor[[]T]() }

func (p paramsCombinator[T]) DecodeRequest(q ParsedQuery, next ServerCont) (any, error) {
	entries := q.LookupAll(p.name)
	args := make([]T, 0, len(entries))
	for _, e := range entries {
		if e.Presence != PresentWithValue {
			continue
		}
		if decoded, ok := p.codec.Decode(e.Text); ok {
			args = append(args, decoded)
		}
	}
	return next(args)
}

func (p paramsCombinator[T]) EncodeRequest(req Request, a any, next ClientCont) (Request, error) {
	vs, ok := a.([]T)
	if !ok && a != nil {
		return Request{}, argError(p.name, p.ArgType(), a)
	}
	// One occurrence per element; an empty slice leaves req untouched.
	for _, v := range vs {
		req = req.WithParam(p.name, p.codec.Encode(v))
	}
	return next(req)
}

func (p paramsCombinator[T]) DocumentParam(doc Docs, next DocsCont) Docs {
	return next(doc.RegisterParam(DocEntry{Name: p.name, Kind: KindList}))
}
