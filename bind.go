package servant

import (
	"net/url"
	"reflect"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

var (
	bindValidate = validator.New()
	bindDecoder  = schema.NewDecoder()
	bindEncoder  = schema.NewEncoder()
)

func init() {
	bindDecoder.IgnoreUnknownKeys(true)
}

// bindCombinator binds the whole query string to one struct value.
type bindCombinator[T any] struct{}

// Bind declares a struct-bound group of query parameters. T must be a
// struct; its fields are decoded from the query by field name or `schema`
// tag and validated with their `validate` tags. The decoded handler
// argument is T.
//
// Unlike the scalar combinators, Bind surfaces failures: an undecodable
// field or a failed validation stops interpretation with an
// invalid_argument error. It also deliberately breaks the one-key-per-
// combinator rule, so mixing Bind with scalar combinators that share field
// names reads the same entries twice.
func Bind[T any]() Combinator {
	return bindCombinator[T]{}
}

func (b bindCombinator[T]) ParamName() string {
	return reflect.TypeFor[T]().Name()
}

func (b bindCombinator[T]) Kind() ParamKind       { return KindStruct }
func (b bindCombinator[T]) ArgType() reflect.Type { return reflect.TypeFor[T]() }

func (b bindCombinator[T]) DecodeRequest(q ParsedQuery, next ServerCont) (any, error) {
	var v T
	if err := bindDecoder.Decode(&v, q.values()); err != nil {
		return nil, Errorf(CodeInvalidArgument, "failed to decode query: %v", err)
	}
	if err := bindValidate.Struct(v); err != nil {
		// Left unwrapped so DefaultErrorTransformer can expand
		// validator.ValidationErrors into per-field details.
		return nil, err
	}
	return next(v)
}

func (b bindCombinator[T]) EncodeRequest(req Request, a any, next ClientCont) (Request, error) {
	v, ok := a.(T)
	if !ok {
		return Request{}, argError(b.ParamName(), b.ArgType(), a)
	}
	values := url.Values{}
	if err := bindEncoder.Encode(&v, values); err != nil {
		return Request{}, Errorf(CodeInternal, "failed to encode %s: %v", b.ParamName(), err)
	}
	// url.Values iterates in map order; sort keys so the produced query
	// string is deterministic.
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		for _, val := range values[k] {
			req = req.WithParam(k, val)
		}
	}
	return next(req)
}

func (b bindCombinator[T]) DocumentParam(doc Docs, next DocsCont) Docs {
	return next(doc.RegisterParam(DocEntry{Name: b.ParamName(), Kind: KindStruct}))
}

// values flattens the parsed query into url.Values for the schema decoder.
// A key present without a value maps to the empty string, matching what
// net/url's own query parsing produces for a bare key.
func (pq ParsedQuery) values() url.Values {
	out := url.Values{}
	for _, p := range pq.pairs {
		out[p.key] = append(out[p.key], p.value)
	}
	return out
}
