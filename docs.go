package servant

import "fmt"

// ParamKind identifies the category of a documented query parameter.
type ParamKind int

const (
	// KindOptional is a single optional scalar parameter.
	KindOptional ParamKind = iota
	// KindList is a zero-or-more parameter with array-style key support.
	KindList
	// KindFlag is a boolean parameter inferred from key presence.
	KindFlag
	// KindRequired is a single mandatory scalar parameter.
	KindRequired
	// KindStruct is a struct-bound group of parameters.
	KindStruct
)

// String returns the string representation of the parameter kind.
func (k ParamKind) String() string {
	switch k {
	case KindOptional:
		return "optional"
	case KindList:
		return "list"
	case KindFlag:
		return "flag"
	case KindRequired:
		return "required"
	case KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so kinds serialize as their
// names in the manifest JSON.
func (k ParamKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for manifest consumers.
func (k *ParamKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "optional":
		*k = KindOptional
	case "list":
		*k = KindList
	case "flag":
		*k = KindFlag
	case "required":
		*k = KindRequired
	case "struct":
		*k = KindStruct
	default:
		return fmt.Errorf("unknown parameter kind %q", text)
	}
	return nil
}

// DocEntry describes one query parameter of an endpoint.
type DocEntry struct {
	Name string    `json:"name"`
	Kind ParamKind `json:"kind"`
}

// Docs is the accumulated documentation record for one endpoint. It is
// threaded by value through the docs interpreter and appended to
// monotonically; building it cannot fail.
type Docs struct {
	Method string     `json:"method"`
	Path   string     `json:"path"`
	Params []DocEntry `json:"params,omitempty"`
	Result string     `json:"result,omitempty"`
}

// RegisterParam returns the record with entry appended.
func (d Docs) RegisterParam(entry DocEntry) Docs {
	params := make([]DocEntry, len(d.Params), len(d.Params)+1)
	copy(params, d.Params)
	d.Params = append(params, entry)
	return d
}

// Docs walks the endpoint's combinator chain with the docs interpreter and
// returns the resulting record. Entries appear in chain order, which is
// also handler-argument order and client-argument order.
func (e *Endpoint) Docs() Docs {
	doc := Docs{
		Method: e.method,
		Path:   e.path,
		Result: e.action.resultName(),
	}
	var walk func(i int, doc Docs) Docs
	walk = func(i int, doc Docs) Docs {
		if i == len(e.chain) {
			return doc
		}
		return e.chain[i].DocumentParam(doc, func(d Docs) Docs {
			return walk(i+1, d)
		})
	}
	return walk(0, doc)
}
