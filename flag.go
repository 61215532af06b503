package servant

import "reflect"

// flagCombinator is a boolean query parameter inferred from key presence.
type flagCombinator struct {
	name string
}

// Flag declares a boolean query parameter named name. The decoded handler
// argument is true when the key is present bare ("f"), or present with a
// value of exactly "true", "1" or the empty string ("f="). Any other value
// is false, as is absence. The truthy set is case-sensitive.
func Flag(name string) Combinator {
	return flagCombinator{name: name}
}

func (f flagCombinator) ParamName() string     { return f.name }
func (f flagCombinator) Kind() ParamKind       { return KindFlag }
func (f flagCombinator) ArgType() reflect.Type { return reflect.TypeFor[bool]() }

func (f flagCombinator) DecodeRequest(q ParsedQuery, next ServerCont) (any, error) {
	v := q.Lookup(f.name)
	set := false
	switch v.Presence {
	case PresentNoValue:
		set = true
	case PresentWithValue:
		// "f=" counts as true: the empty text after an explicit "=" is in
		// the truthy set, distinct from the bare-key case above.
		switch v.Text {
		case "true", "1", "":
			set = true
		}
	}
	return next(set)
}

func (f flagCombinator) EncodeRequest(req Request, a any, next ClientCont) (Request, error) {
	v, ok := a.(bool)
	if !ok {
		return Request{}, argError(f.name, f.ArgType(), a)
	}
	if v {
		// Encoded as a bare key, no "=".
		req = req.WithFlag(f.name)
	}
	return next(req)
}

func (f flagCombinator) DocumentParam(doc Docs, next DocsCont) Docs {
	return next(doc.RegisterParam(DocEntry{Name: f.name, Kind: KindFlag}))
}
