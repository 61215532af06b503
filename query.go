package servant

import "strings"

// Presence describes the outcome of looking up a single query key.
type Presence int

const (
	// Absent means the key does not appear in the query string at all.
	Absent Presence = iota
	// PresentNoValue means the key appears as a bare token with no "=".
	PresentNoValue
	// PresentWithValue means the key appears as "key=text"; text may be empty.
	PresentWithValue
)

// String returns the string representation of the presence state.
func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case PresentNoValue:
		return "present"
	case PresentWithValue:
		return "present-with-value"
	default:
		return "unknown"
	}
}

// QueryValue is one lookup result: the presence state plus the value text
// when Presence is PresentWithValue.
type QueryValue struct {
	Presence Presence
	Text     string
}

// queryPair is one stored entry of a parsed query string. hasValue
// distinguishes a bare key ("a") from a key with an empty value ("a=").
type queryPair struct {
	key      string
	value    string
	hasValue bool
}

// ParsedQuery is an ordered multi-map view of a query string. Entries keep
// their original order, and duplicate keys are legal and preserved. A
// ParsedQuery is built once per request and read-only afterward.
type ParsedQuery struct {
	pairs []queryPair
}

// ParseQuery parses an already percent-decoded query string.
//
// The input is split on "&"; each token is split on the first "=". A token
// without "=" is stored as a key with no value, a token with "=" is stored
// with the (possibly empty) text after it. No character validation is
// performed beyond that: percent-decoding is the caller's responsibility.
func ParseQuery(decoded string) ParsedQuery {
	var pq ParsedQuery
	for decoded != "" {
		var token string
		token, decoded, _ = strings.Cut(decoded, "&")
		if token == "" {
			continue
		}
		key, value, hasValue := strings.Cut(token, "=")
		pq.pairs = append(pq.pairs, queryPair{key: key, value: value, hasValue: hasValue})
	}
	return pq
}

// Lookup returns the tri-state result for name. If the key appears more
// than once, the first occurrence wins.
func (pq ParsedQuery) Lookup(name string) QueryValue {
	for _, p := range pq.pairs {
		if p.key != name {
			continue
		}
		if !p.hasValue {
			return QueryValue{Presence: PresentNoValue}
		}
		return QueryValue{Presence: PresentWithValue, Text: p.value}
	}
	return QueryValue{Presence: Absent}
}

// LookupAll returns every entry stored under name or name+"[]", in original
// occurrence order. The two key forms may be mixed within one query string
// and are matched interchangeably. Absent keys contribute nothing; the
// returned values are PresentNoValue or PresentWithValue only.
func (pq ParsedQuery) LookupAll(name string) []QueryValue {
	arrayKey := name + "[]"
	var out []QueryValue
	for _, p := range pq.pairs {
		if p.key != name && p.key != arrayKey {
			continue
		}
		if !p.hasValue {
			out = append(out, QueryValue{Presence: PresentNoValue})
		} else {
			out = append(out, QueryValue{Presence: PresentWithValue, Text: p.value})
		}
	}
	return out
}

// Len returns the number of stored entries.
func (pq ParsedQuery) Len() int { return len(pq.pairs) }
