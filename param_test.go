package servant

import (
	"context"
	"testing"
)

// singleParamEndpoint builds a one-combinator endpoint whose handler echoes
// the decoded argument back.
func singleParamEndpoint[A any](c Combinator) *Endpoint {
	return NewEndpoint("/echo", c).Handle(Handler1(func(ctx context.Context, a A) (A, error) {
		return a, nil
	}))
}

func decodeOne[A any](t *testing.T, c Combinator, query string) A {
	t.Helper()
	res, err := singleParamEndpoint[A](c).Invoke(context.Background(), ParseQuery(query))
	if err != nil {
		t.Fatalf("Invoke(%q) returned error: %v", query, err)
	}
	return res.(A)
}

func TestParam_Decode(t *testing.T) {
	p := Param("limit", Int())

	tests := []struct {
		name  string
		query string
		want  *int
	}{
		{"absent", "other=1", nil},
		{"present without value", "limit", nil},
		{"empty value", "limit=", nil},
		{"undecodable value", "limit=abc", nil},
		{"valid value", "limit=25", ptr(25)},
		{"duplicate first wins", "limit=25&limit=50", ptr(25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeOne[*int](t, p, tt.query)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("got %d, want nil", *got)
			case tt.want != nil && got == nil:
				t.Errorf("got nil, want %d", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("got %d, want %d", *got, *tt.want)
			}
		})
	}
}

func TestParam_DecodeFailureIndistinguishableFromAbsence(t *testing.T) {
	p := Param("limit", Int())
	absent := decodeOne[*int](t, p, "")
	malformed := decodeOne[*int](t, p, "limit=abc")
	if absent != nil || malformed != nil {
		t.Errorf("absent = %v, malformed = %v; both must decode to nil", absent, malformed)
	}
}

func TestParam_Encode(t *testing.T) {
	e := singleParamEndpoint[*int](Param("limit", Int()))

	req, err := e.BuildRequest(ptr(25))
	if err != nil {
		t.Fatal(err)
	}
	if got := req.QueryString(); got != "limit=25" {
		t.Errorf("QueryString() = %q, want %q", got, "limit=25")
	}
}

func TestParam_EncodeNilIsNoOp(t *testing.T) {
	e := singleParamEndpoint[*int](Param("limit", Int()))

	req, err := e.BuildRequest((*int)(nil))
	if err != nil {
		t.Fatal(err)
	}
	if got := req.QueryString(); got != "" {
		t.Errorf("QueryString() = %q, want empty", got)
	}
}

func TestParam_EncodeUntypedNil(t *testing.T) {
	e := singleParamEndpoint[*int](Param("limit", Int()))

	req, err := e.BuildRequest(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := req.QueryString(); got != "" {
		t.Errorf("QueryString() = %q, want empty", got)
	}
}

func TestParam_EncodeWrongTypeFails(t *testing.T) {
	e := singleParamEndpoint[*int](Param("limit", Int()))

	if _, err := e.BuildRequest("not a pointer"); err == nil {
		t.Error("expected error for mistyped argument")
	}
}

func TestParam_RoundTrip(t *testing.T) {
	e := singleParamEndpoint[*string](Param("q", String()))

	req, err := e.BuildRequest(ptr("hello"))
	if err != nil {
		t.Fatal(err)
	}
	got := decodeOne[*string](t, Param("q", String()), req.QueryString())
	if got == nil || *got != "hello" {
		t.Errorf("round trip = %v, want hello", got)
	}
}

func ptr[T any](v T) *T { return &v }
