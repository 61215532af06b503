package servant

import (
	"context"
	"strings"
	"testing"
)

func TestEndpoint_ChainDecodesInOrder(t *testing.T) {
	type result struct {
		author *string
		tags   []int
		draft  bool
	}

	e := NewEndpoint("/news",
		Param("author", String()),
		Params("tag", Int()),
		Flag("draft"),
	).Handle(Handler3(func(ctx context.Context, author *string, tags []int, draft bool) (result, error) {
		return result{author: author, tags: tags, draft: draft}, nil
	}))

	res, err := e.Invoke(context.Background(), ParseQuery("tag=4&author=ada&draft&tag[]=5"))
	if err != nil {
		t.Fatal(err)
	}
	got := res.(result)
	if got.author == nil || *got.author != "ada" {
		t.Errorf("author = %v, want ada", got.author)
	}
	if len(got.tags) != 2 || got.tags[0] != 4 || got.tags[1] != 5 {
		t.Errorf("tags = %v, want [4 5]", got.tags)
	}
	if !got.draft {
		t.Error("draft = false, want true")
	}
}

func TestEndpoint_ChainIndependence(t *testing.T) {
	// Interpreting [Flag(x), Param(y)] must give the same y as
	// interpreting Param(y) alone against the same query.
	query := ParseQuery("x=true&y=7")

	alone := NewEndpoint("/a", Param("y", Int())).
		Handle(Handler1(func(ctx context.Context, y *int) (*int, error) { return y, nil }))
	chained := NewEndpoint("/b", Flag("x"), Param("y", Int())).
		Handle(Handler2(func(ctx context.Context, x bool, y *int) (*int, error) { return y, nil }))

	resAlone, err := alone.Invoke(context.Background(), query)
	if err != nil {
		t.Fatal(err)
	}
	resChained, err := chained.Invoke(context.Background(), query)
	if err != nil {
		t.Fatal(err)
	}

	a, c := resAlone.(*int), resChained.(*int)
	if a == nil || c == nil || *a != *c {
		t.Errorf("alone = %v, chained = %v; combinators must not interfere", a, c)
	}
}

func TestEndpoint_HandleArityMismatchPanics(t *testing.T) {
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(rec.(string), "2 combinators") {
			t.Errorf("panic message %q does not mention the combinator count", rec)
		}
	}()

	NewEndpoint("/x", Flag("a"), Flag("b")).
		Handle(Handler1(func(ctx context.Context, a bool) (bool, error) { return a, nil }))
}

func TestEndpoint_HandleTypeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	// Param decodes *int, the handler wants *string.
	NewEndpoint("/x", Param("n", Int())).
		Handle(Handler1(func(ctx context.Context, n *string) (*string, error) { return n, nil }))
}

func TestEndpoint_HandleNilActionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	NewEndpoint("/x").Handle(nil)
}

func TestEndpoint_BuildRequestArityMismatch(t *testing.T) {
	e := NewEndpoint("/x", Flag("a")).
		Handle(Handler1(func(ctx context.Context, a bool) (bool, error) { return a, nil }))

	if _, err := e.BuildRequest(); err == nil {
		t.Error("expected error for missing argument")
	}
	if _, err := e.BuildRequest(true, true); err == nil {
		t.Error("expected error for extra argument")
	}
}

func TestEndpoint_BuildRequestChainOrder(t *testing.T) {
	e := NewEndpoint("/news",
		Param("author", String()),
		Params("tag", Int()),
		Flag("draft"),
	).Handle(Handler3(func(ctx context.Context, author *string, tags []int, draft bool) (Empty, error) {
		return nil, nil
	}))

	req, err := e.BuildRequest(ptr("ada"), []int{4, 5}, true)
	if err != nil {
		t.Fatal(err)
	}
	want := "author=ada&tag=4&tag=5&draft"
	if got := req.QueryString(); got != want {
		t.Errorf("QueryString() = %q, want %q", got, want)
	}
}

func TestEndpoint_MethodDefaultsToGET(t *testing.T) {
	e := NewEndpoint("/x")
	if e.HTTPMethod() != "GET" {
		t.Errorf("HTTPMethod() = %q, want GET", e.HTTPMethod())
	}
	if e.Method("POST").HTTPMethod() != "POST" {
		t.Error("Method(POST) did not stick")
	}
}
