package main

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/input-output-hk/servant/testutil"
)

func demoHandler() http.Handler {
	return newDemoApp(slog.New(slog.DiscardHandler)).Handler()
}

func TestDemo_ListNewsFiltersDrafts(t *testing.T) {
	w := testutil.NewRequest("/news").Do(demoHandler())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	items := testutil.DecodeResult[[]News](t, w)
	for _, n := range items {
		if n.Draft {
			t.Errorf("draft item %d returned without the drafts flag", n.ID)
		}
	}

	w = testutil.NewRequest("/news").WithFlag("drafts").Do(demoHandler())
	if got := len(testutil.DecodeResult[[]News](t, w)); got != 3 {
		t.Errorf("with drafts flag got %d items, want all 3", got)
	}
}

func TestDemo_ListNewsByAuthorAndTag(t *testing.T) {
	w := testutil.NewRequest("/news").
		WithParam("author", "ada").
		WithParam("tag", "design").
		Do(demoHandler())

	items := testutil.DecodeResult[[]News](t, w)
	if len(items) != 1 || items[0].ID != 1 {
		t.Errorf("items = %+v, want just item 1", items)
	}
}

func TestDemo_GetNewsRequiresID(t *testing.T) {
	w := testutil.NewRequest("/news/get").Do(demoHandler())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w = testutil.NewRequest("/news/get").WithParam("id", "2").Do(demoHandler())
	if got := testutil.DecodeResult[News](t, w); got.ID != 2 {
		t.Errorf("item = %+v, want id 2", got)
	}

	w = testutil.NewRequest("/news/get").WithParam("id", "99").Do(demoHandler())
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDemo_SearchValidates(t *testing.T) {
	w := testutil.NewRequest("/news/search").WithParam("q", "x").Do(demoHandler())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a one-character query", w.Code)
	}

	w = testutil.NewRequest("/news/search").WithParam("q", "combinators").Do(demoHandler())
	items := testutil.DecodeResult[[]News](t, w)
	if len(items) != 1 || items[0].ID != 1 {
		t.Errorf("items = %+v", items)
	}
}

func TestDemo_Manifest(t *testing.T) {
	app := newDemoApp(slog.New(slog.DiscardHandler))
	m := app.Manifest()
	if len(m) != 3 {
		t.Fatalf("manifest has %d routes, want 3", len(m))
	}
	if m[0].Path != "/news" || m[1].Path != "/news/get" || m[2].Path != "/news/search" {
		t.Errorf("manifest order = %v", []string{m[0].Path, m[1].Path, m[2].Path})
	}
}
