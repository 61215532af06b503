package main

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/input-output-hk/servant"
	"github.com/input-output-hk/servant/middleware"
)

// The demo news API exercises every combinator kind against a fixed
// in-memory dataset.

type News struct {
	ID     int64    `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
	Draft  bool     `json:"draft"`
}

// SearchParams is bound from the whole query string by the /news/search
// endpoint.
type SearchParams struct {
	Query string `schema:"q" validate:"required,min=2"`
	Limit int    `schema:"limit" validate:"gte=0,lte=100"`
}

var newsItems = []News{
	{ID: 1, Title: "Combinators all the way down", Author: "ada", Tags: []string{"design", "api"}},
	{ID: 2, Title: "Three interpreters, one chain", Author: "grace", Tags: []string{"api"}},
	{ID: 3, Title: "Unreleased notes", Author: "ada", Tags: []string{"draft"}, Draft: true},
}

func listNews(ctx context.Context, author *string, tags []string, drafts bool) ([]News, error) {
	out := make([]News, 0, len(newsItems))
	for _, n := range newsItems {
		if n.Draft && !drafts {
			continue
		}
		if author != nil && n.Author != *author {
			continue
		}
		if len(tags) > 0 && !slices.ContainsFunc(tags, func(t string) bool {
			return slices.Contains(n.Tags, t)
		}) {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func getNews(ctx context.Context, id int64) (News, error) {
	for _, n := range newsItems {
		if n.ID == id {
			return n, nil
		}
	}
	return News{}, servant.Errorf(servant.CodeNotFound, "no news item %d", id)
}

func searchNews(ctx context.Context, p SearchParams) ([]News, error) {
	q := strings.ToLower(p.Query)
	var out []News
	for _, n := range newsItems {
		if strings.Contains(strings.ToLower(n.Title), q) {
			out = append(out, n)
			if p.Limit > 0 && len(out) == p.Limit {
				break
			}
		}
	}
	return out, nil
}

func newDemoApp(logger *slog.Logger) *servant.App {
	app := servant.NewApp().
		WithLogger(logger).
		WithUnaryInterceptor(middleware.LoggingInterceptor(logger))

	app.Register(servant.NewEndpoint("/news",
		servant.Param("author", servant.String()),
		servant.Params("tag", servant.String()),
		servant.Flag("drafts"),
	).Handle(servant.Handler3(listNews)))

	app.Register(servant.NewEndpoint("/news/get",
		servant.Required("id", servant.Int64()),
	).Handle(servant.Handler1(getNews)))

	app.Register(servant.NewEndpoint("/news/search",
		servant.Bind[SearchParams](),
	).Handle(servant.Handler1(searchNews)))

	return app
}
