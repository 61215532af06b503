// Package servant describes HTTP query-string parameters declaratively and
// derives three behaviors from one description: decoding incoming request
// queries into typed handler arguments, encoding typed call arguments into
// outgoing request queries, and documenting the parameters.
//
// An endpoint is a chain of combinators terminated by an action:
//
//	ep := servant.NewEndpoint("/news",
//	    servant.Param("author", servant.String()), // *string, nil when absent
//	    servant.Params("tag", servant.Int()),      // []int, any number of occurrences
//	    servant.Flag("draft"),                     // bool, from key presence
//	).Handle(servant.Handler3(listNews))
//
// The same value drives all three interpreters. An [App] serves it:
//
//	app := servant.NewApp()
//	app.Register(ep)
//	http.ListenAndServe(":8080", app.Handler())
//
// a [Client] calls it with the handler's argument list:
//
//	client.Call(ctx, ep, &news, author, tags, draft)
//
// and [Endpoint.Docs] describes it.
//
// Each combinator kind is a type implementing the three capability
// interfaces [ServerInterpretable], [ClientInterpretable] and
// [DocsInterpretable]; adding a kind never touches the drivers or the
// existing kinds.
//
// Decoding semantics are deliberate about the edge cases: a key present
// without "=" is distinct from one with an empty value, [Param] and
// [Params] degrade silently on undecodable text, [Params] accepts "name"
// and "name[]" keys interchangeably and preserves occurrence order, and
// duplicate keys resolve first-wins for single lookups but
// all-occurrences for list lookups.
package servant
