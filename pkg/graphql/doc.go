// Package graphql exposes the event API over GraphQL.
//
// The schema is a fixed embedded SDL covering four types (User, Event,
// Location, Participant) with list and by-id queries, add/update/delete/
// delete-all mutations, and relation fields between the types.
//
// Requests are parsed and validated with gqlparser, then executed by
// walking the requested selection set: scalar fields are read straight off
// the records, and relation fields are resolved lazily through the
// resolver layer, recursing for nested shapes. Aliases and fragments are
// supported. Introspection (__schema, __type) can be toggled off.
//
// Error semantics mirror the resolver layer: a by-id query that matches
// nothing is a null result, while an update or delete of a missing id is a
// response error with extensions.code = NOT_FOUND. One failing field does
// not stop its siblings from resolving.
//
// Basic usage:
//
//	schema := graphql.MustSchema()
//	res := resolver.New(store.New(seed.Default()))
//	executor := graphql.NewExecutor(schema, res, graphql.Options{Introspection: true})
//	handler := graphql.NewHandler(executor, graphql.HandlerOptions{Playground: true})
//	http.Handle("/graphql", handler)
package graphql
