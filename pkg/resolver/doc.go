// Package resolver implements the typed operation surface of the API:
// queries (list and by-id), mutations (add, partial update, delete,
// delete-all), and relation lookups between the four entity kinds.
//
// The error semantics are deliberately asymmetric:
//
//   - A by-id query or relation lookup that matches nothing returns nil.
//     That is a successful "no data" result.
//   - An update or delete targeting a missing id returns *NotFoundError.
//     That is a request-level failure, and the store is left unchanged.
//
// Relation lookups are pure reads of the store's current state and are
// meant to be invoked lazily, only for fields the client actually
// requested. Each is a linear scan; nested shapes re-scan with no
// memoization.
package resolver
