// Package store provides the in-memory entity store backing the API.
//
// Each entity kind lives in its own Collection: an ordered, mutex-guarded
// slice with a per-kind monotonic id allocator. Collections support:
//
//   - List: snapshot in insertion order
//   - Find / FindAll: linear-scan lookups (a miss is not an error)
//   - Add: id allocation + append under one lock
//   - Update: atomic read-modify-write preserving position
//   - Remove / Clear: single and bulk deletion
//
// Ids are never reused within a collection, even after Clear: the allocator
// is a counter seeded above the highest seed id, not derived from the
// current contents. State lives for the process lifetime only.
package store
