// Package model defines the four entity kinds served by the API — User,
// Event, Location, and Participant — together with their add-input and
// partial-patch shapes.
//
// Records are plain values keyed by an integer id that is unique and
// monotonically increasing within each kind's collection. Foreign keys
// (Event.LocationID, Event.UserID, Participant.UserID, Participant.EventID)
// are not enforced: a reference may dangle, and relation lookups treat a
// dangling reference as "no match" rather than an error.
package model
