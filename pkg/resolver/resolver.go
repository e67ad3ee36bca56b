package resolver

import (
	"github.com/feyzullahyildiz/patika-graphql/internal/store"
	"github.com/feyzullahyildiz/patika-graphql/pkg/model"
)

// Resolver implements the typed operation surface over a Store: collection
// and by-id queries, create/update/delete/delete-all mutations, and the
// per-relation lookups used to resolve nested fields.
type Resolver struct {
	store *store.Store
}

// New creates a Resolver backed by the given store.
func New(s *store.Store) *Resolver {
	return &Resolver{store: s}
}

// --- Collection queries ---

// Users returns all users in insertion order.
func (r *Resolver) Users() []model.User { return r.store.Users.List() }

// Events returns all events in insertion order.
func (r *Resolver) Events() []model.Event { return r.store.Events.List() }

// Locations returns all locations in insertion order.
func (r *Resolver) Locations() []model.Location { return r.store.Locations.List() }

// Participants returns all participants in insertion order.
func (r *Resolver) Participants() []model.Participant { return r.store.Participants.List() }

// --- By-id queries ---
//
// A miss returns nil, not an error: "no data" is a successful outcome for a
// single-record query.

// User returns the user with the given id, or nil.
func (r *Resolver) User(id int) *model.User {
	if u, ok := r.store.Users.Find(id); ok {
		return &u
	}
	return nil
}

// Event returns the event with the given id, or nil.
func (r *Resolver) Event(id int) *model.Event {
	if e, ok := r.store.Events.Find(id); ok {
		return &e
	}
	return nil
}

// Location returns the location with the given id, or nil.
func (r *Resolver) Location(id int) *model.Location {
	if l, ok := r.store.Locations.Find(id); ok {
		return &l
	}
	return nil
}

// Participant returns the participant with the given id, or nil.
func (r *Resolver) Participant(id int) *model.Participant {
	if p, ok := r.store.Participants.Find(id); ok {
		return &p
	}
	return nil
}

// --- Relations ---
//
// Each relation is a pure lookup against the store's current state. The
// executor invokes these lazily, only when the requested shape includes the
// relation. Dangling foreign keys resolve to nil (or are skipped in list
// relations), never to an error.

// UserEvents returns the events organized by u, in event insertion order.
func (r *Resolver) UserEvents(u model.User) []model.Event {
	return r.store.Events.FindAll(func(e model.Event) bool {
		return e.UserID == u.ID
	})
}

// EventLocation returns the event's location, or nil if the reference
// dangles.
func (r *Resolver) EventLocation(e model.Event) *model.Location {
	return r.Location(e.LocationID)
}

// EventOrganizer returns the event's organizing user, or nil if the
// reference dangles.
func (r *Resolver) EventOrganizer(e model.Event) *model.User {
	return r.User(e.UserID)
}

// EventParticipants returns the users attending e, in participant insertion
// order. Duplicate participant rows yield duplicate users; rows whose
// user_id dangles contribute nothing.
func (r *Resolver) EventParticipants(e model.Event) []model.User {
	links := r.store.Participants.FindAll(func(p model.Participant) bool {
		return p.EventID == e.ID
	})
	users := make([]model.User, 0, len(links))
	for _, link := range links {
		if u := r.User(link.UserID); u != nil {
			users = append(users, *u)
		}
	}
	return users
}

// ParticipantUser returns the linked user, or nil if the reference dangles.
func (r *Resolver) ParticipantUser(p model.Participant) *model.User {
	return r.User(p.UserID)
}

// ParticipantEvent returns the linked event, or nil if the reference
// dangles.
func (r *Resolver) ParticipantEvent(p model.Participant) *model.Event {
	return r.Event(p.EventID)
}
