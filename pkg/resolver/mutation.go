package resolver

import (
	"github.com/feyzullahyildiz/patika-graphql/pkg/model"
)

// Mutations follow one shape per kind: add always succeeds and returns the
// new record with its assigned id; update applies a partial patch and
// returns the merged record; delete removes and returns the record; delete-
// all clears the collection and returns the removed count. Update and
// delete fail with *NotFoundError when the id does not exist, and leave the
// store untouched in that case.

// AddUser creates a user from in.
func (r *Resolver) AddUser(in model.UserInput) model.User {
	return r.store.Users.Add(func(id int) model.User {
		return model.User{ID: id, Username: in.Username, Email: in.Email}
	})
}

// UpdateUser applies patch to the user with the given id.
func (r *Resolver) UpdateUser(id int, patch model.UserPatch) (model.User, error) {
	u, ok := r.store.Users.Update(id, patch.Apply)
	if !ok {
		return model.User{}, &NotFoundError{Kind: "user", ID: id}
	}
	return u, nil
}

// DeleteUser removes the user with the given id and returns it.
func (r *Resolver) DeleteUser(id int) (model.User, error) {
	u, ok := r.store.Users.Remove(id)
	if !ok {
		return model.User{}, &NotFoundError{Kind: "user", ID: id}
	}
	return u, nil
}

// DeleteAllUsers clears the user collection and returns the removed count.
func (r *Resolver) DeleteAllUsers() int {
	return r.store.Users.Clear()
}

// AddEvent creates an event from in. The location and user references are
// not validated; they may dangle.
func (r *Resolver) AddEvent(in model.EventInput) model.Event {
	return r.store.Events.Add(func(id int) model.Event {
		return model.Event{
			ID:         id,
			Title:      in.Title,
			Desc:       in.Desc,
			Date:       in.Date,
			From:       in.From,
			LocationID: in.LocationID,
			UserID:     in.UserID,
		}
	})
}

// UpdateEvent applies patch to the event with the given id.
func (r *Resolver) UpdateEvent(id int, patch model.EventPatch) (model.Event, error) {
	e, ok := r.store.Events.Update(id, patch.Apply)
	if !ok {
		return model.Event{}, &NotFoundError{Kind: "event", ID: id}
	}
	return e, nil
}

// DeleteEvent removes the event with the given id and returns it.
func (r *Resolver) DeleteEvent(id int) (model.Event, error) {
	e, ok := r.store.Events.Remove(id)
	if !ok {
		return model.Event{}, &NotFoundError{Kind: "event", ID: id}
	}
	return e, nil
}

// DeleteAllEvents clears the event collection and returns the removed count.
func (r *Resolver) DeleteAllEvents() int {
	return r.store.Events.Clear()
}

// AddLocation creates a location from in.
func (r *Resolver) AddLocation(in model.LocationInput) model.Location {
	return r.store.Locations.Add(func(id int) model.Location {
		return model.Location{ID: id, Name: in.Name, Desc: in.Desc, Lat: in.Lat, Lng: in.Lng}
	})
}

// UpdateLocation applies patch to the location with the given id.
func (r *Resolver) UpdateLocation(id int, patch model.LocationPatch) (model.Location, error) {
	l, ok := r.store.Locations.Update(id, patch.Apply)
	if !ok {
		return model.Location{}, &NotFoundError{Kind: "location", ID: id}
	}
	return l, nil
}

// DeleteLocation removes the location with the given id and returns it.
func (r *Resolver) DeleteLocation(id int) (model.Location, error) {
	l, ok := r.store.Locations.Remove(id)
	if !ok {
		return model.Location{}, &NotFoundError{Kind: "location", ID: id}
	}
	return l, nil
}

// DeleteAllLocations clears the location collection and returns the removed
// count.
func (r *Resolver) DeleteAllLocations() int {
	return r.store.Locations.Clear()
}

// AddParticipant creates a participant link from in.
func (r *Resolver) AddParticipant(in model.ParticipantInput) model.Participant {
	return r.store.Participants.Add(func(id int) model.Participant {
		return model.Participant{ID: id, UserID: in.UserID, EventID: in.EventID}
	})
}

// UpdateParticipant applies patch to the participant with the given id.
func (r *Resolver) UpdateParticipant(id int, patch model.ParticipantPatch) (model.Participant, error) {
	p, ok := r.store.Participants.Update(id, patch.Apply)
	if !ok {
		return model.Participant{}, &NotFoundError{Kind: "participant", ID: id}
	}
	return p, nil
}

// DeleteParticipant removes the participant with the given id and returns
// it.
func (r *Resolver) DeleteParticipant(id int) (model.Participant, error) {
	p, ok := r.store.Participants.Remove(id)
	if !ok {
		return model.Participant{}, &NotFoundError{Kind: "participant", ID: id}
	}
	return p, nil
}

// DeleteAllParticipants clears the participant collection and returns the
// removed count.
func (r *Resolver) DeleteAllParticipants() int {
	return r.store.Participants.Clear()
}
