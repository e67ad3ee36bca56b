package graphql

import (
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/feyzullahyildiz/patika-graphql/pkg/model"
)

// Completion walks a record against the requested selection set and builds
// the response map. Scalar fields come straight off the record; relation
// fields call into the resolver and recurse, so a relation is only ever
// looked up when the client asked for it.

func (x *execution) user(sels ast.SelectionSet, u model.User) map[string]interface{} {
	result := make(map[string]interface{})
	for _, f := range x.fields(sels) {
		alias := fieldAlias(f)
		switch f.Name {
		case "__typename":
			result[alias] = "User"
		case "id":
			result[alias] = u.ID
		case "username":
			result[alias] = u.Username
		case "email":
			result[alias] = u.Email
		case "events":
			result[alias] = x.eventList(f.SelectionSet, x.ex.resolver.UserEvents(u))
		}
	}
	return result
}

func (x *execution) userOrNil(sels ast.SelectionSet, u *model.User) interface{} {
	if u == nil {
		return nil
	}
	return x.user(sels, *u)
}

func (x *execution) userList(sels ast.SelectionSet, users []model.User) []interface{} {
	out := make([]interface{}, len(users))
	for i, u := range users {
		out[i] = x.user(sels, u)
	}
	return out
}

func (x *execution) event(sels ast.SelectionSet, e model.Event) map[string]interface{} {
	result := make(map[string]interface{})
	for _, f := range x.fields(sels) {
		alias := fieldAlias(f)
		switch f.Name {
		case "__typename":
			result[alias] = "Event"
		case "id":
			result[alias] = e.ID
		case "title":
			result[alias] = e.Title
		case "desc":
			result[alias] = e.Desc
		case "date":
			result[alias] = e.Date
		case "from":
			result[alias] = e.From
		case "location_id":
			result[alias] = e.LocationID
		case "user_id":
			result[alias] = e.UserID
		case "user":
			result[alias] = x.userOrNil(f.SelectionSet, x.ex.resolver.EventOrganizer(e))
		case "location":
			result[alias] = x.locationOrNil(f.SelectionSet, x.ex.resolver.EventLocation(e))
		case "participants":
			result[alias] = x.userList(f.SelectionSet, x.ex.resolver.EventParticipants(e))
		}
	}
	return result
}

func (x *execution) eventOrNil(sels ast.SelectionSet, e *model.Event) interface{} {
	if e == nil {
		return nil
	}
	return x.event(sels, *e)
}

func (x *execution) eventList(sels ast.SelectionSet, events []model.Event) []interface{} {
	out := make([]interface{}, len(events))
	for i, e := range events {
		out[i] = x.event(sels, e)
	}
	return out
}

func (x *execution) location(sels ast.SelectionSet, l model.Location) map[string]interface{} {
	result := make(map[string]interface{})
	for _, f := range x.fields(sels) {
		alias := fieldAlias(f)
		switch f.Name {
		case "__typename":
			result[alias] = "Location"
		case "id":
			result[alias] = l.ID
		case "name":
			result[alias] = l.Name
		case "desc":
			result[alias] = l.Desc
		case "lat":
			result[alias] = l.Lat
		case "lng":
			result[alias] = l.Lng
		}
	}
	return result
}

func (x *execution) locationOrNil(sels ast.SelectionSet, l *model.Location) interface{} {
	if l == nil {
		return nil
	}
	return x.location(sels, *l)
}

func (x *execution) locationList(sels ast.SelectionSet, locations []model.Location) []interface{} {
	out := make([]interface{}, len(locations))
	for i, l := range locations {
		out[i] = x.location(sels, l)
	}
	return out
}

func (x *execution) participant(sels ast.SelectionSet, p model.Participant) map[string]interface{} {
	result := make(map[string]interface{})
	for _, f := range x.fields(sels) {
		alias := fieldAlias(f)
		switch f.Name {
		case "__typename":
			result[alias] = "Participant"
		case "id":
			result[alias] = p.ID
		case "user_id":
			result[alias] = p.UserID
		case "event_id":
			result[alias] = p.EventID
		case "user":
			result[alias] = x.userOrNil(f.SelectionSet, x.ex.resolver.ParticipantUser(p))
		case "event":
			result[alias] = x.eventOrNil(f.SelectionSet, x.ex.resolver.ParticipantEvent(p))
		}
	}
	return result
}

func (x *execution) participantOrNil(sels ast.SelectionSet, p *model.Participant) interface{} {
	if p == nil {
		return nil
	}
	return x.participant(sels, *p)
}

func (x *execution) participantList(sels ast.SelectionSet, participants []model.Participant) []interface{} {
	out := make([]interface{}, len(participants))
	for i, p := range participants {
		out[i] = x.participant(sels, p)
	}
	return out
}

func (x *execution) count(sels ast.SelectionSet, n int) map[string]interface{} {
	result := make(map[string]interface{})
	for _, f := range x.fields(sels) {
		alias := fieldAlias(f)
		switch f.Name {
		case "__typename":
			result[alias] = "Count"
		case "count":
			result[alias] = n
		}
	}
	return result
}
