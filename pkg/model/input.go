package model

// Input types carry the caller-supplied fields of an add mutation. Every
// field is required; the id is assigned by the store on insert.

// UserInput is the payload for creating a user.
type UserInput struct {
	Username string
	Email    string
}

// EventInput is the payload for creating an event.
type EventInput struct {
	Title      string
	Desc       string
	Date       string
	From       string
	LocationID int
	UserID     int
}

// LocationInput is the payload for creating a location.
type LocationInput struct {
	Name string
	Desc string
	Lat  float64
	Lng  float64
}

// ParticipantInput is the payload for creating a participant link.
type ParticipantInput struct {
	UserID  int
	EventID int
}

// Patch types describe a partial update. A nil field leaves the current
// value unchanged; there is no way to clear a field through a patch, so an
// explicitly supplied null behaves the same as an omitted field. The id is
// never part of a patch.

// UserPatch is a partial update of a user.
type UserPatch struct {
	Username *string
	Email    *string
}

// Apply returns a copy of u with the non-nil patch fields overwritten.
func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}

// EventPatch is a partial update of an event.
type EventPatch struct {
	Title      *string
	Desc       *string
	Date       *string
	From       *string
	LocationID *int
	UserID     *int
}

// Apply returns a copy of e with the non-nil patch fields overwritten.
func (p EventPatch) Apply(e Event) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Desc != nil {
		e.Desc = *p.Desc
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.From != nil {
		e.From = *p.From
	}
	if p.LocationID != nil {
		e.LocationID = *p.LocationID
	}
	if p.UserID != nil {
		e.UserID = *p.UserID
	}
	return e
}

// LocationPatch is a partial update of a location.
type LocationPatch struct {
	Name *string
	Desc *string
	Lat  *float64
	Lng  *float64
}

// Apply returns a copy of l with the non-nil patch fields overwritten.
func (p LocationPatch) Apply(l Location) Location {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Desc != nil {
		l.Desc = *p.Desc
	}
	if p.Lat != nil {
		l.Lat = *p.Lat
	}
	if p.Lng != nil {
		l.Lng = *p.Lng
	}
	return l
}

// ParticipantPatch is a partial update of a participant link.
type ParticipantPatch struct {
	UserID  *int
	EventID *int
}

// Apply returns a copy of pt with the non-nil patch fields overwritten.
func (p ParticipantPatch) Apply(pt Participant) Participant {
	if p.UserID != nil {
		pt.UserID = *p.UserID
	}
	if p.EventID != nil {
		pt.EventID = *p.EventID
	}
	return pt
}
