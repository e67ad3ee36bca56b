package model

// User is a registered account. A user organizes events (Event.UserID) and
// joins events through Participant rows.
type User struct {
	ID       int    `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
}

// Event is a scheduled happening at a location, organized by a user.
// LocationID and UserID are unenforced references: they may point at records
// that no longer exist.
type Event struct {
	ID         int    `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	Desc       string `json:"desc" yaml:"desc"`
	Date       string `json:"date" yaml:"date"`
	From       string `json:"from" yaml:"from"`
	LocationID int    `json:"location_id" yaml:"location_id"`
	UserID     int    `json:"user_id" yaml:"user_id"`
}

// Location is a place where events happen.
type Location struct {
	ID   int     `json:"id" yaml:"id"`
	Name string  `json:"name" yaml:"name"`
	Desc string  `json:"desc" yaml:"desc"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lng  float64 `json:"lng" yaml:"lng"`
}

// Participant links a user to an event they attend. Duplicate rows are
// allowed and preserved.
type Participant struct {
	ID      int `json:"id" yaml:"id"`
	UserID  int `json:"user_id" yaml:"user_id"`
	EventID int `json:"event_id" yaml:"event_id"`
}

func (u User) RecordID() int        { return u.ID }
func (e Event) RecordID() int       { return e.ID }
func (l Location) RecordID() int    { return l.ID }
func (p Participant) RecordID() int { return p.ID }
