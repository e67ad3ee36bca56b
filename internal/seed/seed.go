// Package seed supplies the store's initial dataset: a small built-in one,
// or a user-provided YAML/JSON file.
package seed

import (
	"github.com/feyzullahyildiz/patika-graphql/internal/store"
	"github.com/feyzullahyildiz/patika-graphql/pkg/model"
)

// Default returns the built-in development dataset. Ids are distinct within
// each collection; the store seeds its allocators above them.
func Default() store.Seed {
	return store.Seed{
		Users: []model.User{
			{ID: 1, Username: "feyza", Email: "feyza@example.com"},
			{ID: 2, Username: "mehmet", Email: "mehmet@example.com"},
			{ID: 3, Username: "deniz", Email: "deniz@example.com"},
		},
		Locations: []model.Location{
			{ID: 1, Name: "Maçka Park", Desc: "Green field near Taksim", Lat: 41.0451, Lng: 28.9934},
			{ID: 2, Name: "Kadıköy Pier", Desc: "Waterfront meeting spot", Lat: 40.9927, Lng: 29.0230},
		},
		Events: []model.Event{
			{ID: 1, Title: "Morning Run", Desc: "Easy 5k around the park", Date: "2023-04-01", From: "07:30", LocationID: 1, UserID: 1},
			{ID: 2, Title: "Chess Meetup", Desc: "Casual games, all levels", Date: "2023-04-02", From: "14:00", LocationID: 2, UserID: 2},
			{ID: 3, Title: "Picnic", Desc: "Bring something to share", Date: "2023-04-08", From: "12:00", LocationID: 1, UserID: 1},
		},
		Participants: []model.Participant{
			{ID: 1, UserID: 1, EventID: 1},
			{ID: 2, UserID: 2, EventID: 1},
			{ID: 3, UserID: 3, EventID: 2},
			{ID: 4, UserID: 1, EventID: 3},
		},
	}
}

// Load returns the seed from path, or the built-in dataset when path is
// empty.
func Load(path string) (store.Seed, error) {
	if path == "" {
		return Default(), nil
	}
	return store.LoadSeedFile(path)
}
