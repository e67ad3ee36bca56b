package store

import (
	"github.com/feyzullahyildiz/patika-graphql/pkg/model"
)

// Store holds the four entity collections. Construct one per process (or
// per test) and pass it to the resolver layer; there is no package-level
// state.
type Store struct {
	Users        *Collection[model.User]
	Events       *Collection[model.Event]
	Locations    *Collection[model.Location]
	Participants *Collection[model.Participant]
}

// New creates a Store populated from seed. Each collection's id allocator
// starts above the highest id present in its seed slice.
func New(seed Seed) *Store {
	return &Store{
		Users:        NewCollection(seed.Users),
		Events:       NewCollection(seed.Events),
		Locations:    NewCollection(seed.Locations),
		Participants: NewCollection(seed.Participants),
	}
}
