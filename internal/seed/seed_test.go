package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feyzullahyildiz/patika-graphql/internal/store"
)

func TestDefault(t *testing.T) {
	s := Default()

	require.NoError(t, s.Validate())
	assert.NotEmpty(t, s.Users)
	assert.NotEmpty(t, s.Events)
	assert.NotEmpty(t, s.Locations)
	assert.NotEmpty(t, s.Participants)

	// Every reference in the built-in dataset resolves.
	users := make(map[int]bool)
	for _, u := range s.Users {
		users[u.ID] = true
	}
	locations := make(map[int]bool)
	for _, l := range s.Locations {
		locations[l.ID] = true
	}
	events := make(map[int]bool)
	for _, e := range s.Events {
		events[e.ID] = true
		assert.True(t, users[e.UserID], "event %d references unknown user %d", e.ID, e.UserID)
		assert.True(t, locations[e.LocationID], "event %d references unknown location %d", e.ID, e.LocationID)
	}
	for _, p := range s.Participants {
		assert.True(t, users[p.UserID], "participant %d references unknown user %d", p.ID, p.UserID)
		assert.True(t, events[p.EventID], "participant %d references unknown event %d", p.ID, p.EventID)
	}
}

func TestLoad_EmptyPathFallsBack(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - id: 1
    username: solo
    email: solo@example.com
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Users, 1)
	assert.Equal(t, "solo", s.Users[0].Username)
	assert.Empty(t, s.Events)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, store.ErrSeedNotFound)
}
