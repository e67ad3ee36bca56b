package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feyzullahyildiz/patika-graphql/pkg/model"
)

func newUser(id int, username string) model.User {
	return model.User{ID: id, Username: username, Email: username + "@example.com"}
}

func addUser(c *Collection[model.User], username string) model.User {
	return c.Add(func(id int) model.User {
		return newUser(id, username)
	})
}

func TestCollection_AddAssignsMonotonicIDs(t *testing.T) {
	c := NewCollection[model.User](nil)

	u1 := addUser(c, "a")
	u2 := addUser(c, "b")
	u3 := addUser(c, "c")

	assert.Equal(t, 1, u1.ID)
	assert.Equal(t, 2, u2.ID)
	assert.Equal(t, 3, u3.ID)
}

func TestCollection_IDsNotReusedAfterRemove(t *testing.T) {
	c := NewCollection[model.User](nil)

	u1 := addUser(c, "a")
	u2 := addUser(c, "b")

	_, ok := c.Remove(u2.ID)
	require.True(t, ok)
	_, ok = c.Remove(u1.ID)
	require.True(t, ok)

	u3 := addUser(c, "c")
	assert.Equal(t, 3, u3.ID, "ids must keep increasing after deletes")
}

func TestCollection_IDsNotReusedAfterClear(t *testing.T) {
	c := NewCollection[model.User](nil)
	addUser(c, "a")
	addUser(c, "b")

	n := c.Clear()
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, c.Count())

	u := addUser(c, "c")
	assert.Equal(t, 3, u.ID, "ids must keep increasing after a full clear")
}

func TestCollection_SeededAboveSeedIDs(t *testing.T) {
	c := NewCollection([]model.User{
		newUser(5, "a"),
		newUser(2, "b"),
	})

	u := addUser(c, "c")
	assert.Equal(t, 6, u.ID)
}

func TestCollection_ListInsertionOrder(t *testing.T) {
	c := NewCollection[model.User](nil)
	addUser(c, "first")
	addUser(c, "second")
	addUser(c, "third")

	list := c.List()
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Username)
	assert.Equal(t, "second", list[1].Username)
	assert.Equal(t, "third", list[2].Username)
}

func TestCollection_ListIsSnapshot(t *testing.T) {
	c := NewCollection[model.User](nil)
	addUser(c, "a")

	list := c.List()
	addUser(c, "b")
	assert.Len(t, list, 1, "snapshot must not see later inserts")
}

func TestCollection_Find(t *testing.T) {
	c := NewCollection[model.User](nil)
	u := addUser(c, "a")

	got, ok := c.Find(u.ID)
	require.True(t, ok)
	assert.Equal(t, u, got)

	_, ok = c.Find(999)
	assert.False(t, ok, "a miss is reported, not an error")
}

func TestCollection_FindAll(t *testing.T) {
	c := NewCollection[model.Event](nil)
	for _, userID := range []int{1, 2, 1} {
		uid := userID
		c.Add(func(id int) model.Event {
			return model.Event{ID: id, Title: "e", UserID: uid}
		})
	}

	events := c.FindAll(func(e model.Event) bool { return e.UserID == 1 })
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].ID)
	assert.Equal(t, 3, events[1].ID)
}

func TestCollection_UpdatePreservesPosition(t *testing.T) {
	c := NewCollection[model.User](nil)
	addUser(c, "a")
	u2 := addUser(c, "b")
	addUser(c, "c")

	merged, ok := c.Update(u2.ID, func(u model.User) model.User {
		u.Username = "b2"
		return u
	})
	require.True(t, ok)
	assert.Equal(t, "b2", merged.Username)

	list := c.List()
	assert.Equal(t, "b2", list[1].Username, "updated record keeps its position")
}

func TestCollection_UpdateMissWritesNothing(t *testing.T) {
	c := NewCollection[model.User](nil)
	addUser(c, "a")

	called := false
	_, ok := c.Update(999, func(u model.User) model.User {
		called = true
		return u
	})
	assert.False(t, ok)
	assert.False(t, called, "merge must not run on a miss")
	assert.Equal(t, 1, c.Count())
}

func TestCollection_Remove(t *testing.T) {
	c := NewCollection[model.User](nil)
	u1 := addUser(c, "a")
	addUser(c, "b")

	removed, ok := c.Remove(u1.ID)
	require.True(t, ok)
	assert.Equal(t, u1, removed)
	assert.Equal(t, 1, c.Count())

	_, ok = c.Remove(u1.ID)
	assert.False(t, ok)
}

func TestCollection_ClearEmpty(t *testing.T) {
	c := NewCollection[model.User](nil)
	assert.Equal(t, 0, c.Clear())
}

func TestCollection_ConcurrentAdds(t *testing.T) {
	c := NewCollection[model.User](nil)

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			addUser(c, "u")
		}()
	}
	wg.Wait()

	require.Equal(t, n, c.Count())
	seen := make(map[int]bool)
	for _, u := range c.List() {
		assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}

func TestNew_CollectionsIndependent(t *testing.T) {
	s := New(Seed{
		Users:  []model.User{newUser(3, "a")},
		Events: []model.Event{{ID: 3, Title: "e"}},
	})

	// Same id in different collections is fine; id spaces are per kind.
	u, ok := s.Users.Find(3)
	require.True(t, ok)
	assert.Equal(t, "a", u.Username)
	e, ok := s.Events.Find(3)
	require.True(t, ok)
	assert.Equal(t, "e", e.Title)

	s.Users.Clear()
	assert.Equal(t, 1, s.Events.Count(), "clearing one collection must not touch others")
}

func TestLoadSeedFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
users:
  - id: 1
    username: alice
    email: alice@example.com
events:
  - id: 1
    title: Picnic
    desc: d
    date: "2024-01-01"
    from: "10:00"
    location_id: 1
    user_id: 1
locations:
  - id: 1
    name: Park
    desc: d
    lat: 1.5
    lng: 2.5
participants:
  - id: 1
    user_id: 1
    event_id: 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, seed.Users, 1)
	assert.Equal(t, "alice", seed.Users[0].Username)
	require.Len(t, seed.Events, 1)
	assert.Equal(t, 1, seed.Events[0].LocationID)
	require.Len(t, seed.Locations, 1)
	assert.Equal(t, 1.5, seed.Locations[0].Lat)
	require.Len(t, seed.Participants, 1)
}

func TestLoadSeedFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	seed := Seed{
		Users: []model.User{newUser(1, "alice"), newUser(2, "bob")},
	}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	got, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Len(t, got.Users, 2)
}

func TestLoadSeedFile_NotFound(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrSeedNotFound)
}

func TestLoadSeedFile_DuplicateIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `
users:
  - id: 1
    username: a
    email: a@example.com
  - id: 1
    username: b
    email: b@example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := LoadSeedFile(path)
	assert.ErrorIs(t, err, ErrInvalidSeed)
}
