package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feyzullahyildiz/patika-graphql/internal/store"
	"github.com/feyzullahyildiz/patika-graphql/pkg/model"
)

func strPtr(s string) *string { return &s }

func TestMutation_AddAssignsIncreasingIDs(t *testing.T) {
	r := newTestResolver(testSeed())

	u1 := r.AddUser(model.UserInput{Username: "carol", Email: "carol@example.com"})
	u2 := r.AddUser(model.UserInput{Username: "dave", Email: "dave@example.com"})

	assert.Equal(t, 3, u1.ID, "seed holds ids 1-2")
	assert.Equal(t, 4, u2.ID)

	_, err := r.DeleteUser(u2.ID)
	require.NoError(t, err)
	u3 := r.AddUser(model.UserInput{Username: "erin", Email: "erin@example.com"})
	assert.Equal(t, 5, u3.ID, "deleted ids are never reissued")
}

func TestMutation_UpdatePartialPreservesOtherFields(t *testing.T) {
	r := newTestResolver(testSeed())

	before := *r.Event(1)
	updated, err := r.UpdateEvent(1, model.EventPatch{Title: strPtr("Picnic v2")})
	require.NoError(t, err)

	assert.Equal(t, "Picnic v2", updated.Title)
	assert.Equal(t, before.ID, updated.ID)
	assert.Equal(t, before.Desc, updated.Desc)
	assert.Equal(t, before.Date, updated.Date)
	assert.Equal(t, before.From, updated.From)
	assert.Equal(t, before.LocationID, updated.LocationID)
	assert.Equal(t, before.UserID, updated.UserID)

	assert.Equal(t, updated, *r.Event(1), "the merge is written back")
}

func TestMutation_EmptyPatchIsNoop(t *testing.T) {
	r := newTestResolver(testSeed())

	before := *r.User(1)
	after, err := r.UpdateUser(1, model.UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMutation_UpdateMissingIsNotFound(t *testing.T) {
	r := newTestResolver(testSeed())

	_, err := r.UpdateUser(99, model.UserPatch{Username: strPtr("x")})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "user not found")

	assert.Len(t, r.Users(), 2, "a failed update leaves the store unchanged")
}

func TestMutation_DeleteReturnsRecord(t *testing.T) {
	r := newTestResolver(testSeed())

	u, err := r.DeleteUser(2)
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Nil(t, r.User(2))
}

func TestMutation_DeleteMissingIsNotFound(t *testing.T) {
	r := newTestResolver(testSeed())

	tests := []struct {
		name string
		fn   func() error
		msg  string
	}{
		{"user", func() error { _, err := r.DeleteUser(99); return err }, "user not found"},
		{"event", func() error { _, err := r.DeleteEvent(99); return err }, "event not found"},
		{"location", func() error { _, err := r.DeleteLocation(99); return err }, "location not found"},
		{"participant", func() error { _, err := r.DeleteParticipant(99); return err }, "participant not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			assert.True(t, IsNotFound(err))
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestMutation_DeleteAllCounts(t *testing.T) {
	r := newTestResolver(testSeed())

	assert.Equal(t, 2, r.DeleteAllParticipants())
	assert.Empty(t, r.Participants())
	assert.Equal(t, 0, r.DeleteAllParticipants(), "a second clear removes nothing")

	assert.Len(t, r.Users(), 2, "other collections are untouched")
}

func TestMutation_EndToEndScenario(t *testing.T) {
	r := newTestResolver(store.Seed{})

	loc := r.AddLocation(model.LocationInput{Name: "Park", Desc: "d", Lat: 1.0, Lng: 2.0})
	assert.Equal(t, 1, loc.ID)

	e := r.AddEvent(model.EventInput{
		Title: "Picnic", Desc: "d", Date: "2024-01-01", From: "10:00",
		LocationID: loc.ID, UserID: 1,
	})
	assert.Equal(t, 1, e.ID)

	updated, err := r.UpdateEvent(e.ID, model.EventPatch{Title: strPtr("Picnic v2")})
	require.NoError(t, err)
	assert.Equal(t, "Picnic v2", updated.Title)
	assert.Equal(t, 1, updated.LocationID)

	_, err = r.DeleteEvent(e.ID)
	require.NoError(t, err)
	assert.Nil(t, r.Event(e.ID))
}

func TestNotFoundError_Is(t *testing.T) {
	err := &NotFoundError{Kind: "event", ID: 7}
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(assert.AnError))
	assert.False(t, IsNotFound(nil))
}
