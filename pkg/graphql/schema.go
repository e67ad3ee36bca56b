package graphql

import (
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// SDL is the schema served by this API. Relation fields (Event.user,
// Event.location, Participant.user, Participant.event) are nullable on
// purpose: foreign keys are not enforced at write time, so a reference may
// dangle and then resolves to null. Event.participants is a semi-join
// through the Participant collection, so it never contains null entries.
const SDL = `
type User {
  id: Int!
  username: String!
  email: String!
  events: [Event!]!
}

type Event {
  id: Int!
  title: String!
  desc: String!
  date: String!
  from: String!
  location_id: Int!
  user_id: Int!
  user: User
  location: Location
  participants: [User!]!
}

type Location {
  id: Int!
  name: String!
  desc: String!
  lat: Float!
  lng: Float!
}

type Participant {
  id: Int!
  user_id: Int!
  event_id: Int!
  user: User
  event: Event
}

type Count {
  count: Int!
}

input AddUserInput {
  username: String!
  email: String!
}

input UpdateUserInput {
  username: String
  email: String
}

input AddEventInput {
  title: String!
  desc: String!
  date: String!
  from: String!
  location_id: Int!
  user_id: Int!
}

input UpdateEventInput {
  title: String
  desc: String
  date: String
  from: String
  location_id: Int
  user_id: Int
}

input AddLocationInput {
  name: String!
  desc: String!
  lat: Float!
  lng: Float!
}

input UpdateLocationInput {
  name: String
  desc: String
  lat: Float
  lng: Float
}

input AddParticipantInput {
  user_id: Int!
  event_id: Int!
}

input UpdateParticipantInput {
  user_id: Int
  event_id: Int
}

type Query {
  users: [User!]!
  user(id: Int!): User

  events: [Event!]!
  event(id: Int!): Event

  locations: [Location!]!
  location(id: Int!): Location

  participants: [Participant!]!
  participant(id: Int!): Participant
}

type Mutation {
  addUser(data: AddUserInput!): User!
  updateUser(id: Int!, data: UpdateUserInput!): User
  deleteUser(id: Int!): User
  deleteAllUsers: Count!

  addEvent(data: AddEventInput!): Event!
  updateEvent(id: Int!, data: UpdateEventInput!): Event
  deleteEvent(id: Int!): Event
  deleteAllEvents: Count!

  addLocation(data: AddLocationInput!): Location!
  updateLocation(id: Int!, data: UpdateLocationInput!): Location
  deleteLocation(id: Int!): Location
  deleteAllLocations: Count!

  addParticipant(data: AddParticipantInput!): Participant!
  updateParticipant(id: Int!, data: UpdateParticipantInput!): Participant
  deleteParticipant(id: Int!): Participant
  deleteAllParticipants: Count!
}
`

// Schema wraps a parsed GraphQL schema with accessors used during
// execution and introspection.
type Schema struct {
	ast    *ast.Schema
	source string
}

// ParseSchema parses a GraphQL SDL string and returns a Schema.
func ParseSchema(sdl string) (*Schema, error) {
	source := &ast.Source{Name: "schema", Input: sdl}

	schema, err := gqlparser.LoadSchema(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GraphQL schema: %w", err)
	}

	return &Schema{ast: schema, source: sdl}, nil
}

// MustSchema parses the embedded SDL. The SDL is a compile-time constant,
// so a parse failure is a programming error and panics.
func MustSchema() *Schema {
	s, err := ParseSchema(SDL)
	if err != nil {
		panic(err)
	}
	return s
}

// AST returns the underlying gqlparser schema.
func (s *Schema) AST() *ast.Schema {
	return s.ast
}

// Source returns the original SDL source string.
func (s *Schema) Source() string {
	return s.source
}

// GetType returns a type definition by name, or nil if not found.
func (s *Schema) GetType(name string) *ast.Definition {
	return s.ast.Types[name]
}

// ListTypes returns the names of all schema types in undefined order.
func (s *Schema) ListTypes() []string {
	names := make([]string, 0, len(s.ast.Types))
	for name := range s.ast.Types {
		names = append(names, name)
	}
	return names
}

// HasQuery reports whether the schema defines a Query type with fields.
func (s *Schema) HasQuery() bool {
	return s.ast.Query != nil && len(s.ast.Query.Fields) > 0
}

// HasMutation reports whether the schema defines a Mutation type with
// fields.
func (s *Schema) HasMutation() bool {
	return s.ast.Mutation != nil && len(s.ast.Mutation.Fields) > 0
}
