package graphql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/validator"

	"github.com/feyzullahyildiz/patika-graphql/pkg/resolver"
)

// Options configures an Executor.
type Options struct {
	// Introspection enables __schema and __type queries.
	Introspection bool
}

// Executor executes GraphQL operations against the resolver layer.
type Executor struct {
	schema        *Schema
	resolver      *resolver.Resolver
	introspection bool
}

// NewExecutor creates an executor for the given schema and resolver.
func NewExecutor(schema *Schema, res *resolver.Resolver, opts Options) *Executor {
	return &Executor{
		schema:        schema,
		resolver:      res,
		introspection: opts.Introspection,
	}
}

// Execute runs a GraphQL request and returns a response. Parse and
// validation failures produce a response with errors and no data; field-
// level failures (such as a mutation targeting a missing id) produce an
// error entry plus a null for that field while sibling fields still
// resolve.
func (e *Executor) Execute(ctx context.Context, req *Request) *Response {
	if req == nil || req.Query == "" {
		return &Response{Errors: []Error{{Message: "query is required"}}}
	}

	doc, err := e.parseQuery(req.Query)
	if err != nil {
		return &Response{Errors: []Error{{Message: err.Error()}}}
	}

	var op *ast.OperationDefinition
	for _, opDef := range doc.Operations {
		if req.OperationName == "" || opDef.Name == req.OperationName {
			op = opDef
			break
		}
	}
	if op == nil {
		if req.OperationName != "" {
			return &Response{Errors: []Error{{Message: fmt.Sprintf("operation %q not found", req.OperationName)}}}
		}
		return &Response{Errors: []Error{{Message: "no operation found in query"}}}
	}

	x := &execution{ex: e, doc: doc, vars: req.Variables}

	data, errs := x.executeOperation(ctx, op)

	resp := &Response{Data: data}
	for _, err := range errs {
		resp.Errors = append(resp.Errors, *err)
	}
	return resp
}

// parseQuery parses and validates a query against the schema.
func (e *Executor) parseQuery(query string) (*ast.QueryDocument, error) {
	doc, parseErr := gqlparser.LoadQuery(e.schema.AST(), query)
	if parseErr != nil {
		if len(parseErr) > 0 {
			return nil, fmt.Errorf("parse error: %s", parseErr[0].Message)
		}
		return nil, fmt.Errorf("parse error")
	}

	validationErrs := validator.Validate(e.schema.AST(), doc)
	if len(validationErrs) > 0 {
		return nil, fmt.Errorf("validation error: %s", validationErrs[0].Message)
	}

	return doc, nil
}

// execution carries the per-request state: the parsed document (needed for
// fragment expansion) and the variable values.
type execution struct {
	ex   *Executor
	doc  *ast.QueryDocument
	vars map[string]interface{}
}

func (x *execution) executeOperation(ctx context.Context, op *ast.OperationDefinition) (interface{}, []*Error) {
	switch op.Operation {
	case ast.Query:
		if x.isIntrospection(op.SelectionSet) {
			if !x.ex.introspection {
				return nil, []*Error{{Message: "introspection is disabled"}}
			}
			return x.introspect(op.SelectionSet), nil
		}
		return x.executeRoot(ctx, "Query", op.SelectionSet)
	case ast.Mutation:
		return x.executeRoot(ctx, "Mutation", op.SelectionSet)
	default:
		return nil, []*Error{{Message: "unsupported operation type"}}
	}
}

// isIntrospection reports whether the selection set consists solely of
// introspection fields.
func (x *execution) isIntrospection(sels ast.SelectionSet) bool {
	fields := x.fields(sels)
	for _, f := range fields {
		if !strings.HasPrefix(f.Name, "__") {
			return false
		}
	}
	return len(fields) > 0
}

// executeRoot resolves the top-level fields of an operation in document
// order. A failed field contributes an error entry and a null result;
// the remaining fields still execute.
func (x *execution) executeRoot(ctx context.Context, opType string, sels ast.SelectionSet) (map[string]interface{}, []*Error) {
	result := make(map[string]interface{})
	var errs []*Error

	for _, f := range x.fields(sels) {
		alias := fieldAlias(f)

		if f.Name == "__typename" {
			result[alias] = opType
			continue
		}

		var value interface{}
		var err *Error
		if opType == "Mutation" {
			value, err = x.mutationField(ctx, f)
		} else {
			value, err = x.queryField(ctx, f)
		}

		if err != nil {
			err.Path = []interface{}{alias}
			errs = append(errs, err)
			result[alias] = nil
			continue
		}
		result[alias] = value
	}

	return result, errs
}

// queryField dispatches a top-level query field to the resolver. A by-id
// miss returns a plain null with no error.
func (x *execution) queryField(_ context.Context, f *ast.Field) (interface{}, *Error) {
	res := x.ex.resolver

	switch f.Name {
	case "users":
		return x.userList(f.SelectionSet, res.Users()), nil
	case "user":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		return x.userOrNil(f.SelectionSet, res.User(id)), nil
	case "events":
		return x.eventList(f.SelectionSet, res.Events()), nil
	case "event":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		return x.eventOrNil(f.SelectionSet, res.Event(id)), nil
	case "locations":
		return x.locationList(f.SelectionSet, res.Locations()), nil
	case "location":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		return x.locationOrNil(f.SelectionSet, res.Location(id)), nil
	case "participants":
		return x.participantList(f.SelectionSet, res.Participants()), nil
	case "participant":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		return x.participantOrNil(f.SelectionSet, res.Participant(id)), nil
	default:
		// Unreachable after validation against the schema.
		return nil, &Error{Message: fmt.Sprintf("unknown query field %q", f.Name)}
	}
}

// mutationField dispatches a top-level mutation field to the resolver.
// Update and delete misses surface as request-level errors, unlike query
// misses.
func (x *execution) mutationField(_ context.Context, f *ast.Field) (interface{}, *Error) {
	res := x.ex.resolver

	switch f.Name {
	case "addUser":
		in, err := decodeUserInput(x.objectArg(f, "data"))
		if err != nil {
			return nil, errBadInput(err)
		}
		return x.user(f.SelectionSet, res.AddUser(in)), nil
	case "updateUser":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		patch, err := decodeUserPatch(x.objectArg(f, "data"))
		if err != nil {
			return nil, errBadInput(err)
		}
		u, uerr := res.UpdateUser(id, patch)
		if uerr != nil {
			return nil, errNotFound(uerr)
		}
		return x.user(f.SelectionSet, u), nil
	case "deleteUser":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		u, derr := res.DeleteUser(id)
		if derr != nil {
			return nil, errNotFound(derr)
		}
		return x.user(f.SelectionSet, u), nil
	case "deleteAllUsers":
		return x.count(f.SelectionSet, res.DeleteAllUsers()), nil

	case "addEvent":
		in, err := decodeEventInput(x.objectArg(f, "data"))
		if err != nil {
			return nil, errBadInput(err)
		}
		return x.event(f.SelectionSet, res.AddEvent(in)), nil
	case "updateEvent":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		patch, err := decodeEventPatch(x.objectArg(f, "data"))
		if err != nil {
			return nil, errBadInput(err)
		}
		ev, uerr := res.UpdateEvent(id, patch)
		if uerr != nil {
			return nil, errNotFound(uerr)
		}
		return x.event(f.SelectionSet, ev), nil
	case "deleteEvent":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		ev, derr := res.DeleteEvent(id)
		if derr != nil {
			return nil, errNotFound(derr)
		}
		return x.event(f.SelectionSet, ev), nil
	case "deleteAllEvents":
		return x.count(f.SelectionSet, res.DeleteAllEvents()), nil

	case "addLocation":
		in, err := decodeLocationInput(x.objectArg(f, "data"))
		if err != nil {
			return nil, errBadInput(err)
		}
		return x.location(f.SelectionSet, res.AddLocation(in)), nil
	case "updateLocation":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		patch, err := decodeLocationPatch(x.objectArg(f, "data"))
		if err != nil {
			return nil, errBadInput(err)
		}
		l, uerr := res.UpdateLocation(id, patch)
		if uerr != nil {
			return nil, errNotFound(uerr)
		}
		return x.location(f.SelectionSet, l), nil
	case "deleteLocation":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		l, derr := res.DeleteLocation(id)
		if derr != nil {
			return nil, errNotFound(derr)
		}
		return x.location(f.SelectionSet, l), nil
	case "deleteAllLocations":
		return x.count(f.SelectionSet, res.DeleteAllLocations()), nil

	case "addParticipant":
		in, err := decodeParticipantInput(x.objectArg(f, "data"))
		if err != nil {
			return nil, errBadInput(err)
		}
		return x.participant(f.SelectionSet, res.AddParticipant(in)), nil
	case "updateParticipant":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		patch, err := decodeParticipantPatch(x.objectArg(f, "data"))
		if err != nil {
			return nil, errBadInput(err)
		}
		p, uerr := res.UpdateParticipant(id, patch)
		if uerr != nil {
			return nil, errNotFound(uerr)
		}
		return x.participant(f.SelectionSet, p), nil
	case "deleteParticipant":
		id, err := x.intArg(f, "id")
		if err != nil {
			return nil, errBadInput(err)
		}
		p, derr := res.DeleteParticipant(id)
		if derr != nil {
			return nil, errNotFound(derr)
		}
		return x.participant(f.SelectionSet, p), nil
	case "deleteAllParticipants":
		return x.count(f.SelectionSet, res.DeleteAllParticipants()), nil

	default:
		// Unreachable after validation against the schema.
		return nil, &Error{Message: fmt.Sprintf("unknown mutation field %q", f.Name)}
	}
}

// fields expands a selection set into its fields, resolving fragment
// spreads and inline fragments against the document.
func (x *execution) fields(sels ast.SelectionSet) []*ast.Field {
	var out []*ast.Field
	for _, sel := range sels {
		switch s := sel.(type) {
		case *ast.Field:
			out = append(out, s)
		case *ast.FragmentSpread:
			for _, frag := range x.doc.Fragments {
				if frag.Name == s.Name {
					out = append(out, x.fields(frag.SelectionSet)...)
					break
				}
			}
		case *ast.InlineFragment:
			out = append(out, x.fields(s.SelectionSet)...)
		}
	}
	return out
}

func fieldAlias(f *ast.Field) string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// argValue resolves a field argument to a Go value, or nil if absent.
func (x *execution) argValue(f *ast.Field, name string) interface{} {
	for _, arg := range f.Arguments {
		if arg.Name == name {
			return x.resolveValue(arg.Value)
		}
	}
	return nil
}

// resolveValue converts an AST value to a Go value, substituting
// variables.
func (x *execution) resolveValue(value *ast.Value) interface{} {
	if value == nil {
		return nil
	}

	switch value.Kind {
	case ast.Variable:
		if x.vars != nil {
			return x.vars[value.Raw]
		}
		return nil
	case ast.IntValue:
		n, _ := strconv.Atoi(value.Raw)
		return n
	case ast.FloatValue:
		fl, _ := strconv.ParseFloat(value.Raw, 64)
		return fl
	case ast.StringValue, ast.BlockValue:
		return value.Raw
	case ast.BooleanValue:
		return value.Raw == "true"
	case ast.NullValue:
		return nil
	case ast.ListValue:
		var list []interface{}
		for _, child := range value.Children {
			list = append(list, x.resolveValue(child.Value))
		}
		return list
	case ast.ObjectValue:
		obj := make(map[string]interface{})
		for _, child := range value.Children {
			obj[child.Name] = x.resolveValue(child.Value)
		}
		return obj
	default:
		return value.Raw
	}
}

// intArg resolves a required Int argument.
func (x *execution) intArg(f *ast.Field, name string) (int, error) {
	v := x.argValue(f, name)
	if v == nil {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("%s must be an Int", name)
	}
	return n, nil
}

// objectArg resolves an input-object argument; nil when absent.
func (x *execution) objectArg(f *ast.Field, name string) map[string]interface{} {
	if obj, ok := x.argValue(f, name).(map[string]interface{}); ok {
		return obj
	}
	return nil
}

// toInt coerces the value shapes produced by literals (int) and JSON
// variables (float64, json.Number decoded as float64) to an int.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}
