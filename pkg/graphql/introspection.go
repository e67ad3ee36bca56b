package graphql

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Introspection support: enough of __schema / __type / __typename for
// GraphiQL and client codegen to work against the embedded schema.

func (x *execution) introspect(sels ast.SelectionSet) map[string]interface{} {
	result := make(map[string]interface{})

	for _, f := range x.fields(sels) {
		alias := fieldAlias(f)
		switch f.Name {
		case "__schema":
			result[alias] = x.schemaIntrospection(f.SelectionSet)
		case "__type":
			if name, ok := x.argValue(f, "name").(string); ok {
				result[alias] = x.typeIntrospection(name, f.SelectionSet)
			} else {
				result[alias] = nil
			}
		case "__typename":
			result[alias] = "Query"
		}
	}

	return result
}

func (x *execution) schemaIntrospection(sels ast.SelectionSet) map[string]interface{} {
	schema := x.ex.schema
	result := make(map[string]interface{})

	for _, f := range x.fields(sels) {
		alias := fieldAlias(f)
		switch f.Name {
		case "queryType":
			result[alias] = map[string]interface{}{"name": "Query"}
		case "mutationType":
			if schema.HasMutation() {
				result[alias] = map[string]interface{}{"name": "Mutation"}
			} else {
				result[alias] = nil
			}
		case "subscriptionType":
			result[alias] = nil
		case "types":
			types := make([]interface{}, 0)
			for _, name := range schema.ListTypes() {
				if info := x.typeIntrospection(name, f.SelectionSet); info != nil {
					types = append(types, info)
				}
			}
			result[alias] = types
		case "directives":
			result[alias] = x.directivesIntrospection(f.SelectionSet)
		}
	}

	return result
}

func (x *execution) typeIntrospection(typeName string, sels ast.SelectionSet) map[string]interface{} {
	def := x.ex.schema.GetType(typeName)
	if def == nil {
		return nil
	}

	result := make(map[string]interface{})

	for _, f := range x.fields(sels) {
		alias := fieldAlias(f)
		switch f.Name {
		case "name":
			result[alias] = typeName
		case "kind":
			result[alias] = typeKind(def)
		case "description":
			result[alias] = def.Description
		case "fields":
			if def.Kind == ast.Object {
				result[alias] = x.fieldsIntrospection(def.Fields, f.SelectionSet)
			} else {
				result[alias] = nil
			}
		case "inputFields":
			if def.Kind == ast.InputObject {
				result[alias] = x.inputFieldsIntrospection(def.Fields, f.SelectionSet)
			} else {
				result[alias] = nil
			}
		case "enumValues":
			if def.Kind == ast.Enum {
				result[alias] = x.enumValuesIntrospection(def.EnumValues, f.SelectionSet)
			} else {
				result[alias] = nil
			}
		case "interfaces":
			if def.Kind == ast.Object {
				result[alias] = []interface{}{}
			} else {
				result[alias] = nil
			}
		case "possibleTypes", "ofType", "specifiedByURL":
			result[alias] = nil
		case "isOneOf":
			result[alias] = false
		}
	}

	return result
}

func (x *execution) fieldsIntrospection(fields ast.FieldList, sels ast.SelectionSet) []interface{} {
	result := make([]interface{}, 0, len(fields))

	for _, field := range fields {
		if isIntrospectionField(field.Name) {
			continue
		}
		info := make(map[string]interface{})
		for _, f := range x.fields(sels) {
			alias := fieldAlias(f)
			switch f.Name {
			case "name":
				info[alias] = field.Name
			case "description":
				info[alias] = field.Description
			case "args":
				info[alias] = x.argsIntrospection(field.Arguments, f.SelectionSet)
			case "type":
				info[alias] = x.typeRefIntrospection(field.Type, f.SelectionSet)
			case "isDeprecated":
				info[alias] = false
			case "deprecationReason":
				info[alias] = nil
			}
		}
		result = append(result, info)
	}
	return result
}

func (x *execution) inputFieldsIntrospection(fields ast.FieldList, sels ast.SelectionSet) []interface{} {
	result := make([]interface{}, 0, len(fields))

	for _, field := range fields {
		info := make(map[string]interface{})
		for _, f := range x.fields(sels) {
			alias := fieldAlias(f)
			switch f.Name {
			case "name":
				info[alias] = field.Name
			case "description":
				info[alias] = field.Description
			case "type":
				info[alias] = x.typeRefIntrospection(field.Type, f.SelectionSet)
			case "defaultValue":
				if field.DefaultValue != nil {
					info[alias] = field.DefaultValue.String()
				} else {
					info[alias] = nil
				}
			case "isDeprecated":
				info[alias] = false
			case "deprecationReason":
				info[alias] = nil
			}
		}
		result = append(result, info)
	}
	return result
}

func (x *execution) enumValuesIntrospection(values ast.EnumValueList, sels ast.SelectionSet) []interface{} {
	result := make([]interface{}, 0, len(values))

	for _, val := range values {
		info := make(map[string]interface{})
		for _, f := range x.fields(sels) {
			alias := fieldAlias(f)
			switch f.Name {
			case "name":
				info[alias] = val.Name
			case "description":
				info[alias] = val.Description
			case "isDeprecated":
				info[alias] = false
			case "deprecationReason":
				info[alias] = nil
			}
		}
		result = append(result, info)
	}
	return result
}

func (x *execution) argsIntrospection(args ast.ArgumentDefinitionList, sels ast.SelectionSet) []interface{} {
	// Empty slice rather than nil so the JSON is [] instead of null.
	result := make([]interface{}, 0, len(args))

	for _, arg := range args {
		info := make(map[string]interface{})
		for _, f := range x.fields(sels) {
			alias := fieldAlias(f)
			switch f.Name {
			case "name":
				info[alias] = arg.Name
			case "description":
				info[alias] = arg.Description
			case "type":
				info[alias] = x.typeRefIntrospection(arg.Type, f.SelectionSet)
			case "defaultValue":
				if arg.DefaultValue != nil {
					info[alias] = arg.DefaultValue.String()
				} else {
					info[alias] = nil
				}
			case "isDeprecated":
				info[alias] = false
			case "deprecationReason":
				info[alias] = nil
			}
		}
		result = append(result, info)
	}
	return result
}

// typeRefIntrospection unwraps non-null and list wrappers the way clients
// expect: NON_NULL and LIST nodes with ofType chains ending at a named
// type.
func (x *execution) typeRefIntrospection(t *ast.Type, sels ast.SelectionSet) map[string]interface{} {
	result := make(map[string]interface{})

	for _, f := range x.fields(sels) {
		alias := fieldAlias(f)

		switch {
		case t.NonNull:
			switch f.Name {
			case "kind":
				result[alias] = "NON_NULL"
			case "name":
				result[alias] = nil
			case "ofType":
				inner := *t
				inner.NonNull = false
				result[alias] = x.typeRefIntrospection(&inner, f.SelectionSet)
			}
		case t.Elem != nil:
			switch f.Name {
			case "kind":
				result[alias] = "LIST"
			case "name":
				result[alias] = nil
			case "ofType":
				result[alias] = x.typeRefIntrospection(t.Elem, f.SelectionSet)
			}
		default:
			switch f.Name {
			case "kind":
				if def := x.ex.schema.GetType(t.NamedType); def != nil {
					result[alias] = typeKind(def)
				} else {
					result[alias] = "SCALAR"
				}
			case "name":
				result[alias] = t.NamedType
			case "ofType":
				result[alias] = nil
			}
		}
	}

	return result
}

func (x *execution) directivesIntrospection(sels ast.SelectionSet) []interface{} {
	result := make([]interface{}, 0, len(x.ex.schema.AST().Directives))

	for _, dir := range x.ex.schema.AST().Directives {
		info := make(map[string]interface{})
		for _, f := range x.fields(sels) {
			alias := fieldAlias(f)
			switch f.Name {
			case "name":
				info[alias] = dir.Name
			case "description":
				info[alias] = dir.Description
			case "locations":
				locations := make([]interface{}, len(dir.Locations))
				for i, loc := range dir.Locations {
					locations[i] = string(loc)
				}
				info[alias] = locations
			case "args":
				info[alias] = x.argsIntrospection(dir.Arguments, f.SelectionSet)
			case "isRepeatable":
				info[alias] = dir.IsRepeatable
			}
		}
		result = append(result, info)
	}

	return result
}

func typeKind(def *ast.Definition) string {
	switch def.Kind {
	case ast.Scalar:
		return "SCALAR"
	case ast.Object:
		return "OBJECT"
	case ast.Interface:
		return "INTERFACE"
	case ast.Union:
		return "UNION"
	case ast.Enum:
		return "ENUM"
	case ast.InputObject:
		return "INPUT_OBJECT"
	default:
		return "OBJECT"
	}
}

func isIntrospectionField(name string) bool {
	return len(name) >= 2 && name[0] == '_' && name[1] == '_'
}
