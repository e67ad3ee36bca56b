package graphql

// Request is an incoming GraphQL request.
type Request struct {
	// Query is the GraphQL query string.
	Query string `json:"query"`
	// OperationName selects the operation in multi-operation documents.
	OperationName string `json:"operationName,omitempty"`
	// Variables are the variable values for the query.
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// Response is a GraphQL response.
type Response struct {
	// Data contains the result of the execution.
	Data interface{} `json:"data,omitempty"`
	// Errors contains any errors that occurred during execution.
	Errors []Error `json:"errors,omitempty"`
}

// Error represents a GraphQL error in the response format.
type Error struct {
	// Message is the error message.
	Message string `json:"message"`
	// Path is the response field path where the error occurred.
	Path []interface{} `json:"path,omitempty"`
	// Extensions contains additional error metadata, such as a machine-
	// readable code.
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

// Error codes carried in Error.Extensions["code"].
const (
	// CodeNotFound marks an update or delete whose target id does not
	// exist. A by-id query miss is not an error and carries no code; it is
	// just a null result.
	CodeNotFound = "NOT_FOUND"
	// CodeBadInput marks an argument or input object that could not be
	// coerced to the expected shape.
	CodeBadInput = "BAD_USER_INPUT"
)

func errNotFound(err error) *Error {
	return &Error{
		Message:    err.Error(),
		Extensions: map[string]interface{}{"code": CodeNotFound},
	}
}

func errBadInput(err error) *Error {
	return &Error{
		Message:    err.Error(),
		Extensions: map[string]interface{}{"code": CodeBadInput},
	}
}
