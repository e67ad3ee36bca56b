package graphql

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/feyzullahyildiz/patika-graphql/pkg/logging"
)

// MaxRequestBodySize is the maximum allowed request body size (1MB).
const MaxRequestBodySize = 1 << 20

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// Playground serves the GraphiQL page on browser GET requests.
	Playground bool
	// Logger receives one entry per request. Defaults to a no-op logger.
	Logger *slog.Logger
}

// Handler serves GraphQL over HTTP. It accepts POST requests with
// application/json or application/graphql bodies, and GET requests with
// query parameters.
type Handler struct {
	executor   *Executor
	playground bool
	logger     *slog.Logger
}

// NewHandler creates a handler around the given executor.
func NewHandler(executor *Executor, opts HandlerOptions) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	return &Handler{
		executor:   executor,
		playground: opts.Playground,
		logger:     logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.NewString()

	// Preflight requests get an empty 200; CORS headers are a concern for
	// middleware, not this handler.
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.Method == http.MethodGet && h.wantsPlayground(r) {
		h.servePlayground(w, r)
		return
	}

	var req *Request
	var err error
	if r.Method == http.MethodGet {
		req, err = parseGetRequest(r)
	} else {
		req, err = parsePostRequest(r)
	}
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		h.logger.Warn("graphql request rejected",
			"request_id", requestID,
			"method", r.Method,
			"remote", r.RemoteAddr,
			"error", err.Error(),
		)
		return
	}

	resp := h.executor.Execute(r.Context(), req)
	h.writeResponse(w, resp)

	h.logger.Info("graphql request",
		"request_id", requestID,
		"method", r.Method,
		"operation", operationType(req.Query),
		"operation_name", req.OperationName,
		"remote", r.RemoteAddr,
		"errors", len(resp.Errors),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// wantsPlayground reports whether a GET request is a browser asking for
// the GraphiQL page rather than a GraphQL query.
func (h *Handler) wantsPlayground(r *http.Request) bool {
	if !h.playground {
		return false
	}
	if r.URL.Query().Get("query") != "" {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// parseGetRequest parses a GraphQL request from GET query parameters.
func parseGetRequest(r *http.Request) (*Request, error) {
	query := r.URL.Query()

	req := &Request{
		Query:         query.Get("query"),
		OperationName: query.Get("operationName"),
	}

	if varsStr := query.Get("variables"); varsStr != "" {
		var variables map[string]interface{}
		if err := json.Unmarshal([]byte(varsStr), &variables); err != nil {
			return nil, &parseError{message: "invalid variables JSON"}
		}
		req.Variables = variables
	}

	return req, nil
}

// parsePostRequest parses a GraphQL request from a POST body.
func parsePostRequest(r *http.Request) (*Request, error) {
	contentType := r.Header.Get("Content-Type")

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBodySize))
	if err != nil {
		return nil, &parseError{message: "failed to read request body"}
	}
	defer func() { _ = r.Body.Close() }()

	if len(body) == 0 {
		return nil, &parseError{message: "empty request body"}
	}

	// application/graphql carries the bare query string.
	if strings.HasPrefix(contentType, "application/graphql") {
		return &Request{Query: string(body)}, nil
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &parseError{message: "invalid JSON request body"}
	}
	return &req, nil
}

func (h *Handler) writeResponse(w http.ResponseWriter, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(&Response{Errors: []Error{{Message: message}}})
}

// operationType detects the operation type from a query string, for
// logging only.
func operationType(query string) string {
	query = strings.TrimSpace(strings.ToLower(query))
	switch {
	case strings.HasPrefix(query, "mutation"):
		return "mutation"
	case strings.HasPrefix(query, "subscription"):
		return "subscription"
	default:
		return "query"
	}
}

// parseError represents a request parsing error.
type parseError struct {
	message string
}

func (e *parseError) Error() string {
	return e.message
}
