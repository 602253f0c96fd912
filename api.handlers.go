package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// Statistics holds app stats for ops.
type Statistics struct {
	version   string
	container bool
	runtime   string
	platform  string
	called    uint64
	started   time.Time
	status    map[int]uint64
	mu        *sync.RWMutex
}

// Maintenance holds app maintenance mode infos.
type Maintenance struct {
	enabled atomic.Bool
	message string
	started time.Time
}

// APIHandler defines the API handler.
type APIHandler struct {
	logger        *zap.Logger
	config        *Config
	stats         *Statistics
	mode          *Maintenance
	clock         Clocker
	idsHandler    UIDHandler
	schema        *graphql.Schema
	bookService   BookServiceProvider
	authorService AuthorServiceProvider
}

// NewAPIHandler provides a new instance of APIHandler.
func NewAPIHandler(logger *zap.Logger, config *Config, stats *Statistics, clock Clocker, uid UIDHandler,
	schema *graphql.Schema, bs BookServiceProvider, as AuthorServiceProvider,
) *APIHandler {
	m := &Maintenance{}
	m.enabled.Store(false)
	stats.status = make(map[int]uint64)
	stats.mu = &sync.RWMutex{}
	return &APIHandler{
		logger:        logger,
		config:        config,
		stats:         stats,
		mode:          m,
		clock:         clock,
		idsHandler:    uid,
		schema:        schema,
		bookService:   bs,
		authorService: as,
	}
}

// Index provides same details like `Status` handler by redirecting the request.
func (api *APIHandler) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.Redirect(w, r, "/status", http.StatusSeeOther)
}

// Status provides basics details about the application to the public users.
func (api *APIHandler) Status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), ContextRequestID)
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if err := json.NewEncoder(w).Encode(
		map[string]interface{}{
			"requestid": requestID,
			"status":    fmt.Sprintf("up & running since %.0f mins", api.clock.Now().Sub(api.stats.started).Minutes()),
			"message":   "Hello. Books catalog graphql api is available. Enjoy :)",
		},
	); err != nil {
		api.logger.Error("failed to send status response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// graphqlParams is the shape of the request body expected on the
// graphql endpoint.
type graphqlParams struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ExecGraphQL executes one graphql document against the schema and
// sends back the standard response envelope. Execution failures such
// as an unknown field or a missing required argument come back inside
// the envelope's errors field with a 200 status: only a body which
// cannot be decoded at all produces an http-level error.
func (api *APIHandler) ExecGraphQL(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), ContextRequestID)
	var params graphqlParams
	r.Body = http.MaxBytesReader(w, r.Body, api.config.GraphQL.MaxQueryBytes)
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		api.logger.Error("failed to decode graphql request", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusBadRequest, "failed to decode the graphql request", EmptyData)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	response := api.schema.Exec(r.Context(), params.Query, params.OperationName, params.Variables)
	body, err := json.Marshal(response)
	if err != nil {
		api.logger.Error("failed to encode graphql response", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(requestID, http.StatusInternalServerError, "failed to encode the graphql response", EmptyData)
		if err = WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if _, err = w.Write(body); err != nil {
		api.logger.Error("failed to send graphql response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// GraphiQL serves the embedded interactive query page pointing at the
// configured graphql endpoint.
func (api *APIHandler) GraphiQL(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	if _, err := fmt.Fprintf(w, graphiqlPage, api.config.GraphQL.Endpoint); err != nil {
		api.logger.Error("failed to send graphiql page",
			zap.String("request.id", GetValueFromContext(r.Context(), ContextRequestID)), zap.Error(err))
	}
}

// NotFound replies to any request outside of the routes table with
// the json error envelope instead of the router's plain text body.
func (api *APIHandler) NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := GetValueFromContext(r.Context(), ContextRequestID)
		errResp := NewAPIError(requestID, http.StatusNotFound, "resource does not exist", EmptyData)
		if err := WriteErrorResponse(w, errResp); err != nil {
			api.logger.Error("failed to send not found response", zap.String("request.id", requestID), zap.Error(err))
		}
	})
}
