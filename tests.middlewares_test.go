package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

// TestMiddlewaresStacks ensures we get both public and ops middlewares
// stacks with exact number of elements in those stacks.
func TestMiddlewaresStacks(t *testing.T) {
	api := newTestAPIHandler(t)
	pub, ops := api.MiddlewaresStacks()
	assert.Equal(t, 7, len(*pub))
	assert.Equal(t, 6, len(*ops))
}

// TestChain ensures each middleware in the stack is called as well the handler.
func TestChain(t *testing.T) {
	var ca, cb, cc, ch bool
	queue := make(chan int, 4)

	middlewareA := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			queue <- 1
			ca = true
			next(w, r, ps)
		}
	}
	middlewareB := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			queue <- 2
			cb = true
			next(w, r, ps)
		}
	}
	middlewareC := func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			queue <- 3
			cc = true
			next(w, r, ps)
		}
	}
	middlewares := Middlewares{
		middlewareA,
		middlewareB,
		middlewareC,
	}

	handler := func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		queue <- 4
		ch = true
	}

	chained := (&middlewares).Chain(handler)
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	w := httptest.NewRecorder()
	chained(w, req, nil)

	t.Run("check calling", func(t *testing.T) {
		assert.Equal(t, true, ca)
		assert.Equal(t, true, cb)
		assert.Equal(t, true, cc)
		assert.Equal(t, true, ch)
	})

	t.Run("check ordering", func(t *testing.T) {
		assert.Equal(t, 1, <-queue)
		assert.Equal(t, 2, <-queue)
		assert.Equal(t, 3, <-queue)
		assert.Equal(t, 4, <-queue)
	})
}

// TestRequestsCounterMiddleware ensures the request counter increment.
func TestRequestsCounterMiddleware(t *testing.T) {
	api := newTestAPIHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	w := httptest.NewRecorder()
	var called bool
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		called = true
		assert.Equal(t, uint64(1), GetRequestNumberFromContext(req.Context()))
	}
	wrapped := api.RequestsCounterMiddleware(handler)
	wrapped(w, req, nil)
	assert.Equal(t, true, called)
	assert.Equal(t, uint64(1), api.stats.called)
}

// TestRequestIDMiddleware ensures each request receives a prefixed id.
func TestRequestIDMiddleware(t *testing.T) {
	api := newTestAPIHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	w := httptest.NewRecorder()
	var gotID string
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		gotID = GetValueFromContext(req.Context(), ContextRequestID)
	}
	wrapped := api.RequestIDMiddleware(handler)
	wrapped(w, req, nil)
	assert.Equal(t, RequestIDPrefix+":fixed", gotID)
}

// TestMaintenanceModeMiddleware ensures public requests are short-circuited
// with 503 while the maintenance mode is on.
func TestMaintenanceModeMiddleware(t *testing.T) {
	api := newTestAPIHandler(t)
	var called bool
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		called = true
	}
	wrapped := api.MaintenanceModeMiddleware(handler)

	api.mode.message = "upgrade in progress"
	api.mode.started = NewMockClocker().Now()
	api.mode.enabled.Store(true)
	w := httptest.NewRecorder()
	wrapped(w, httptest.NewRequest(http.MethodPost, "/graphql", nil), nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.False(t, called)
	assert.Contains(t, w.Body.String(), "upgrade in progress")

	api.mode.enabled.Store(false)
	w = httptest.NewRecorder()
	wrapped(w, httptest.NewRequest(http.MethodPost, "/graphql", nil), nil)
	assert.True(t, called)
}

// TestStatsMiddleware ensures the response status codes distribution is recorded.
func TestStatsMiddleware(t *testing.T) {
	api := newTestAPIHandler(t)
	handler := func(w http.ResponseWriter, req *http.Request, ps httprouter.Params) {
		w.WriteHeader(http.StatusTeapot)
	}
	wrapped := api.StatsMiddleware(handler)
	w := httptest.NewRecorder()
	wrapped(w, httptest.NewRequest(http.MethodGet, "/status", nil), nil)
	api.stats.mu.RLock()
	defer api.stats.mu.RUnlock()
	assert.Equal(t, uint64(1), api.stats.status[http.StatusTeapot])
}
