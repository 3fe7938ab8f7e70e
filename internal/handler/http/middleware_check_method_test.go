package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Post("/user/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

// TestCheckHTTPMethod_UnregisteredMethod verifies that an unsupported method
// on a known path is answered with 404 instead of 405.
func TestCheckHTTPMethod_UnregisteredMethod(t *testing.T) {
	router := newCheckMethodRouter()

	req := httptest.NewRequest(http.MethodGet, "/user/login", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestCheckHTTPMethod_RegisteredMethod verifies that a supported method still
// reaches the handler.
func TestCheckHTTPMethod_RegisteredMethod(t *testing.T) {
	router := newCheckMethodRouter()

	req := httptest.NewRequest(http.MethodPost, "/user/login", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
