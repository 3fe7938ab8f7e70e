package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmolchanov/feedback-service/models"
)

// userParseToken hands out a user-role token for route protection tests.
func userParseToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{SubjectID: 7, TokenClaims: models.TokenClaims{Role: models.RoleUser}}, nil
}

// TestRoutes_Unauthenticated verifies that every protected endpoint rejects
// requests without a token.
func TestRoutes_Unauthenticated(t *testing.T) {
	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/user/all"},
		{http.MethodGet, "/user/"},
		{http.MethodPut, "/user/profile/edit"},
		{http.MethodPut, "/user/profile/changePassword"},
		{http.MethodDelete, "/user/42"},
		{http.MethodGet, "/feedback/myFeedbacks"},
		{http.MethodGet, "/feedback/all"},
		{http.MethodGet, "/feedback/11"},
		{http.MethodPost, "/feedback/create"},
		{http.MethodPut, "/feedback/update/11"},
		{http.MethodDelete, "/feedback/delete/11"},
	}

	h := newTestHandler(t, nil, nil, nil, nil)
	router := h.Init()

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// TestRoutes_AdminOnly verifies that a user-role token is rejected with 403
// on every admin-gated endpoint.
func TestRoutes_AdminOnly(t *testing.T) {
	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/user/all"},
		{http.MethodDelete, "/user/42"},
		{http.MethodGet, "/feedback/all"},
		{http.MethodGet, "/feedback/11"},
		{http.MethodPut, "/feedback/update/11"},
		{http.MethodDelete, "/feedback/delete/11"},
	}

	auth := &mockAuthService{parseTokenFn: userParseToken}
	h := newTestHandler(t, auth, nil, nil, nil)
	router := h.Init()

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set("Authorization", "Bearer user.jwt")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

// TestRoutes_OpenEndpoints verifies that registration, login and password
// recovery do not require a token. A malformed body is enough to prove the
// handler itself ran.
func TestRoutes_OpenEndpoints(t *testing.T) {
	targets := []string{
		"/user/register",
		"/user/login",
		"/user/forgotPassword",
		"/admin/register",
		"/admin/login",
	}

	h := newTestHandler(t, nil, nil, nil, nil)
	router := h.Init()

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			req := newJSONRequest(http.MethodPost, target, "{")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
		})
	}
}

// TestRoutes_UnregisteredMethodIs404 verifies that using an unsupported
// method on a known path responds 404 instead of chi's default 405.
func TestRoutes_UnregisteredMethodIs404(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/user/login", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestRoutes_UnknownPathIs404 verifies routing of a path that matches
// nothing at all.
func TestRoutes_UnknownPathIs404(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil, nil)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
