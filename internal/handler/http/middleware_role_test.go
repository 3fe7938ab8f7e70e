package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmolchanov/feedback-service/models"
)

// TestRequireRole_Match verifies that a matching role lets the request
// through to the handler.
func TestRequireRole_Match(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil, nil)
	next := &nextCapture{}

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/user/all", nil), 1, models.RoleAdmin)
	rec := httptest.NewRecorder()

	h.requireRole(models.RoleAdmin)(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, next.called)
}

// TestRequireRole_Mismatch verifies that a user token on an admin route is
// rejected with 403.
func TestRequireRole_Mismatch(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil, nil)
	next := &nextCapture{}

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/user/all", nil), 7, models.RoleUser)
	rec := httptest.NewRecorder()

	h.requireRole(models.RoleAdmin)(next.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Forbidden")
	assert.False(t, next.called)
}

// TestRequireRole_MissingIdentity verifies that reaching a role-gated route
// without authentication is treated as a wiring error.
func TestRequireRole_MissingIdentity(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil, nil)
	next := &nextCapture{}

	req := httptest.NewRequest(http.MethodGet, "/user/all", nil)
	rec := httptest.NewRecorder()

	h.requireRole(models.RoleAdmin)(next.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), internalServerErrorMessage)
	assert.False(t, next.called)
}
