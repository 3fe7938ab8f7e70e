package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmolchanov/feedback-service/internal/service"
	"github.com/kmolchanov/feedback-service/internal/store"
	"github.com/kmolchanov/feedback-service/models"
)

// ─────────────────────────────────────────────
// adminRegister
// ─────────────────────────────────────────────

func TestAdminRegister_Success(t *testing.T) {
	admins := &mockAdminService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.Admin, error) {
			return models.Admin{ID: 3, Username: req.Username, Email: req.Email}, nil
		},
	}

	h := newTestHandler(t, nil, nil, admins, nil)
	req := newJSONRequest(http.MethodPost, "/admin/register", jsonBody(t, models.RegisterRequest{
		Username: "root",
		Email:    "root@example.com",
		Password: "secret123",
	}))
	rec := httptest.NewRecorder()

	h.adminRegister(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Admin
	decodeBody(t, rec, &created)
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, "root", created.Username)
}

func TestAdminRegister_Duplicate(t *testing.T) {
	admins := &mockAdminService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.Admin, error) {
			return models.Admin{}, store.ErrAdminAlreadyExists
		},
	}

	h := newTestHandler(t, nil, nil, admins, nil)
	req := newJSONRequest(http.MethodPost, "/admin/register", jsonBody(t, models.RegisterRequest{
		Username: "root",
		Email:    "root@example.com",
		Password: "secret123",
	}))
	rec := httptest.NewRecorder()

	h.adminRegister(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Username or email already exists")
}

// ─────────────────────────────────────────────
// adminLogin
// ─────────────────────────────────────────────

// TestAdminLogin_Success verifies that an admin login issues a token with the
// admin role.
func TestAdminLogin_Success(t *testing.T) {
	const signedToken = "admin.jwt.token"

	admins := &mockAdminService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.Admin, error) {
			return models.Admin{ID: 3, Email: "root@example.com"}, nil
		},
	}
	auth := &mockAuthService{
		createTokenFn: func(_ context.Context, subjectID int64, role models.Role) (models.Token, error) {
			assert.Equal(t, int64(3), subjectID)
			assert.Equal(t, models.RoleAdmin, role)
			return models.Token{SignedString: signedToken}, nil
		},
	}

	h := newTestHandler(t, auth, nil, admins, nil)
	req := newJSONRequest(http.MethodPost, "/admin/login", jsonBody(t, models.LoginRequest{
		Email:    "root@example.com",
		Password: "secret123",
	}))
	rec := httptest.NewRecorder()

	h.adminLogin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, signedToken, resp.Token)
	assert.Equal(t, "Login Successful!", resp.Message)
}

func TestAdminLogin_InvalidCredentials(t *testing.T) {
	admins := &mockAdminService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.Admin, error) {
			return models.Admin{}, service.ErrInvalidCredentials
		},
	}

	h := newTestHandler(t, nil, nil, admins, nil)
	req := newJSONRequest(http.MethodPost, "/admin/login", jsonBody(t, models.LoginRequest{
		Email:    "root@example.com",
		Password: "wrong",
	}))
	rec := httptest.NewRecorder()

	h.adminLogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password.")
}

func TestAdminLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, nil, nil, nil)
	req := newJSONRequest(http.MethodPost, "/admin/login", "{")
	rec := httptest.NewRecorder()

	h.adminLogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}
