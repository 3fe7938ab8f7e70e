package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/utils"
	"github.com/kmolchanov/feedback-service/models"
)

// decodeJSON parses the request body into dst. On failure it logs the cause
// and answers 400 with a fixed message; the caller must return immediately
// when ok is false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) (ok bool) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return false
	}
	return true
}

// identity extracts the authenticated identity attached by the auth
// middleware. A missing identity means the route was wired without it;
// that is answered with the generic 500 and ok is false.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (utils.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrMissingIdentity).Str("path", r.URL.Path).Msg("authenticated route reached without identity")
		utils.WriteJSON(w, models.ErrorResponse{Error: internalServerErrorMessage}, http.StatusInternalServerError)
		return utils.Identity{}, false
	}
	return identity, true
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.RegisterRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", registeredUser.ID).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	foundUser, err := h.services.UserService.Login(ctx, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser.ID, models.RoleUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: internalServerErrorMessage}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token:   token.String(),
		Message: "Login Successful!",
	}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.ForgotPasswordRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.services.UserService.ForgotPassword(ctx, request); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Temporary password sent via email"}, http.StatusOK)
}

func (h *Handler) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetAllUsers(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUserByID(r.Context(), identity.SubjectID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Email:    user.Email,
		Username: user.Username,
	}, http.StatusOK)
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var request models.EditProfileRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	updatedUser, err := h.services.UserService.EditProfile(r.Context(), identity.SubjectID, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.EditProfileResponse{
		Message: "Profile updated successfully",
		User:    updatedUser,
	}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var request models.ChangePasswordRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	if err := h.services.UserService.ChangePassword(r.Context(), identity.SubjectID, request); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Password changed successfully"}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid user id"}, http.StatusBadRequest)
		return
	}

	deletedUser, err := h.services.UserService.DeleteUser(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Info().Int64("id", deletedUser.ID).Msg("user deleted")

	utils.WriteJSON(w, models.DeleteUserResponse{
		DeletedUser: deletedUser,
		Message:     "User Deleted Successfully.",
	}, http.StatusOK)
}
