package http

import (
	"net/http"

	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/utils"
	"github.com/kmolchanov/feedback-service/models"
)

func (h *Handler) adminRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.RegisterRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	registeredAdmin, err := h.services.AdminService.Register(ctx, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", registeredAdmin.ID).Msg("admin registered")

	utils.WriteJSON(w, registeredAdmin, http.StatusCreated)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	foundAdmin, err := h.services.AdminService.Login(ctx, request)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundAdmin.ID, models.RoleAdmin)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: internalServerErrorMessage}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundAdmin.ID).Msg("admin logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token:   token.String(),
		Message: "Login Successful!",
	}, http.StatusOK)
}
