package http

import (
	"context"
	"net/http"

	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/utils"
	"github.com/kmolchanov/feedback-service/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via the auth service, and on success stores the verified
// {subject id, role} pair in the request context under [utils.IdentityCtxKey]
// before delegating to the next handler.
//
// Every failure (absent header, malformed header, expired token, bad
// signature) is rejected with the same generic 401 response. The specific
// cause is logged server-side only, so callers cannot probe token state.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.unauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.unauthorized(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.unauthorized(w)
			return
		}

		ctx = context.WithValue(ctx, utils.IdentityCtxKey, utils.Identity{
			SubjectID: token.SubjectID,
			Role:      token.TokenClaims.Role,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) unauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
}
