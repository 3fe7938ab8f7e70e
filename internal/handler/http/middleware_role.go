package http

import (
	"net/http"

	"github.com/kmolchanov/feedback-service/internal/logger"
	"github.com/kmolchanov/feedback-service/internal/utils"
	"github.com/kmolchanov/feedback-service/models"
)

// requireRole is an HTTP middleware constructor that gates a route on flat
// role equality. It must run after [Handler.auth].
//
// A request whose identity role does not match is rejected with 403 before
// the handler runs. A request carrying no identity at all means the route
// was wired without the authentication middleware; that is a programming
// error, logged and answered with the generic 500.
func (h *Handler) requireRole(role models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				log.Err(ErrMissingIdentity).Str("path", r.URL.Path).Msg("role-gated route reached without authentication")
				utils.WriteJSON(w, models.ErrorResponse{Error: internalServerErrorMessage}, http.StatusInternalServerError)
				return
			}

			if identity.Role != role {
				log.Info().
					Int64("subjectID", identity.SubjectID).
					Str("role", string(identity.Role)).
					Str("required", string(role)).
					Msg("role mismatch")
				utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusForbidden)}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
