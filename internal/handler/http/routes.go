package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kmolchanov/feedback-service/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/user", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/forgotPassword", h.forgotPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.With(h.requireRole(models.RoleAdmin)).Get("/all", h.getUsers)
			r.Get("/", h.getUser)
			r.Put("/profile/edit", h.editProfile)
			r.Put("/profile/changePassword", h.changePassword)
			r.With(h.requireRole(models.RoleAdmin)).Delete("/{userId}", h.deleteUser)
		})
	})

	router.Route("/admin", func(r chi.Router) {
		r.Post("/register", h.adminRegister)
		r.Post("/login", h.adminLogin)
	})

	router.Route("/feedback", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/myFeedbacks", h.myFeedbacks)
		r.With(h.requireRole(models.RoleAdmin)).Get("/all", h.allFeedbacks)
		r.With(h.requireRole(models.RoleAdmin)).Get("/{feedbackId}", h.feedbackByID)
		r.Post("/create", h.createFeedback)
		r.With(h.requireRole(models.RoleAdmin)).Put("/update/{feedbackId}", h.updateFeedbackStatus)
		r.With(h.requireRole(models.RoleAdmin)).Delete("/delete/{feedbackId}", h.deleteFeedback)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
