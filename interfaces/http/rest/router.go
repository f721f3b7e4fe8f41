// Package rest assembles the HTTP router.
package rest

import (
	"net/http"
	"time"

	"korabo/application/services"
	"korabo/interfaces/http/rest/handlers"
	"korabo/interfaces/http/rest/middleware"
	"korabo/pkg/auth"
	"korabo/pkg/common"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	service   *services.ProfileService
	validator *auth.JWTValidator
	logger    *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(service *services.ProfileService, validator *auth.JWTValidator, logger *zap.Logger) *Router {
	return &Router{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", rt.healthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.validator, rt.logger))

		profileHandler := handlers.NewProfileHandler(rt.service, rt.logger)
		courseHandler := handlers.NewCourseHandler(rt.service, rt.logger)

		r.Route("/users", func(r chi.Router) {
			r.Route("/me", func(r chi.Router) {
				r.Get("/profile", profileHandler.GetMyProfile)
				r.Patch("/profile", profileHandler.UpdateMyProfile)
				r.Get("/courses", courseHandler.GetMyCourses)
				r.Post("/courses", courseHandler.AddCourse)
				r.Delete("/courses/{courseID}", courseHandler.RemoveCourse)
			})
			r.Get("/{userID}/profile", profileHandler.GetUserProfile)
		})
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
