package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/mfialho/dietlog-backend/internal/handlers"
	"github.com/mfialho/dietlog-backend/internal/middleware"
)

// Setup registers every route. The meal and metrics routes sit behind the
// identity gate; registration and sign-in are open.
func Setup(r *chi.Mux, db *sqlx.DB, log *logrus.Logger) {
	users := handlers.NewUserHandler(db, log)
	sessions := handlers.NewSessionHandler(db, log)
	meals := handlers.NewMealHandler(db, log)

	r.Post("/users", users.Register)
	r.Post("/sessions", sessions.Create)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireIdentity)

		r.Post("/users/metrics", users.Metrics)

		r.Post("/meals", meals.Create)
		r.Get("/meals", meals.List)
		r.Get("/meals/{mealId}", meals.Get)
		r.Put("/meals/{mealId}", meals.Update)
		r.Delete("/meals/{mealId}", meals.Delete)
	})
}
