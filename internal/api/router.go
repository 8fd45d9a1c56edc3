package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/popo0015/body-tracker/internal/api/handlers"
	"github.com/popo0015/body-tracker/internal/api/middleware"
	"github.com/popo0015/body-tracker/internal/config"
	"github.com/popo0015/body-tracker/internal/logger"
	"github.com/popo0015/body-tracker/internal/service"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, cfg *config.Config, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	sugar := log.Sugar()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.RequestLogger(&chiMiddleware.DefaultLogFormatter{
		Logger:  logger.StdLog(log),
		NoColor: true,
	}))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Authenticate(services.Session, sugar))

	authHandler := handlers.NewAuthHandler(services.Auth, cfg.IsProduction(), sugar)
	recordHandler := handlers.NewRecordHandler(services.Record, sugar)
	entriesHandler := handlers.NewEntriesHandler(services.History, sugar)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.With(middleware.RequireAuth).Get("/me", authHandler.Me)
		})

		r.Route("/entries", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/today", entriesHandler.Today)
			r.Get("/history", entriesHandler.History)
		})
	})

	r.Post("/logout", authHandler.LogoutRedirect)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/history", entriesHandler.History)

		r.Get("/measurements", recordHandler.ListMeasurements)
		r.Post("/measurements", recordHandler.SaveMeasurement)

		r.Get("/meals", recordHandler.ListMeals)
		r.Post("/meals", recordHandler.AddMeal)

		r.Get("/workouts", recordHandler.ListWorkouts)
		r.Post("/workouts", recordHandler.AddWorkout)
	})

	return r
}
