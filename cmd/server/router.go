package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/agendamed/agenda-api/internal/api"
	apiMiddleware "github.com/agendamed/agenda-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.authService)
	cityHandler := api.NewCityHandler(app.cityService)
	doctorHandler := api.NewDoctorHandler(app.doctorService, app.patientService)
	patientHandler := api.NewPatientHandler(app.patientService)
	appointmentHandler := api.NewAppointmentHandler(app.appointmentService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/cidades", cityHandler.List)
		r.Get("/medicos", doctorHandler.List)
		r.Get("/cidades/{cidade_id}/medicos", doctorHandler.ListByCity)

		// Token refresh authenticates with the refresh token.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.AuthenticateRefresh)

			r.Post("/refresh", authHandler.Refresh)
		})

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/user", authHandler.CurrentUser)
			r.Post("/logout", authHandler.Logout)

			r.Post("/medicos", doctorHandler.Create)
			r.Get("/medicos/{id_medico}/pacientes", doctorHandler.ListPatients)

			r.Get("/pacientes", patientHandler.List)
			r.Post("/pacientes", patientHandler.Create)
			r.Put("/pacientes/{id}", patientHandler.Update)

			r.Get("/consultas", appointmentHandler.List)
			r.Post("/medicos/consulta", appointmentHandler.Create)
			r.Put("/consultas/{id}", appointmentHandler.Update)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
