package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/agendamed/agenda-api/internal/config"
	"github.com/agendamed/agenda-api/internal/platform/postgres"
	"github.com/agendamed/agenda-api/internal/service"
	"github.com/agendamed/agenda-api/internal/service/auth"
	"github.com/agendamed/agenda-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore        store.UserStore
	cityStore        store.CityStore
	doctorStore      store.DoctorStore
	patientStore     store.PatientStore
	appointmentStore store.AppointmentStore

	// Services
	jwtService         auth.JWTService
	authService        *service.AuthService
	cityService        *service.CityService
	doctorService      *service.DoctorService
	patientService     *service.PatientService
	appointmentService *service.AppointmentService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger and
// database connection that must be established before initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(0)

	app.userStore = postgres.NewUserStore(db, logger)
	app.cityStore = postgres.NewCityStore(db, logger)
	app.doctorStore = postgres.NewDoctorStore(db, logger)
	app.patientStore = postgres.NewPatientStore(db, logger)
	app.appointmentStore = postgres.NewAppointmentStore(db, logger)

	app.authService = service.NewAuthService(app.userStore, app.jwtService, hasher, hasher)
	app.cityService = service.NewCityService(app.cityStore)
	app.doctorService = service.NewDoctorService(app.doctorStore, app.cityStore)
	app.patientService = service.NewPatientService(app.patientStore)
	app.appointmentService = service.NewAppointmentService(
		app.appointmentStore,
		app.doctorStore,
		app.patientStore,
	)

	return app, nil
}
