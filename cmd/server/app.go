// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/coursepilot/internal/api"
	"github.com/tomtom215/coursepilot/internal/auth"
	"github.com/tomtom215/coursepilot/internal/authz"
	"github.com/tomtom215/coursepilot/internal/config"
	"github.com/tomtom215/coursepilot/internal/database"
	"github.com/tomtom215/coursepilot/internal/events"
	"github.com/tomtom215/coursepilot/internal/logging"
	"github.com/tomtom215/coursepilot/internal/recommend"
	"github.com/tomtom215/coursepilot/internal/supervisor"
	"github.com/tomtom215/coursepilot/internal/supervisor/services"
)

const httpShutdownTimeout = 10 * time.Second

// application holds the wired components of a running server.
type application struct {
	db     *database.DB
	bus    *events.Bus
	server *http.Server
	tree   *supervisor.Tree
}

// newApplication opens the database and wires every component into the
// supervisor tree. The tree is not started.
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	logging.Info().Msg("Database initialized successfully")

	app := &application{db: db}
	if err := app.wire(ctx, cfg); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (app *application) wire(ctx context.Context, cfg *config.Config) error {
	if cfg.Database.SeedDemoData {
		if err := seedDemoData(ctx, app.db, cfg.Database.DemoPassword); err != nil {
			return err
		}
	}

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}
	engine.SetDataProvider(app.db)

	jwtManager, err := newJWTManager(cfg.Security)
	if err != nil {
		return err
	}

	lockout := auth.NewLockoutManager(auth.DefaultLockoutConfig())
	authService := auth.NewService(app.db, jwtManager, lockout, logging.WithComponent("auth"))

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return fmt.Errorf("create authorization enforcer: %w", err)
	}

	app.bus, err = events.NewBus(&cfg.Events, logging.WithComponent("events"))
	if err != nil {
		return fmt.Errorf("create event bus: %w", err)
	}

	handler := api.NewHandler(api.Dependencies{
		Engine:    engine,
		Reviews:   app.db,
		DB:        app.db,
		Auth:      authService,
		Publisher: app.bus,
		Version:   version,
		Logger:    logging.Logger(),
	})

	router := api.NewRouter(
		handler,
		auth.NewMiddleware(jwtManager, cfg.Security.AuthMode, logging.WithComponent("authn")),
		authz.NewMiddleware(enforcer, logging.WithComponent("authz")),
		api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)),
	)

	app.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	app.tree = supervisor.NewTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  httpShutdownTimeout,
	})
	app.tree.AddEventService(app.bus)
	app.tree.AddAPIService(services.NewHTTPServerService(app.server, app.server.Addr, httpShutdownTimeout))
	app.tree.AddMaintenanceService(lockout)

	logging.Info().
		Str("addr", app.server.Addr).
		Bool("breaker", cfg.Recommend.BreakerEnabled).
		Msg("Services added to supervisor tree")
	return nil
}

// Close releases the event bus and the database.
func (app *application) Close() {
	if app.bus != nil {
		if err := app.bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}
	if err := app.db.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database")
	}
}

// seedDemoData loads the demo curriculum into an empty database.
func seedDemoData(ctx context.Context, db *database.DB, password string) error {
	logging.Info().Msg("Demo data seeding enabled (SEED_DEMO_DATA=true)")

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	seeded, err := db.SeedDemoData(ctx, hash)
	if err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	if seeded {
		logging.Info().Msg("Demo curriculum loaded")
	} else {
		logging.Info().Msg("Database already populated, demo seed skipped")
	}
	return nil
}

// newJWTManager builds the token manager. With authentication disabled and
// no secret configured, tokens are signed with a per-process random secret.
//
//nolint:gocritic // hugeParam: sec is copied so the secret can be filled in
func newJWTManager(sec config.SecurityConfig) (*auth.JWTManager, error) {
	if sec.AuthMode == auth.AuthModeNone && sec.JWTSecret == "" {
		sec.JWTSecret = uuid.NewString() + uuid.NewString()
	}
	m, err := auth.NewJWTManager(&sec)
	if err != nil {
		return nil, fmt.Errorf("initialize JWT manager: %w", err)
	}
	return m, nil
}
