// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package api

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coursepilot/internal/auth"
	"github.com/tomtom215/coursepilot/internal/database"
	"github.com/tomtom215/coursepilot/internal/events"
	"github.com/tomtom215/coursepilot/internal/recommend"
)

// Recommender produces recommendations. Satisfied by *recommend.Engine.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
	GetStats() recommend.Stats
}

// ReviewStore persists and lists reviews. Satisfied by *database.DB.
type ReviewStore interface {
	CreateReview(ctx context.Context, in *database.ReviewInput) (*database.Review, error)
	ListReviews(ctx context.Context, skip, limit int) ([]database.Review, error)
	ListReviewsByCourse(ctx context.Context, courseID int) ([]database.Review, error)
	ListReviewsByStudent(ctx context.Context, studentID int) ([]database.Review, error)
}

// Pinger reports storage reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Authenticator exchanges credentials for a token and registers new
// students. Satisfied by *auth.Service.
type Authenticator interface {
	Login(ctx context.Context, email, password, ip string) (*auth.LoginResult, error)
	Register(ctx context.Context, in *auth.Registration, ip string) (*recommend.Student, error)
}

// ReviewPublisher announces stored reviews. Satisfied by *events.Bus.
type ReviewPublisher interface {
	PublishReviewSubmitted(ctx context.Context, e *events.ReviewSubmitted) error
}

var (
	_ Recommender     = (*recommend.Engine)(nil)
	_ ReviewStore     = (*database.DB)(nil)
	_ Pinger          = (*database.DB)(nil)
	_ Authenticator   = (*auth.Service)(nil)
	_ ReviewPublisher = (*events.Bus)(nil)
)

// Dependencies are the collaborators of Handler. Publisher may be nil.
type Dependencies struct {
	Engine    Recommender
	Reviews   ReviewStore
	DB        Pinger
	Auth      Authenticator
	Publisher ReviewPublisher
	Version   string
	Logger    zerolog.Logger
}

// Handler serves the API endpoints.
type Handler struct {
	engine    Recommender
	reviews   ReviewStore
	db        Pinger
	auth      Authenticator
	publisher ReviewPublisher
	version   string
	logger    zerolog.Logger
	startTime time.Time
}

// NewHandler creates a handler.
//
//nolint:gocritic // hugeParam: deps is a one-time construction argument
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		engine:    deps.Engine,
		reviews:   deps.Reviews,
		db:        deps.DB,
		auth:      deps.Auth,
		publisher: deps.Publisher,
		version:   deps.Version,
		logger:    deps.Logger.With().Str("component", "api").Logger(),
		startTime: time.Now(),
	}
}
