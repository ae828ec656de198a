// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/coursepilot/internal/auth"
	"github.com/tomtom215/coursepilot/internal/authz"
	"github.com/tomtom215/coursepilot/internal/config"
	"github.com/tomtom215/coursepilot/internal/database"
	"github.com/tomtom215/coursepilot/internal/events"
	"github.com/tomtom215/coursepilot/internal/models"
	"github.com/tomtom215/coursepilot/internal/recommend"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef-api-test"
	testPassword = "correct-horse-battery"
)

// testDBSemaphore serializes DuckDB usage across tests.
var testDBSemaphore = make(chan struct{}, 1)

var (
	hashOnce    sync.Once
	demoHash    string
	demoHashErr error
)

func demoPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		demoHash, demoHashErr = auth.HashPassword(testPassword)
	})
	if demoHashErr != nil {
		t.Fatalf("HashPassword() error = %v", demoHashErr)
	}
	return demoHash
}

// recordingPublisher captures published review events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.ReviewSubmitted
	err    error
}

func (p *recordingPublisher) PublishReviewSubmitted(_ context.Context, e *events.ReviewSubmitted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *e)
	return p.err
}

func (p *recordingPublisher) published() []events.ReviewSubmitted {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.ReviewSubmitted(nil), p.events...)
}

// testEnv is a fully wired API backed by a seeded in-memory database.
type testEnv struct {
	handler   http.Handler
	db        *database.DB
	engine    *recommend.Engine
	jwt       *auth.JWTManager
	publisher *recordingPublisher
}

type envOptions struct {
	authMode  string
	rateLimit int
}

func newTestEnv(t *testing.T, opts envOptions) *testEnv {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "512MB", Threads: 1})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	if _, err := db.SeedDemoData(context.Background(), demoPasswordHash(t)); err != nil {
		t.Fatalf("SeedDemoData() error = %v", err)
	}

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	engine.SetDataProvider(db)

	sec := &config.SecurityConfig{
		AuthMode:          auth.AuthModeJWT,
		JWTSecret:         testSecret,
		SessionTimeout:    time.Hour,
		RateLimitReqs:     opts.rateLimit,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: opts.rateLimit == 0,
	}
	if opts.authMode != "" {
		sec.AuthMode = opts.authMode
	}

	jwtManager, err := auth.NewJWTManager(sec)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}

	publisher := &recordingPublisher{}
	handler := NewHandler(Dependencies{
		Engine:    engine,
		Reviews:   db,
		DB:        db,
		Auth:      auth.NewService(db, jwtManager, auth.NewLockoutManager(nil), zerolog.Nop()),
		Publisher: publisher,
		Version:   "test",
		Logger:    zerolog.Nop(),
	})
	router := NewRouter(handler,
		auth.NewMiddleware(jwtManager, sec.AuthMode, zerolog.Nop()),
		authz.NewMiddleware(enforcer, zerolog.Nop()),
		NewChiMiddleware(ChiMiddlewareConfigFromSecurity(sec)),
	)

	return &testEnv{
		handler:   router.Setup(),
		db:        db,
		engine:    engine,
		jwt:       jwtManager,
		publisher: publisher,
	}
}

func intPtr(v int) *int { return &v }

func (e *testEnv) token(t *testing.T, email, role string, studentID *int) string {
	t.Helper()
	token, _, err := e.jwt.GenerateToken(email, role, studentID)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func (e *testEnv) studentToken(t *testing.T, id int) string {
	return e.token(t, "student@uni.example.edu", database.RoleStudent, intPtr(id))
}

func (e *testEnv) advisorToken(t *testing.T) string {
	return e.token(t, "advisor@uni.example.edu", database.RoleAdvisor, nil)
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.10:4321"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// envelope is the decoded response with the data left raw.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	if env.Status != models.StatusSuccess {
		t.Fatalf("status = %q, error = %+v", env.Status, env.Error)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v\ndata: %s", err, env.Data)
	}
}

func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != code {
		t.Errorf("error = %+v, want code %s", env.Error, code)
	}
}
