// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/coursepilot/internal/auth"
	"github.com/tomtom215/coursepilot/internal/config"
	"github.com/tomtom215/coursepilot/internal/events"
	"github.com/tomtom215/coursepilot/internal/logging"
)

// mockService runs until canceled, optionally failing its first runs.
type mockService struct {
	name     string
	starts   atomic.Int32
	failures int32
	started  chan struct{}
}

func newMockService(name string, failures int32) *mockService {
	return &mockService{name: name, failures: failures, started: make(chan struct{}, 16)}
}

func (m *mockService) Serve(ctx context.Context) error {
	n := m.starts.Add(1)
	select {
	case m.started <- struct{}{}:
	default:
	}
	if n <= m.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string { return m.name }

var _ suture.Service = (*mockService)(nil)

func testSlogLogger() *slog.Logger {
	return slog.New(logging.NewSlogHandler(zerolog.Nop()))
}

func waitStarted(t *testing.T, svc *mockService) {
	t.Helper()
	select {
	case <-svc.started:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s did not start", svc.name)
	}
}

func TestNewTree_Defaults(t *testing.T) {
	t.Parallel()

	tree := NewTree(testSlogLogger(), TreeConfig{})
	want := DefaultTreeConfig()
	if tree.config != want {
		t.Errorf("config = %+v, want %+v", tree.config, want)
	}
	if tree.Root() == nil {
		t.Error("Root() is nil")
	}
}

func TestNewTree_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := TreeConfig{FailureThreshold: 2, FailureDecay: 1, FailureBackoff: time.Second, ShutdownTimeout: 3 * time.Second}
	tree := NewTree(testSlogLogger(), cfg)
	if tree.config != cfg {
		t.Errorf("config = %+v, want %+v", tree.config, cfg)
	}
}

func TestTree_RunsEachLayer(t *testing.T) {
	t.Parallel()

	tree := NewTree(testSlogLogger(), TreeConfig{FailureBackoff: 50 * time.Millisecond, ShutdownTimeout: time.Second})
	eventsSvc := newMockService("mock-events", 0)
	apiSvc := newMockService("mock-api", 0)
	maintSvc := newMockService("mock-maintenance", 0)
	tree.AddEventService(eventsSvc)
	tree.AddAPIService(apiSvc)
	tree.AddMaintenanceService(maintSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	waitStarted(t, eventsSvc)
	waitStarted(t, apiSvc)
	waitStarted(t, maintSvc)
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services: %v", report)
	}
}

func TestTree_RestartsFailedService(t *testing.T) {
	t.Parallel()

	tree := NewTree(testSlogLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	flaky := newMockService("flaky", 2)
	tree.AddAPIService(flaky)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(3 * time.Second)
	for flaky.starts.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := flaky.starts.Load(); got < 3 {
		t.Errorf("starts = %d, want >= 3", got)
	}

	cancel()
	<-errCh
}

func TestTree_ApplicationServices(t *testing.T) {
	t.Parallel()

	bus, err := events.NewBus(&config.EventsConfig{
		OutputBuffer:         8,
		CloseTimeout:         time.Second,
		RetryCount:           1,
		RetryInitialInterval: 10 * time.Millisecond,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}
	defer func() { _ = bus.Close() }()

	lockout := auth.NewLockoutManager(auth.DefaultLockoutConfig())

	tree := NewTree(testSlogLogger(), TreeConfig{ShutdownTimeout: 2 * time.Second})
	tree.AddEventService(bus)
	tree.AddMaintenanceService(lockout)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	select {
	case <-bus.Ready():
	case <-time.After(3 * time.Second):
		t.Fatal("event router did not start under the supervisor")
	}

	if err := bus.PublishReviewSubmitted(context.Background(), &events.ReviewSubmitted{
		ReviewID: 1, StudentID: 1, CourseID: 10016, FinalScore: 8.2,
	}); err != nil {
		t.Fatalf("PublishReviewSubmitted() error = %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for bus.Auditor().Total() < 1 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if bus.Auditor().Total() != 1 {
		t.Errorf("auditor total = %d, want 1", bus.Auditor().Total())
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(5 * time.Second):
		t.Fatal("tree did not stop")
	}
}
