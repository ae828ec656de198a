// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package services

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*HTTPServerService)(nil)

// failingShutdown wraps a real server and reports a shutdown failure.
type failingShutdown struct {
	*http.Server
	err error
}

func (f *failingShutdown) Shutdown(ctx context.Context) error {
	_ = f.Server.Shutdown(ctx) //nolint:errcheck
	return f.err
}

func newTestServer() *http.Server {
	return &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "ok") //nolint:errcheck
		}),
		ReadHeaderTimeout: time.Second,
	}
}

// waitForAddr polls until the service has bound its listener.
func waitForAddr(t *testing.T, svc *HTTPServerService) net.Addr {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if addr := svc.Addr(); addr != nil {
			return addr
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("service did not bind")
	return nil
}

func TestNewHTTPServerService_DefaultTimeout(t *testing.T) {
	t.Parallel()

	svc := NewHTTPServerService(newTestServer(), "127.0.0.1:0", 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("shutdownTimeout = %v, want 10s", svc.shutdownTimeout)
	}
	if svc.String() != "http-server" {
		t.Errorf("String() = %q", svc.String())
	}
	if svc.Addr() != nil {
		t.Errorf("Addr() before Serve = %v, want nil", svc.Addr())
	}
}

func TestHTTPServerService_ServesAndShutsDown(t *testing.T) {
	t.Parallel()

	svc := NewHTTPServerService(newTestServer(), "127.0.0.1:0", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	addr := waitForAddr(t, svc)
	resp, err := http.Get("http://" + addr.String() + "/")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body) //nolint:errcheck
	_ = resp.Body.Close()            //nolint:errcheck
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestHTTPServerService_BindError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer ln.Close()

	svc := NewHTTPServerService(newTestServer(), ln.Addr().String(), time.Second)
	if err := svc.Serve(context.Background()); err == nil {
		t.Error("Serve() on an occupied port should fail")
	}
	if svc.Addr() != nil {
		t.Errorf("Addr() after failed bind = %v, want nil", svc.Addr())
	}
}

func TestHTTPServerService_ShutdownError(t *testing.T) {
	t.Parallel()

	server := &failingShutdown{Server: newTestServer(), err: errors.New("connections did not drain")}
	svc := NewHTTPServerService(server, "127.0.0.1:0", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	waitForAddr(t, svc)
	cancel()

	if err := <-done; !errors.Is(err, server.err) {
		t.Errorf("Serve() error = %v, want shutdown error", err)
	}
}
