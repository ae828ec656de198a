// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/tomtom215/coursepilot/internal/config"
	"github.com/tomtom215/coursepilot/internal/logging"
)

// ErrBusClosed is returned when publishing after Close.
var ErrBusClosed = errors.New("event bus closed")

const reviewAuditHandler = "review-audit"

// Bus is an in-process publish/subscribe bus with a consuming router.
type Bus struct {
	pubsub  *gochannel.GoChannel
	cfg     config.EventsConfig
	wmLog   watermill.LoggerAdapter
	logger  zerolog.Logger
	auditor *ReviewAuditor

	mu        sync.Mutex
	closed    bool
	ready     chan struct{}
	readyOnce sync.Once
}

// NewBus creates the bus and its review audit consumer.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBus(cfg *config.EventsConfig, logger zerolog.Logger) (*Bus, error) {
	if cfg == nil {
		return nil, errors.New("events config is required")
	}
	if cfg.OutputBuffer < 0 {
		return nil, fmt.Errorf("output buffer must be non-negative, got %d", cfg.OutputBuffer)
	}

	logger = logger.With().Str("component", "events").Logger()
	wmLog := watermill.NewSlogLogger(slog.New(logging.NewSlogHandler(logger)))

	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: cfg.OutputBuffer,
		}, wmLog),
		cfg:     *cfg,
		wmLog:   wmLog,
		logger:  logger,
		auditor: NewReviewAuditor(logger),
		ready:   make(chan struct{}),
	}, nil
}

// PublishReviewSubmitted publishes e. The request ID from ctx is attached
// as message metadata.
func (b *Bus) PublishReviewSubmitted(ctx context.Context, e *ReviewSubmitted) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return ErrBusClosed
	}

	msg, err := newReviewMessage(e, logging.RequestIDFromContext(ctx))
	if err != nil {
		return err
	}

	if err := b.pubsub.Publish(TopicReviewSubmitted, msg); err != nil {
		return fmt.Errorf("publish %s: %w", TopicReviewSubmitted, err)
	}
	return nil
}

// Auditor returns the review audit consumer.
func (b *Bus) Auditor() *ReviewAuditor {
	return b.auditor
}

// Ready is closed once the router has started consuming for the first time.
func (b *Bus) Ready() <-chan struct{} {
	return b.ready
}

// newRouter builds a router with the audit handler attached. A Watermill
// router cannot be restarted, so each Serve call gets a fresh one.
func (b *Bus) newRouter() (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: b.cfg.CloseTimeout,
	}, b.wmLog)
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}

	retry := middleware.Retry{
		MaxRetries:      b.cfg.RetryCount,
		InitialInterval: b.cfg.RetryInitialInterval,
		MaxInterval:     10 * b.cfg.RetryInitialInterval,
		Multiplier:      2.0,
		Logger:          b.wmLog,
	}
	router.AddMiddleware(middleware.Recoverer, retry.Middleware)

	router.AddConsumerHandler(reviewAuditHandler, TopicReviewSubmitted, b.pubsub, b.auditor.Handle)
	return router, nil
}

// Serve runs the router until ctx is canceled. It implements suture.Service.
func (b *Bus) Serve(ctx context.Context) error {
	router, err := b.newRouter()
	if err != nil {
		return err
	}

	go func() {
		select {
		case <-router.Running():
			b.readyOnce.Do(func() { close(b.ready) })
		case <-ctx.Done():
		}
	}()

	b.logger.Info().Str("topic", TopicReviewSubmitted).Msg("Event router starting")
	if err := router.Run(ctx); err != nil {
		return fmt.Errorf("event router: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return nil
}

// String implements fmt.Stringer for suture logging.
func (b *Bus) String() string {
	return "event-router"
}

// Close stops accepting events and closes the underlying pub/sub.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- b.pubsub.Close() }()

	timeout := b.cfg.CloseTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("close event bus: timed out after %s", timeout)
	}
}
