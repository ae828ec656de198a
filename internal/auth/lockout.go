// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package auth

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/coursepilot/internal/logging"
)

// LockoutConfig holds configuration for the login lockout.
type LockoutConfig struct {
	// MaxAttempts is the number of failed attempts before lockout.
	MaxAttempts int

	// LockoutDuration is the base lockout period.
	LockoutDuration time.Duration

	// MaxLockoutDuration caps the doubled period on repeated lockouts.
	MaxLockoutDuration time.Duration

	// CleanupInterval is how often expired entries are dropped.
	CleanupInterval time.Duration

	// Enabled controls whether lockout is active.
	Enabled bool
}

// DefaultLockoutConfig returns sensible defaults.
func DefaultLockoutConfig() *LockoutConfig {
	return &LockoutConfig{
		MaxAttempts:        5,
		LockoutDuration:    15 * time.Minute,
		MaxLockoutDuration: 24 * time.Hour,
		CleanupInterval:    5 * time.Minute,
		Enabled:            true,
	}
}

// lockoutEntry tracks failed login attempts for one email.
type lockoutEntry struct {
	failedAttempts int
	lockoutCount   int
	lastAttempt    time.Time
	lockedUntil    time.Time
}

// LockoutManager locks an email out after repeated failed logins.
// Each further lockout of the same email doubles the period up to the cap.
// State is kept in memory and is safe for concurrent use.
type LockoutManager struct {
	config  LockoutConfig
	mu      sync.Mutex
	entries map[string]*lockoutEntry
	now     func() time.Time
}

// NewLockoutManager creates a lockout manager. A nil config uses the defaults.
func NewLockoutManager(config *LockoutConfig) *LockoutManager {
	if config == nil {
		config = DefaultLockoutConfig()
	}
	return &LockoutManager{
		config:  *config,
		entries: make(map[string]*lockoutEntry),
		now:     time.Now,
	}
}

// CheckLocked reports whether subject is locked and for how much longer.
func (m *LockoutManager) CheckLocked(subject string) (bool, time.Duration) {
	if !m.config.Enabled {
		return false, 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[subject]
	if !ok {
		return false, 0
	}
	if remaining := entry.lockedUntil.Sub(m.now()); remaining > 0 {
		return true, remaining
	}
	return false, 0
}

// RecordFailedAttempt counts a failed login and reports whether it locked the subject.
func (m *LockoutManager) RecordFailedAttempt(subject string) (bool, time.Duration) {
	if !m.config.Enabled {
		return false, 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	entry, ok := m.entries[subject]
	if !ok {
		entry = &lockoutEntry{}
		m.entries[subject] = entry
	}
	if remaining := entry.lockedUntil.Sub(now); remaining > 0 {
		return true, remaining
	}

	entry.failedAttempts++
	entry.lastAttempt = now
	if entry.failedAttempts < m.config.MaxAttempts {
		return false, 0
	}

	duration := m.lockoutDuration(entry.lockoutCount)
	entry.lockedUntil = now.Add(duration)
	entry.lockoutCount++
	entry.failedAttempts = 0

	logging.Warn().
		Str("subject", logging.SanitizeEmail(subject)).
		Dur("duration", duration).
		Int("lockout_count", entry.lockoutCount).
		Msg("Account locked")

	return true, duration
}

// RecordSuccessfulLogin clears the state for subject.
func (m *LockoutManager) RecordSuccessfulLogin(subject string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, subject)
}

// lockoutDuration doubles the base period for each previous lockout.
func (m *LockoutManager) lockoutDuration(previous int) time.Duration {
	d := m.config.LockoutDuration
	for i := 0; i < previous && d < m.config.MaxLockoutDuration; i++ {
		d *= 2
	}
	if m.config.MaxLockoutDuration > 0 && d > m.config.MaxLockoutDuration {
		return m.config.MaxLockoutDuration
	}
	return d
}

// cleanup drops entries that are neither locked nor recently active.
func (m *LockoutManager) cleanup() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for subject, entry := range m.entries {
		if now.Before(entry.lockedUntil) {
			continue
		}
		// Repeat offenders keep their lockout count for one max period
		if now.Sub(entry.lastAttempt) < m.config.MaxLockoutDuration && entry.lockoutCount > 0 {
			continue
		}
		if now.Sub(entry.lastAttempt) < m.config.LockoutDuration {
			continue
		}
		delete(m.entries, subject)
		removed++
	}
	return removed
}

// Serve runs periodic cleanup until ctx is canceled. It implements
// suture.Service so the supervisor can own the cleanup loop.
func (m *LockoutManager) Serve(ctx context.Context) error {
	interval := m.config.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := m.cleanup(); n > 0 {
				logging.Debug().Int("count", n).Msg("Cleaned up expired lockout entries")
			}
		}
	}
}

// String identifies the service in supervisor logs.
func (m *LockoutManager) String() string {
	return "login-lockout-cleanup"
}
