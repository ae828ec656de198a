// Coursepilot - Career-Driven Course Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursepilot

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/coursepilot/internal/database"
	"github.com/tomtom215/coursepilot/internal/logging"
	"github.com/tomtom215/coursepilot/internal/recommend"
)

var (
	// ErrInvalidCredentials is returned for an unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountLocked is returned while an email is locked out.
	ErrAccountLocked = errors.New("account temporarily locked due to too many failed attempts")
)

// AccountStore looks up and registers login accounts. *database.DB implements it.
type AccountStore interface {
	GetAccountByEmail(ctx context.Context, email string) (*database.Account, error)
	RegisterStudent(ctx context.Context, reg *database.StudentRegistration) (*recommend.Student, error)
}

// Registration is a student signing up with a plaintext password.
type Registration struct {
	Name               string
	Email              string
	Password           string
	Faculty            *string
	Year               *int
	CompletedCourseIDs []int
	HumanSkillIDs      []int
}

// LoginResult is a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Role      string    `json:"role"`
	StudentID *int      `json:"student_id,omitempty"`
}

// Service authenticates email and password logins.
type Service struct {
	accounts AccountStore
	jwt      *JWTManager
	lockout  *LockoutManager
	security *logging.SecurityLogger
}

// NewService creates a login service. lockout may be nil to disable lockout.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(accounts AccountStore, jwtManager *JWTManager, lockout *LockoutManager, logger zerolog.Logger) *Service {
	if lockout == nil {
		lockout = NewLockoutManager(&LockoutConfig{Enabled: false})
	}
	return &Service{
		accounts: accounts,
		jwt:      jwtManager,
		lockout:  lockout,
		security: logging.NewSecurityLogger(logger),
	}
}

// Login verifies the credentials and returns a signed token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password, ip string) (*LoginResult, error) {
	subject := strings.ToLower(strings.TrimSpace(email))

	if locked, remaining := s.lockout.CheckLocked(subject); locked {
		s.security.LogLoginFailure(subject, ip, "locked")
		return nil, fmt.Errorf("%w: retry in %s", ErrAccountLocked, remaining.Round(time.Second))
	}

	account, err := s.accounts.GetAccountByEmail(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if account == nil {
		burnPasswordCheck(password)
		return nil, s.fail(subject, ip, "unknown_account")
	}
	if !CheckPassword(account.PasswordHash, password) {
		return nil, s.fail(subject, ip, "bad_password")
	}

	token, expiresAt, err := s.jwt.GenerateToken(account.Email, account.Role, account.StudentID)
	if err != nil {
		return nil, err
	}

	s.lockout.RecordSuccessfulLogin(subject)
	s.security.LogLoginSuccess(account.Email, account.Role, ip)

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      account.Role,
		StudentID: account.StudentID,
	}, nil
}

// Register creates a student profile and its login account. The password is
// stored only as a bcrypt hash. A taken email yields database.ErrAccountExists.
func (s *Service) Register(ctx context.Context, in *Registration, ip string) (*recommend.Student, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	student, err := s.accounts.RegisterStudent(ctx, &database.StudentRegistration{
		Name:               strings.TrimSpace(in.Name),
		Email:              strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash:       hash,
		Faculty:            in.Faculty,
		Year:               in.Year,
		CompletedCourseIDs: in.CompletedCourseIDs,
		HumanSkillIDs:      in.HumanSkillIDs,
	})
	if err != nil {
		return nil, err
	}

	s.security.LogRegistration(student.Email, student.ID, ip)
	return student, nil
}

func (s *Service) fail(subject, ip, reason string) error {
	s.security.LogLoginFailure(subject, ip, reason)
	if locked, _ := s.lockout.RecordFailedAttempt(subject); locked {
		return ErrAccountLocked
	}
	return ErrInvalidCredentials
}
