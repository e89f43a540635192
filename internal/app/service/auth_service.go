package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mrops-br/storefront-api/internal/app/dto"
	"github.com/mrops-br/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// PasswordVerifier checks a password against a stored hash. A mismatch must be
// reported as domain.ErrWrongPassword.
type PasswordVerifier interface {
	Compare(hash, password string) error
}

// TokenIssuer signs an access token for a user id.
type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
}

// LoginLimits bounds failed logins per email: after MaxAttempts failures
// inside Window, further attempts are refused until the window has passed.
type LoginLimits struct {
	MaxAttempts int
	Window      time.Duration
}

// failureSweepThreshold is the map size at which expired failure records
// start being swept.
const failureSweepThreshold = 1024

type failedLogins struct {
	count int
	since time.Time
}

// AuthService signs users in.
type AuthService struct {
	users         domain.UserRepository
	passwords     PasswordVerifier
	tokens        TokenIssuer
	limits        LoginLimits
	tracer        trace.Tracer
	logger        *slog.Logger
	now           func() time.Time
	loginAttempts metric.Int64Counter

	mu        sync.Mutex
	failures  map[string]*failedLogins
	nextSweep int
	lastSweep time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	users domain.UserRepository,
	passwords PasswordVerifier,
	tokens TokenIssuer,
	limits LoginLimits,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *AuthService {
	loginAttempts, _ := meter.Int64Counter(
		"auth.login.attempts",
		metric.WithDescription("Total number of login attempts"),
	)

	return &AuthService{
		users:         users,
		passwords:     passwords,
		tokens:        tokens,
		limits:        limits,
		tracer:        tracer,
		logger:        logger,
		now:           time.Now,
		loginAttempts: loginAttempts,
		failures:      make(map[string]*failedLogins),
		nextSweep:     failureSweepThreshold,
	}
}

// Login verifies credentials and returns an access token whose subject is the
// user id.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	creds := domain.Credentials{Email: req.Email, Password: req.Password}
	if err := creds.Validate(); err != nil {
		return nil, s.fail(ctx, span, "invalid", err)
	}
	creds = creds.Normalize()

	if s.locked(creds.Email) {
		return nil, s.fail(ctx, span, "locked", domain.ErrTooManyAttempts)
	}

	user, err := s.users.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.registerFailure(creds.Email)
			return nil, s.fail(ctx, span, "unknown_user", err)
		}
		return nil, s.fail(ctx, span, "failure", err)
	}

	if err := s.passwords.Compare(user.PasswordHash, creds.Password); err != nil {
		if errors.Is(err, domain.ErrWrongPassword) {
			s.registerFailure(creds.Email)
			return nil, s.fail(ctx, span, "wrong_password", err)
		}
		return nil, s.fail(ctx, span, "failure", err)
	}

	token, expires, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, s.fail(ctx, span, "failure", fmt.Errorf("issue token: %w", err))
	}
	s.resetFailures(creds.Email)

	s.loginAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "success")))
	span.SetAttributes(attribute.String("user.id", user.ID))
	s.logger.InfoContext(ctx, "Login succeeded",
		slog.String("user_id", user.ID),
	)

	span.SetStatus(codes.Ok, "Login succeeded")
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expires.UTC(),
	}, nil
}

func (s *AuthService) locked(email string) bool {
	if s.limits.MaxAttempts <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.failures[email]
	if !ok {
		return false
	}
	if s.now().Sub(f.since) >= s.limits.Window {
		delete(s.failures, email)
		return false
	}
	return f.count >= s.limits.MaxAttempts
}

func (s *AuthService) registerFailure(email string) {
	if s.limits.MaxAttempts <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	f, ok := s.failures[email]
	if ok && now.Sub(f.since) < s.limits.Window {
		f.count++
		return
	}

	s.failures[email] = &failedLogins{count: 1, since: now}
	if len(s.failures) >= s.nextSweep ||
		(len(s.failures) >= failureSweepThreshold && now.Sub(s.lastSweep) >= s.limits.Window) {
		s.sweepExpired(now)
	}
}

// sweepExpired drops failure records whose window has passed. The next sweep
// runs once the map has doubled or another window has elapsed. Callers hold
// s.mu.
func (s *AuthService) sweepExpired(now time.Time) {
	for email, f := range s.failures {
		if now.Sub(f.since) >= s.limits.Window {
			delete(s.failures, email)
		}
	}
	s.nextSweep = max(failureSweepThreshold, 2*len(s.failures))
	s.lastSweep = now
}

func (s *AuthService) resetFailures(email string) {
	s.mu.Lock()
	delete(s.failures, email)
	s.mu.Unlock()
}

func (s *AuthService) fail(ctx context.Context, span trace.Span, result string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, result)
	s.logger.WarnContext(ctx, "Login failed",
		slog.String("result", result),
		slog.String("error", err.Error()),
	)
	s.loginAttempts.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
	return err
}
