package memory

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/mrops-br/storefront-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// UserRepository is an in-memory account store keyed by lowercased email.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]*domain.User
	tracer trace.Tracer
	logger *slog.Logger
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository(tracer trace.Tracer, logger *slog.Logger) *UserRepository {
	return &UserRepository{
		users:  make(map[string]*domain.User),
		tracer: tracer,
		logger: logger,
	}
}

// Save stores or replaces the account for user.Email.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	ctx, span := r.tracer.Start(ctx, "UserRepository.Save")
	defer span.End()

	span.SetAttributes(attribute.String("user.id", user.ID))

	stored := *user
	stored.Email = normalizeEmail(user.Email)

	r.mu.Lock()
	r.users[stored.Email] = &stored
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "User saved in repository",
		slog.String("user_id", user.ID),
	)

	span.SetStatus(codes.Ok, "User saved")
	return nil
}

// FindByEmail returns domain.ErrUserNotFound for unknown emails.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, span := r.tracer.Start(ctx, "UserRepository.FindByEmail")
	defer span.End()

	r.mu.RLock()
	user, ok := r.users[normalizeEmail(email)]
	r.mu.RUnlock()

	if !ok {
		span.RecordError(domain.ErrUserNotFound)
		span.SetStatus(codes.Error, "User not found")
		r.logger.DebugContext(ctx, "User not found")
		return nil, domain.ErrUserNotFound
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	span.SetStatus(codes.Ok, "User found")
	found := *user
	return &found, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
