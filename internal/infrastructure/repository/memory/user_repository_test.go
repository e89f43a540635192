package memory

import (
	"context"
	"testing"

	"github.com/mrops-br/storefront-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(testTracer(), testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.User{ID: "u1", Email: " Demo@Storefront.dev", PasswordHash: "hash"}))

	user, err := repo.FindByEmail(ctx, "demo@storefront.dev ")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "demo@storefront.dev", user.Email)

	_, err = repo.FindByEmail(ctx, "other@storefront.dev")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
