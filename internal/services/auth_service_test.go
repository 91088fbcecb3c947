package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/share_registry/internal/auth"
	"github.com/share_registry/internal/models"
	"github.com/share_registry/internal/repositories"
)

func TestAuthService_LoginAndLogout(t *testing.T) {
	conn := newTestDB(t)
	users := repositories.NewGormUserRepository(conn)
	denylist := auth.NewMemoryDenylist()
	svc := NewAuthService(users, denylist, "test-secret")
	ctx := context.Background()

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	_, err = users.Create(ctx, &models.User{Username: "clerk", PasswordHash: hash, Role: models.RoleOperator})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "clerk", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	result, err := svc.Login(ctx, "clerk", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "clerk", result.User.Username)
	assert.WithinDuration(t, time.Now().Add(auth.TokenTTL), result.ExpiresAt, time.Minute)

	require.NoError(t, svc.Logout(ctx, "jti-1", result.ExpiresAt))
	denied, err := denylist.Contains(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, denied)
}
