package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"receitas_backend/internal/feature/auth/domain/entity"
	"receitas_backend/internal/feature/auth/usecase"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client
}

func TestSessionRedis_CreateAndFind(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewSessionRedis(client, "sessao")

	session := &entity.Session{
		Token:     "token-001",
		UserID:    7,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), session))

	found, err := repo.FindByToken(context.Background(), "token-001")

	require.NoError(t, err)
	assert.Equal(t, session.Token, found.Token)
	assert.Equal(t, session.UserID, found.UserID)
}

func TestSessionRedis_FindByToken_NotFound(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewSessionRedis(client, "sessao")

	_, err := repo.FindByToken(context.Background(), "missing")

	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestSessionRedis_NoExpiry(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewSessionRedis(client, "sessao")

	session := &entity.Session{Token: "token-001", UserID: 7, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(context.Background(), session))

	// Keys are stored without a TTL; the token stays valid until removed.
	ttl, err := client.TTL(context.Background(), "sessao:token-001").Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl, "session key must not carry a TTL")
}
