//go:build integration

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"twitch_gateway/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to TEST_DB_CONN and applies migrations on a clean schema.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_CONN")
	if dsn == "" {
		t.Skip("TEST_DB_CONN is not set")
	}

	repo, err := Connect(context.Background(), dsn)
	require.NoError(t, err)
	db := repo.db

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Reset(db.DB, "../migrations"))
	require.NoError(t, goose.Up(db.DB, "../migrations"))

	t.Cleanup(func() {
		_ = goose.Reset(db.DB, "../migrations")
		_ = db.Close()
	})

	return db
}

func TestTwitchTokensIntegration(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDBRepository(db)
	ctx := context.Background()

	token, err := repo.GetNotExpiredToken(ctx)
	require.NoError(t, err)
	assert.Nil(t, token, "empty table")

	first := models.CachedToken{Value: "first", ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second)}
	require.NoError(t, repo.AddToken(ctx, first))

	token, err = repo.GetNotExpiredToken(ctx)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "first", token.Value)
	assert.True(t, first.ExpiresAt.Equal(token.ExpiresAt))

	second := models.CachedToken{Value: "second", ExpiresAt: time.Now().Add(2 * time.Hour)}
	require.NoError(t, repo.AddToken(ctx, second))

	token, err = repo.GetNotExpiredToken(ctx)
	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Equal(t, "second", token.Value)

	require.NoError(t, repo.SetExpiredToken(ctx, "second"))

	token, err = repo.GetNotExpiredToken(ctx)
	require.NoError(t, err)
	assert.Nil(t, token, "first was retired by AddToken, second expired explicitly")

	assert.EqualError(t, repo.SetExpiredToken(ctx, "missing"), "token not found")

	past := models.CachedToken{Value: "past", ExpiresAt: time.Now().Add(-time.Minute)}
	require.NoError(t, repo.AddToken(ctx, past))

	token, err = repo.GetNotExpiredToken(ctx)
	require.NoError(t, err)
	assert.Nil(t, token, "tokens past expires_at are not returned")
}
