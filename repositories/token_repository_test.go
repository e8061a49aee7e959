package repositories

import (
	"path/filepath"
	"testing"
	"time"

	"gin-foodcart/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTokenRepository(t *testing.T, now time.Time) *TokenRepository {
	t.Helper()
	db, err := infra.OpenSQLite(filepath.Join(t.TempDir(), "token_blacklist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })
	require.NoError(t, infra.EnsureTokenSchema(db))

	repo := NewTokenRepository(db).(*TokenRepository)
	repo.now = func() time.Time { return now }
	return repo
}

func TestBlacklistToken(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	repo := setupTokenRepository(t, now)

	blacklisted, err := repo.IsTokenBlacklisted("token-a")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, repo.AddBlacklistedToken("token-a", now.Add(time.Hour).Unix()))
	require.NoError(t, repo.AddBlacklistedToken("token-a", now.Add(time.Hour).Unix()))

	blacklisted, err = repo.IsTokenBlacklisted("token-a")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestCleanExpiredTokens(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	repo := setupTokenRepository(t, now)

	require.NoError(t, repo.AddBlacklistedToken("expired", now.Add(-time.Minute).Unix()))
	require.NoError(t, repo.AddBlacklistedToken("live", now.Add(time.Minute).Unix()))

	removed, err := repo.CleanExpiredTokens()
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	blacklisted, err := repo.IsTokenBlacklisted("expired")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	blacklisted, err = repo.IsTokenBlacklisted("live")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestTranslateErrorPassesThroughOtherErrors(t *testing.T) {
	assert.NoError(t, translateError("op", nil))
	err := translateError("op", assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, isConstraintViolation(err))
}
