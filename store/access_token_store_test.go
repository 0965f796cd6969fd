package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/userdb/models"
)

func TestAccessTokenStore_CreateAndGet(t *testing.T) {
	db := setupDB(t)
	users := NewUserStore(db)
	s := NewAccessTokenStore(db)
	ctx := context.Background()

	user, err := users.Create(ctx, newTestUser(t, "bedivere@camelot.bt"))
	require.NoError(t, err)

	created, err := s.Create(ctx, &models.AccessToken{Token: "TOKEN", UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, "TOKEN", created.Token)
	assert.Equal(t, user.ID, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := s.GetByToken(ctx, "TOKEN", nil)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
}

func TestAccessTokenStore_GetByTokenMaxAge(t *testing.T) {
	db := setupDB(t)
	users := NewUserStore(db)
	s := NewAccessTokenStore(db)
	ctx := context.Background()

	user, err := users.Create(ctx, newTestUser(t, "kay@camelot.bt"))
	require.NoError(t, err)

	_, err = s.Create(ctx, &models.AccessToken{Token: "TOKEN", UserID: user.ID})
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	found, err := s.GetByToken(ctx, "TOKEN", &past)
	require.NoError(t, err)
	assert.Equal(t, "TOKEN", found.Token)

	future := time.Now().Add(time.Hour)
	_, err = s.GetByToken(ctx, "TOKEN", &future)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccessTokenStore_Update(t *testing.T) {
	db := setupDB(t)
	users := NewUserStore(db)
	s := NewAccessTokenStore(db)
	ctx := context.Background()

	user, err := users.Create(ctx, newTestUser(t, "bors@camelot.bt"))
	require.NoError(t, err)

	token, err := s.Create(ctx, &models.AccessToken{Token: "TOKEN", UserID: user.ID})
	require.NoError(t, err)

	stamp := time.Now().Add(-30 * time.Minute).UTC().Truncate(time.Second)
	token.CreatedAt = stamp
	_, err = s.Update(ctx, token)
	require.NoError(t, err)

	found, err := s.GetByToken(ctx, "TOKEN", nil)
	require.NoError(t, err)
	assert.Equal(t, stamp.Unix(), found.CreatedAt.Unix())
}

func TestAccessTokenStore_Delete(t *testing.T) {
	db := setupDB(t)
	users := NewUserStore(db)
	s := NewAccessTokenStore(db)
	ctx := context.Background()

	user, err := users.Create(ctx, newTestUser(t, "ector@camelot.bt"))
	require.NoError(t, err)

	token, err := s.Create(ctx, &models.AccessToken{Token: "TOKEN", UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, token))

	_, err = s.GetByToken(ctx, "TOKEN", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccessTokenStore_DuplicateToken(t *testing.T) {
	db := setupDB(t)
	users := NewUserStore(db)
	s := NewAccessTokenStore(db)
	ctx := context.Background()

	user, err := users.Create(ctx, newTestUser(t, "lamorak@camelot.bt"))
	require.NoError(t, err)

	_, err = s.Create(ctx, &models.AccessToken{Token: "TOKEN", UserID: user.ID})
	require.NoError(t, err)

	_, err = s.Create(ctx, &models.AccessToken{Token: "TOKEN", UserID: user.ID})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestAccessTokenStore_DeletedUserCascades(t *testing.T) {
	db := setupDB(t)
	users := NewUserStore(db)
	s := NewAccessTokenStore(db)
	ctx := context.Background()

	user, err := users.Create(ctx, newTestUser(t, "gareth@camelot.bt"))
	require.NoError(t, err)

	_, err = s.Create(ctx, &models.AccessToken{Token: "TOKEN", UserID: user.ID})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, user))

	_, err = s.GetByToken(ctx, "TOKEN", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}
