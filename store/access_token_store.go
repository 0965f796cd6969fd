package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/userdb/models"
	"gorm.io/gorm"
)

// AccessTokenStore reads and writes opaque login tokens.
type AccessTokenStore struct {
	db *gorm.DB
}

func NewAccessTokenStore(db *gorm.DB) *AccessTokenStore {
	return &AccessTokenStore{db: db}
}

// GetByToken returns the token record. When maxAge is set, tokens created
// before it are treated as missing.
func (s *AccessTokenStore) GetByToken(ctx context.Context, token string, maxAge *time.Time) (*models.AccessToken, error) {
	query := s.db.WithContext(ctx).Where("token = ?", token)
	if maxAge != nil {
		query = query.Where("created_at >= ?", *maxAge)
	}

	var accessToken models.AccessToken
	if err := query.First(&accessToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}
	return &accessToken, nil
}

// Create inserts the token. A duplicate token surfaces the driver's
// constraint error unchanged.
func (s *AccessTokenStore) Create(ctx context.Context, token *models.AccessToken) (*models.AccessToken, error) {
	if err := s.db.WithContext(ctx).Create(token).Error; err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}
	return token, nil
}

// Update persists the full token record as given.
func (s *AccessTokenStore) Update(ctx context.Context, token *models.AccessToken) (*models.AccessToken, error) {
	if err := s.db.WithContext(ctx).Save(token).Error; err != nil {
		return nil, fmt.Errorf("failed to update access token: %w", err)
	}
	return token, nil
}

func (s *AccessTokenStore) Delete(ctx context.Context, token *models.AccessToken) error {
	err := s.db.WithContext(ctx).Delete(&models.AccessToken{}, "token = ?", token.Token).Error
	if err != nil {
		return fmt.Errorf("failed to delete access token: %w", err)
	}
	return nil
}
