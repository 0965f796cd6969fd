// Package store persists user records through a caller-supplied GORM session.
//
// It is pure glue: every method is a single query or write against the tables
// declared in the models package, with no business logic on top.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/userdb/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserStore reads and writes users and their linked OAuth accounts.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Get returns the user with the given id, OAuth accounts preloaded.
func (s *UserStore) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("OAuthAccounts").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByEmail matches case-insensitively; stored casing is preserved.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("OAuthAccounts").
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetByOAuthAccount returns the user owning the (provider, accountID) identity.
func (s *UserStore) GetByOAuthAccount(ctx context.Context, provider, accountID string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Preload("OAuthAccounts").
		Joins("JOIN oauth_accounts ON oauth_accounts.user_id = users.id").
		Where("oauth_accounts.provider = ? AND oauth_accounts.account_id = ?", provider, accountID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by oauth account: %w", err)
	}
	return &user, nil
}

// Create inserts the user together with any attached OAuth accounts. A zero
// ID is replaced with a fresh UUID; the ID never changes afterwards.
func (s *UserStore) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for i := range user.OAuthAccounts {
		if user.OAuthAccounts[i].ID == uuid.Nil {
			user.OAuthAccounts[i].ID = uuid.New()
		}
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return s.Get(ctx, user.ID)
}

// Update persists exactly the given column changes and returns the reloaded
// user. Passing an "id" change is an error.
func (s *UserStore) Update(ctx context.Context, user *models.User, changes map[string]any) (*models.User, error) {
	if _, ok := changes["id"]; ok {
		return nil, ErrImmutableID
	}

	if len(changes) > 0 {
		err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("id = ?", user.ID).
			Updates(changes).Error
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}
	return s.Get(ctx, user.ID)
}

// AddOAuthAccount links a new OAuth account to the user.
func (s *UserStore) AddOAuthAccount(ctx context.Context, user *models.User, account *models.OAuthAccount) (*models.User, error) {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.UserID = user.ID

	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, fmt.Errorf("failed to add oauth account: %w", err)
	}
	return s.Get(ctx, user.ID)
}

// UpdateOAuthAccount persists the given column changes on an account already
// linked to the user.
func (s *UserStore) UpdateOAuthAccount(ctx context.Context, user *models.User, account *models.OAuthAccount, changes map[string]any) (*models.User, error) {
	if len(changes) > 0 {
		err := s.db.WithContext(ctx).Model(&models.OAuthAccount{}).
			Where("id = ? AND user_id = ?", account.ID, user.ID).
			Updates(changes).Error
		if err != nil {
			return nil, fmt.Errorf("failed to update oauth account: %w", err)
		}
	}
	return s.Get(ctx, user.ID)
}

// Delete removes the user and its OAuth accounts. Access tokens are dropped
// by the foreign key cascade.
func (s *UserStore) Delete(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&models.User{ID: user.ID}).Error
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
