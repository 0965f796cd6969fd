package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the base users table definition.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"size:320;not null;uniqueIndex" json:"email"`
	HashedPassword string    `gorm:"size:1024;not null" json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser    bool      `gorm:"not null;default:false" json:"is_superuser"`
	IsVerified     bool      `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	OAuthAccounts []OAuthAccount `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// OAuthAccount stores a third-party identity linked to a user. A
// (provider, account id) pair identifies at most one account.
type OAuthAccount struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Provider     string    `gorm:"size:100;not null;uniqueIndex:idx_oauth_provider_account" json:"provider"`
	AccountID    string    `gorm:"size:320;not null;uniqueIndex:idx_oauth_provider_account" json:"account_id"`
	AccountEmail string    `gorm:"size:320;not null" json:"account_email"`
	AccessToken  string    `gorm:"size:1024;not null" json:"-"`
	RefreshToken *string   `gorm:"size:1024" json:"-"`
	ExpiresAt    *int64    `json:"expires_at,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
