package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken is an opaque login token issued for a user. The token string
// itself is the primary key; rows are dropped when the owning user is deleted.
type AccessToken struct {
	Token     string    `gorm:"size:43;primaryKey" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
