package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account that can author thoughts
type User struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;not null"`
	Username    string    `json:"username" db:"username" gorm:"type:text;not null;unique"`
	Email       string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	Password    string    `json:"-" db:"password" gorm:"type:text;not null"`
	DisplayName *string   `json:"displayName,omitempty" db:"display_name" gorm:"type:text"`
	Bio         *string   `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	AvatarURL   *string   `json:"avatarUrl,omitempty" db:"avatar_url" gorm:"type:text"`
	IsAdmin     bool      `json:"isAdmin" db:"is_admin" gorm:"type:boolean;not null;default:false"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// AuthorProfile is the public subset of a user attached to thoughts
type AuthorProfile struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"displayName,omitempty"`
	AvatarURL   *string   `json:"avatarUrl,omitempty"`
}

// Profile returns the public author view of a user
func (u User) Profile() AuthorProfile {
	return AuthorProfile{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}
