package models

import (
	"time"

	"gamepal/internal/domain"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:100" json:"name"`
	Username     string         `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	GoogleID     *string        `gorm:"uniqueIndex;size:255" json:"-"` // nil for email signups (avoids duplicate '' on unique index)
	Role         string         `gorm:"size:20;not null;index;default:'USER'" json:"role"` // USER | COMPANION | MODERATOR | ADMIN
	AvatarURL    string         `gorm:"size:512" json:"avatar_url"`
	Bio          string         `gorm:"type:text" json:"bio"`
	Level        int            `gorm:"default:1" json:"level"`
	XP           int            `gorm:"default:0" json:"xp"`
	FCMToken     string         `gorm:"size:512" json:"-"` // for push notifications
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Companion *Companion `gorm:"foreignKey:UserID" json:"companion,omitempty"`
}

func (u *User) IsStaff() bool {
	return u.Role == domain.RoleAdmin || u.Role == domain.RoleModerator
}

// DisplayName returns the best available name for notification text.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
