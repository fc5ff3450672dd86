package models

import (
	"time"

	"gorm.io/gorm"
)

type Achievement struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Code        string         `gorm:"uniqueIndex;size:64;not null" json:"code"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Icon        string         `gorm:"size:512" json:"icon"`
	XPReward    int            `gorm:"default:0" json:"xp_reward"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// UserAchievement records an earned achievement. The composite unique
// index makes granting idempotent at the storage layer.
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index:idx_user_achievement,unique" json:"user_id"`
	AchievementID uint      `gorm:"not null;index:idx_user_achievement,unique" json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`

	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
