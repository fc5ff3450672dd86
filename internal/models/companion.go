package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Companion is the paid-services profile a user enables on top of
// their account. Exactly one row per owning user.
type Companion struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	HourlyRate      float64        `gorm:"not null;index" json:"hourly_rate"`
	AverageRating   float64        `gorm:"default:0;index" json:"average_rating"`
	TotalSessions   int            `gorm:"default:0" json:"total_sessions"`
	ResponseMinutes int            `gorm:"default:60" json:"response_minutes"` // typical response time estimate
	Languages       pq.StringArray `gorm:"type:text[]" json:"languages"`
	IsVerified      bool           `gorm:"default:false;index" json:"is_verified"`
	IsActive        bool           `gorm:"default:true;index" json:"is_active"` // soft disable toggle
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	User     User               `gorm:"foreignKey:UserID" json:"-"`
	Services []CompanionService `gorm:"foreignKey:CompanionID" json:"services,omitempty"`
	Games    []CompanionGame    `gorm:"foreignKey:CompanionID" json:"games,omitempty"`
}

func (Companion) TableName() string {
	return "companions"
}

type CompanionService struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CompanionID uint           `gorm:"not null;index" json:"companion_id"`
	ServiceType string         `gorm:"size:30;not null;index" json:"service_type"` // GAMING | CHAT | COACHING | STREAMING
	Price       float64        `gorm:"not null" json:"price"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Companion Companion `gorm:"foreignKey:CompanionID" json:"-"`
}

func (CompanionService) TableName() string {
	return "companion_services"
}

type CompanionGame struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CompanionID uint           `gorm:"not null;index:idx_companion_game,unique" json:"companion_id"`
	GameName    string         `gorm:"size:100;not null;index:idx_companion_game,unique" json:"game_name"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Companion Companion `gorm:"foreignKey:CompanionID" json:"-"`
}

func (CompanionGame) TableName() string {
	return "companion_games"
}
