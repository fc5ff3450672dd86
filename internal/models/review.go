package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is written once after a session and read-only afterward.
type Review struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	ReviewerID  uint           `gorm:"not null;index" json:"reviewer_id"`
	CompanionID uint           `gorm:"not null;index" json:"companion_id"`
	Rating      int            `gorm:"not null" json:"rating"` // 1..5
	Comment     string         `gorm:"type:text" json:"comment"`
	IsPublic    bool           `gorm:"default:true;index" json:"is_public"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Reviewer  User      `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Companion Companion `gorm:"foreignKey:CompanionID" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
