package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	CreatorID       uint           `gorm:"not null;index" json:"creator_id"`
	Title           string         `gorm:"size:255;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Game            string         `gorm:"size:100;index" json:"game"`
	StartDate       time.Time      `gorm:"not null;index" json:"start_date"`
	EndDate         *time.Time     `json:"end_date"`
	MaxParticipants int            `gorm:"default:0" json:"max_participants"` // 0 = unlimited
	ImageURL        string         `gorm:"size:512" json:"image_url"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Creator      User               `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Participants []EventParticipant `gorm:"foreignKey:EventID" json:"participants,omitempty"`
}

func (Event) TableName() string {
	return "events"
}

type EventParticipant struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	EventID   uint           `gorm:"not null;index:idx_event_user,unique" json:"event_id"`
	UserID    uint           `gorm:"not null;index:idx_event_user,unique" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Event Event `gorm:"foreignKey:EventID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (EventParticipant) TableName() string {
	return "event_participants"
}
