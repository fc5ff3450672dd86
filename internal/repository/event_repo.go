package repository

import (
	"errors"
	"time"

	"gamepal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventFull     = errors.New("Event is full")
	ErrAlreadyJoined = errors.New("already joined")
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(e *models.Event) error {
	return r.db.Create(e).Error
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var e models.Event
	err := r.db.Preload("Creator").Preload("Participants.User").First(&e, id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns events filtered by kind: "upcoming" (start_date >= now,
// soonest first), "past" (start_date < now, latest first), or all.
func (r *EventRepository) List(kind string, limit, offset int) ([]models.Event, error) {
	q := r.db.Preload("Creator")
	now := time.Now()
	switch kind {
	case "upcoming":
		q = q.Where("start_date >= ?", now).Order("start_date ASC")
	case "past":
		q = q.Where("start_date < ?", now).Order("start_date DESC")
	default:
		q = q.Order("start_date DESC")
	}
	var list []models.Event
	err := q.Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *EventRepository) CountParticipants(eventID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.EventParticipant{}).Where("event_id = ?", eventID).Count(&c).Error
	return c, err
}

// Join adds the user to the event. At capacity it returns ErrEventFull
// and writes nothing; a duplicate join returns ErrAlreadyJoined.
func (r *EventRepository) Join(eventID, userID uint) error {
	e, err := r.GetByID(eventID)
	if err != nil {
		return err
	}
	if e.MaxParticipants > 0 {
		count, err := r.CountParticipants(eventID)
		if err != nil {
			return err
		}
		if count >= int64(e.MaxParticipants) {
			return ErrEventFull
		}
	}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.EventParticipant{EventID: eventID, UserID: userID})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyJoined
	}
	return nil
}

func (r *EventRepository) Leave(eventID, userID uint) error {
	return r.db.Unscoped().
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&models.EventParticipant{}).Error
}
