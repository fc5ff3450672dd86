package repository

import (
	"gamepal/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(rev *models.Review) error {
	return r.db.Create(rev).Error
}

func (r *ReviewRepository) ListByCompanionID(companionID uint, limit, offset int) ([]models.Review, error) {
	var list []models.Review
	err := r.db.Where("companion_id = ? AND is_public = ?", companionID, true).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Preload("Reviewer").
		Find(&list).Error
	return list, err
}

// HasReviewed reports whether reviewer already reviewed this companion.
func (r *ReviewRepository) HasReviewed(reviewerID, companionID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.Review{}).
		Where("reviewer_id = ? AND companion_id = ?", reviewerID, companionID).
		Count(&c).Error
	return c > 0, err
}
