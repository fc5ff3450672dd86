package repository

import (
	"gamepal/internal/models"

	"gorm.io/gorm"
)

type CompanionRepository struct {
	db *gorm.DB
}

func NewCompanionRepository(db *gorm.DB) *CompanionRepository {
	return &CompanionRepository{db: db}
}

func (r *CompanionRepository) Create(c *models.Companion) error {
	return r.db.Create(c).Error
}

func (r *CompanionRepository) GetByID(id uint) (*models.Companion, error) {
	var c models.Companion
	err := r.db.Preload("User").Preload("Services").Preload("Games").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanionRepository) GetByUserID(userID uint) (*models.Companion, error) {
	var c models.Companion
	err := r.db.Preload("Services").Preload("Games").Where("user_id = ?", userID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanionRepository) Update(c *models.Companion) error {
	return r.db.Save(c).Error
}

// RecalcRating refreshes average_rating from public reviews.
func (r *CompanionRepository) RecalcRating(companionID uint) error {
	return r.db.Model(&models.Companion{}).Where("id = ?", companionID).
		Update("average_rating", r.db.Model(&models.Review{}).
			Select("COALESCE(AVG(rating), 0)").
			Where("companion_id = ? AND is_public = ?", companionID, true),
		).Error
}

func (r *CompanionRepository) AddService(s *models.CompanionService) error {
	return r.db.Create(s).Error
}

func (r *CompanionRepository) GetService(id, companionID uint) (*models.CompanionService, error) {
	var s models.CompanionService
	err := r.db.Where("id = ? AND companion_id = ?", id, companionID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CompanionRepository) UpdateService(s *models.CompanionService) error {
	return r.db.Save(s).Error
}

func (r *CompanionRepository) DeleteService(id, companionID uint) error {
	return r.db.Where("id = ? AND companion_id = ?", id, companionID).Delete(&models.CompanionService{}).Error
}

func (r *CompanionRepository) AddGame(g *models.CompanionGame) error {
	return r.db.Create(g).Error
}

func (r *CompanionRepository) DeleteGame(id, companionID uint) error {
	return r.db.Where("id = ? AND companion_id = ?", id, companionID).Delete(&models.CompanionGame{}).Error
}

func (r *CompanionRepository) CountGames(companionID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.CompanionGame{}).Where("companion_id = ?", companionID).Count(&c).Error
	return c, err
}
