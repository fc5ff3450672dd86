package repository

import (
	"errors"
	"time"

	"gamepal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAlreadyEarned = errors.New("achievement already earned")

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func (r *AchievementRepository) ListCatalog() ([]models.Achievement, error) {
	var list []models.Achievement
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *AchievementRepository) GetByID(id uint) (*models.Achievement, error) {
	var a models.Achievement
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AchievementRepository) GetByCode(code string) (*models.Achievement, error) {
	var a models.Achievement
	if err := r.db.Where("code = ?", code).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Grant records the achievement for the user. The unique index on
// (user_id, achievement_id) plus ON CONFLICT DO NOTHING makes the
// operation a single atomic insert; a duplicate grant affects zero
// rows and surfaces as ErrAlreadyEarned.
func (r *AchievementRepository) Grant(userID, achievementID uint) error {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserAchievement{
			UserID:        userID,
			AchievementID: achievementID,
			EarnedAt:      time.Now(),
		})
	return grantOutcome(res.RowsAffected, res.Error)
}

// grantOutcome interprets the insert-or-ignore result: an error wins,
// zero affected rows means the pair already existed.
func grantOutcome(rowsAffected int64, err error) error {
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAlreadyEarned
	}
	return nil
}

func (r *AchievementRepository) ListByUserID(userID uint) ([]models.UserAchievement, error) {
	var list []models.UserAchievement
	err := r.db.Where("user_id = ?", userID).Order("earned_at DESC").
		Preload("Achievement").Find(&list).Error
	return list, err
}

func (r *AchievementRepository) CountByUserID(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.UserAchievement{}).Where("user_id = ?", userID).Count(&c).Error
	return c, err
}
