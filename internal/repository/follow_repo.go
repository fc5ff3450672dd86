package repository

import (
	"gamepal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

// Follow inserts the pair unless it already exists. Returns true when a
// new row was written.
func (r *FollowRepository) Follow(followerID, followeeID uint) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Follow{FollowerID: followerID, FolloweeID: followeeID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *FollowRepository) Unfollow(followerID, followeeID uint) error {
	return r.db.Unscoped().
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

func (r *FollowRepository) CountFollowers(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&c).Error
	return c, err
}

func (r *FollowRepository) CountFollowing(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&c).Error
	return c, err
}
