package repository

import (
	"gamepal/internal/models"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(p *models.Post) error {
	return r.db.Create(p).Error
}

func (r *PostRepository) GetByID(id uint) (*models.Post, error) {
	var p models.Post
	if err := r.db.Preload("User").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListFeed returns recent posts, newest first.
func (r *PostRepository) ListFeed(limit, offset int) ([]models.Post, error) {
	var list []models.Post
	err := r.db.Preload("User").Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *PostRepository) ListByUserID(userID uint, limit, offset int) ([]models.Post, error) {
	var list []models.Post
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&list).Error
	return list, err
}

func (r *PostRepository) Delete(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Post{}).Error
}

func (r *PostRepository) CountByUserID(userID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&c).Error
	return c, err
}

func (r *PostRepository) IncrementLikes(id uint, delta int) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).
		Update("likes_count", gorm.Expr("likes_count + ?", delta)).Error
}

func (r *PostRepository) IncrementComments(id uint, delta int) error {
	return r.db.Model(&models.Post{}).Where("id = ?", id).
		Update("comments_count", gorm.Expr("comments_count + ?", delta)).Error
}
