package repository

import (
	"gamepal/internal/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(c *models.Comment) error {
	return r.db.Create(c).Error
}

func (r *CommentRepository) GetByID(id uint) (*models.Comment, error) {
	var c models.Comment
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) ListByPostID(postID uint, limit, offset int) ([]models.Comment, error) {
	var list []models.Comment
	err := r.db.Where("post_id = ?", postID).Order("created_at ASC").
		Limit(limit).Offset(offset).Preload("User").Find(&list).Error
	return list, err
}

func (r *CommentRepository) Delete(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Comment{}).Error
}
