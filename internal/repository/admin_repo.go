package repository

import (
	"gamepal/internal/models"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// ListUsers supports search on username/email/name and role filtering.
func (r *AdminRepository) ListUsers(search, role string, page, limit int) ([]models.User, int64, error) {
	q := r.db.Model(&models.User{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("username ILIKE ? OR email ILIKE ? OR name ILIKE ?", pattern, pattern, pattern)
	}
	if role != "" {
		q = q.Where("role = ?", role)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var users []models.User
	err := q.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&users).Error
	return users, total, err
}

type DashboardStats struct {
	TotalUsers      int64 `json:"total_users"`
	TotalCompanions int64 `json:"total_companions"`
	TotalPosts      int64 `json:"total_posts"`
	TotalEvents     int64 `json:"total_events"`
}

func (r *AdminRepository) GetDashboardStats() (*DashboardStats, error) {
	var s DashboardStats
	if err := r.db.Model(&models.User{}).Count(&s.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Companion{}).Count(&s.TotalCompanions).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Post{}).Count(&s.TotalPosts).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Event{}).Count(&s.TotalEvents).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
