package database

import (
	"log"

	"gamepal/config"
	"gamepal/internal/domain"
	"gamepal/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error), // only log errors, not every SQL query
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Companion{},
		&models.CompanionService{},
		&models.CompanionGame{},
		&models.Review{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.Notification{},
		&models.Event{},
		&models.EventParticipant{},
	)
}

// SeedAdmin creates a default admin account if none exists.
func SeedAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("role = ?", domain.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		return
	}
	admin := &models.User{
		Name:         "Admin",
		Username:     "admin",
		Email:        "admin@gamepal.local",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Printf("[seed] admin: %v", err)
	}
}

// SeedAchievements inserts the base achievement catalog. Existing codes
// are left untouched.
func SeedAchievements(db *gorm.DB) {
	catalog := []models.Achievement{
		{Code: "FIRST_POST", Name: "First Post", Description: "Published your first post", XPReward: 50},
		{Code: "FIRST_SESSION", Name: "First Session", Description: "Completed your first companion session", XPReward: 100},
		{Code: "SOCIAL_BUTTERFLY", Name: "Social Butterfly", Description: "Followed 10 players", XPReward: 100},
		{Code: "RISING_STAR", Name: "Rising Star", Description: "Reached a 4.5 average rating", XPReward: 250},
		{Code: "EVENT_REGULAR", Name: "Event Regular", Description: "Joined 5 community events", XPReward: 150},
	}
	for _, a := range catalog {
		var existing models.Achievement
		if err := db.Where("code = ?", a.Code).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&a).Error; err != nil {
			log.Printf("[seed] achievement %s: %v", a.Code, err)
		}
	}
}
