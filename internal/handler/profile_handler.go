package handler

import (
	"net/http"

	"gamepal/internal/middleware"
	"gamepal/internal/repository"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	userRepo        *repository.UserRepository
	postRepo        *repository.PostRepository
	followRepo      *repository.FollowRepository
	achievementRepo *repository.AchievementRepository
}

func NewProfileHandler(userRepo *repository.UserRepository, postRepo *repository.PostRepository, followRepo *repository.FollowRepository, achievementRepo *repository.AchievementRepository) *ProfileHandler {
	return &ProfileHandler{
		userRepo:        userRepo,
		postRepo:        postRepo,
		followRepo:      followRepo,
		achievementRepo: achievementRepo,
	}
}

// Get returns the caller's profile with activity counts.
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	posts, err := h.postRepo.CountByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	followers, err := h.followRepo.CountFollowers(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	following, err := h.followRepo.CountFollowing(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	achievements, err := h.achievementRepo.CountByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": u,
		"stats": gin.H{
			"posts":        posts,
			"followers":    followers,
			"following":    following,
			"achievements": achievements,
		},
	})
}

type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// Update mutates the caller's profile fields; only provided fields change.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Username != nil && *req.Username != u.Username {
		if *req.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username cannot be empty"})
			return
		}
		if _, err := h.userRepo.GetByUsername(*req.Username); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		u.Username = *req.Username
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		u.AvatarURL = *req.AvatarURL
	}
	if err := h.userRepo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// RegisterFCMToken stores the device token for push notifications.
func (h *ProfileHandler) RegisterFCMToken(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	u.FCMToken = req.Token
	if err := h.userRepo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
