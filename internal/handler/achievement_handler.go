package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gamepal/internal/middleware"
	"gamepal/internal/models"
	"gamepal/internal/repository"
	"gamepal/internal/service"

	"github.com/gin-gonic/gin"
)

type AchievementHandler struct {
	achievementRepo *repository.AchievementRepository
	userRepo        *repository.UserRepository
	notifSvc        *service.NotificationService
}

func NewAchievementHandler(achievementRepo *repository.AchievementRepository, userRepo *repository.UserRepository, notifSvc *service.NotificationService) *AchievementHandler {
	return &AchievementHandler{achievementRepo: achievementRepo, userRepo: userRepo, notifSvc: notifSvc}
}

// ListCatalog returns every achievement, with earned markers for the caller.
func (h *AchievementHandler) ListCatalog(c *gin.Context) {
	userID := middleware.GetUserID(c)
	catalog, err := h.achievementRepo.ListCatalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	earned, err := h.achievementRepo.ListByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": buildCatalogEntries(catalog, earned)})
}

type catalogEntry struct {
	ID          uint   `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int    `json:"xp_reward"`
	Earned      bool   `json:"earned"`
	EarnedAt    string `json:"earned_at,omitempty"`
}

// buildCatalogEntries merges the full catalog with the user's earned
// rows, stamping EarnedAt from the grant time.
func buildCatalogEntries(catalog []models.Achievement, earned []models.UserAchievement) []catalogEntry {
	earnedAt := make(map[uint]string, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementID] = ua.EarnedAt.Format(time.RFC3339)
	}
	out := make([]catalogEntry, 0, len(catalog))
	for _, a := range catalog {
		at, ok := earnedAt[a.ID]
		out = append(out, catalogEntry{
			ID:          a.ID,
			Code:        a.Code,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			XPReward:    a.XPReward,
			Earned:      ok,
			EarnedAt:    at,
		})
	}
	return out
}

func (h *AchievementHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	earned, err := h.achievementRepo.ListByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": earned})
}

type GrantAchievementRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

// grantErrorStatus maps a grant failure to its response. A repeat
// grant of the same achievement is the caller's mistake, not ours.
func grantErrorStatus(err error) (int, string) {
	if errors.Is(err, repository.ErrAlreadyEarned) {
		return http.StatusBadRequest, "achievement already earned"
	}
	return http.StatusInternalServerError, err.Error()
}

// Grant awards an achievement to a user. Staff only. Granting an
// achievement the user already holds is a client error.
func (h *AchievementHandler) Grant(c *gin.Context) {
	var req GrantAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.userRepo.GetByID(req.UserID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	a, err := h.achievementRepo.GetByCode(req.Code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "achievement not found"})
		return
	}
	if err := h.achievementRepo.Grant(req.UserID, a.ID); err != nil {
		status, msg := grantErrorStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	if a.XPReward > 0 {
		if err := h.userRepo.AddXP(req.UserID, a.XPReward); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	_ = h.notifSvc.NotifyAchievement(req.UserID, a)
	c.JSON(http.StatusCreated, gin.H{"success": true, "achievement": a})
}

func (h *AchievementHandler) ListByUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	earned, err := h.achievementRepo.ListByUserID(uint(targetID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": earned})
}
