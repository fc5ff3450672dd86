package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gamepal/internal/domain"
	"gamepal/internal/middleware"
	"gamepal/internal/models"
	"gamepal/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CompanionHandler struct {
	repo     *repository.CompanionRepository
	userRepo *repository.UserRepository
}

func NewCompanionHandler(repo *repository.CompanionRepository, userRepo *repository.UserRepository) *CompanionHandler {
	return &CompanionHandler{repo: repo, userRepo: userRepo}
}

type EnableCompanionRequest struct {
	HourlyRate float64  `json:"hourly_rate" binding:"required,gt=0"`
	Languages  []string `json:"languages" binding:"required,min=1"`
}

// Enable turns companion mode on for the caller: creates the companion
// row and switches the user role. Re-enabling reactivates the existing row.
func (h *CompanionHandler) Enable(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	var req EnableCompanionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := h.repo.GetByUserID(userID)
	if err == nil {
		existing.IsActive = true
		existing.HourlyRate = req.HourlyRate
		existing.Languages = pq.StringArray(req.Languages)
		if err := h.repo.Update(existing); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, existing)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	comp := &models.Companion{
		UserID:     userID,
		HourlyRate: req.HourlyRate,
		Languages:  pq.StringArray(req.Languages),
		IsActive:   true,
	}
	if err := h.repo.Create(comp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if u.Role == domain.RoleUser {
		if err := h.userRepo.UpdateRole(userID, domain.RoleCompanion); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusCreated, comp)
}

// Get returns the full companion view for a listing detail page.
func (h *CompanionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	comp, err := h.repo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "companion not found"})
		return
	}
	c.JSON(http.StatusOK, comp)
}

type UpdateCompanionRequest struct {
	HourlyRate      *float64 `json:"hourly_rate"`
	ResponseMinutes *int     `json:"response_minutes"`
	Languages       []string `json:"languages"`
	IsActive        *bool    `json:"is_active"`
}

// Update mutates the caller's own companion profile.
func (h *CompanionHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	comp, err := h.repo.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "companion profile not found"})
		return
	}
	var req UpdateCompanionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hourly_rate must be positive"})
			return
		}
		comp.HourlyRate = *req.HourlyRate
	}
	if req.ResponseMinutes != nil {
		comp.ResponseMinutes = *req.ResponseMinutes
	}
	if req.Languages != nil {
		comp.Languages = pq.StringArray(req.Languages)
	}
	if req.IsActive != nil {
		comp.IsActive = *req.IsActive
	}
	if err := h.repo.Update(comp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comp)
}

type ServiceRequest struct {
	ServiceType string  `json:"service_type" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

func (h *CompanionHandler) AddService(c *gin.Context) {
	userID := middleware.GetUserID(c)
	comp, err := h.repo.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "companion profile not found"})
		return
	}
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.ServiceType = strings.ToUpper(req.ServiceType)
	if !domain.ValidServiceType(req.ServiceType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service_type"})
		return
	}
	s := &models.CompanionService{
		CompanionID: comp.ID,
		ServiceType: req.ServiceType,
		Price:       req.Price,
		IsActive:    true,
	}
	if err := h.repo.AddService(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *CompanionHandler) UpdateService(c *gin.Context) {
	userID := middleware.GetUserID(c)
	comp, err := h.repo.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "companion profile not found"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	s, err := h.repo.GetService(uint(id), comp.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	var req struct {
		Price    *float64 `json:"price"`
		IsActive *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
			return
		}
		s.Price = *req.Price
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
	if err := h.repo.UpdateService(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *CompanionHandler) DeleteService(c *gin.Context) {
	userID := middleware.GetUserID(c)
	comp, err := h.repo.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "companion profile not found"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteService(uint(id), comp.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// maxGamesPerCompanion caps the game list so profiles stay scannable.
const maxGamesPerCompanion = 20

func (h *CompanionHandler) AddGame(c *gin.Context) {
	userID := middleware.GetUserID(c)
	comp, err := h.repo.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "companion profile not found"})
		return
	}
	var req struct {
		GameName string `json:"game_name" binding:"required,min=1,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	count, err := h.repo.CountGames(comp.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count >= maxGamesPerCompanion {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game list limit reached"})
		return
	}
	g := &models.CompanionGame{CompanionID: comp.ID, GameName: strings.TrimSpace(req.GameName)}
	if err := h.repo.AddGame(g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (h *CompanionHandler) DeleteGame(c *gin.Context) {
	userID := middleware.GetUserID(c)
	comp, err := h.repo.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "companion profile not found"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.repo.DeleteGame(uint(id), comp.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
