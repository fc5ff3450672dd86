package handler

import (
	"net/http"
	"strconv"

	"gamepal/internal/middleware"
	"gamepal/internal/models"
	"gamepal/internal/repository"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	repo          *repository.ReviewRepository
	companionRepo *repository.CompanionRepository
}

func NewReviewHandler(repo *repository.ReviewRepository, companionRepo *repository.CompanionRepository) *ReviewHandler {
	return &ReviewHandler{repo: repo, companionRepo: companionRepo}
}

type CreateReviewRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=2000"`
	IsPublic *bool  `json:"is_public"`
}

// Create records a review and refreshes the companion's average rating.
func (h *ReviewHandler) Create(c *gin.Context) {
	reviewerID := middleware.GetUserID(c)
	companionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	comp, err := h.companionRepo.GetByID(uint(companionID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "companion not found"})
		return
	}
	if comp.UserID == reviewerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot review yourself"})
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	already, err := h.repo.HasReviewed(reviewerID, comp.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if already {
		c.JSON(http.StatusBadRequest, gin.H{"error": "you already reviewed this companion"})
		return
	}
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	rev := &models.Review{
		ReviewerID:  reviewerID,
		CompanionID: comp.ID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		IsPublic:    isPublic,
	}
	if err := h.repo.Create(rev); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.companionRepo.RecalcRating(comp.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// List returns public reviews for a companion, newest first.
func (h *ReviewHandler) List(c *gin.Context) {
	companionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.repo.ListByCompanionID(uint(companionID), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": list})
}
