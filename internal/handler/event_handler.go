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
	"github.com/go-playground/validator/v10"
)

type EventHandler struct {
	eventRepo *repository.EventRepository
	userRepo  *repository.UserRepository
	notifSvc  *service.NotificationService
	validate  *validator.Validate
}

func NewEventHandler(eventRepo *repository.EventRepository, userRepo *repository.UserRepository, notifSvc *service.NotificationService) *EventHandler {
	return &EventHandler{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifSvc:  notifSvc,
		validate:  validator.New(),
	}
}

func (h *EventHandler) List(c *gin.Context) {
	kind := c.DefaultQuery("type", "upcoming")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	list, err := h.eventRepo.List(kind, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": list})
}

func (h *EventHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	e, err := h.eventRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	count, err := h.eventRepo.CountParticipants(e.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": e, "participant_count": count})
}

type CreateEventRequest struct {
	Title           string     `json:"title" validate:"required,min=3,max=255"`
	Description     string     `json:"description" validate:"max=5000"`
	Game            string     `json:"game" validate:"max=100"`
	StartDate       time.Time  `json:"start_date" validate:"required"`
	EndDate         *time.Time `json:"end_date"`
	MaxParticipants int        `json:"max_participants" validate:"gte=0,lte=10000"`
	ImageURL        string     `json:"image_url" validate:"omitempty,url"`
}

func (h *EventHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.StartDate.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start date must be in the future"})
		return
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end date must be after start date"})
		return
	}
	e := &models.Event{
		CreatorID:       userID,
		Title:           req.Title,
		Description:     req.Description,
		Game:            req.Game,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		MaxParticipants: req.MaxParticipants,
		ImageURL:        req.ImageURL,
	}
	if err := h.eventRepo.Create(e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EventHandler) Join(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	e, err := h.eventRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	if err := h.eventRepo.Join(e.ID, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrEventFull):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrAlreadyJoined):
			c.JSON(http.StatusBadRequest, gin.H{"error": "already joined this event"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	if e.CreatorID != userID {
		if u, err := h.userRepo.GetByID(userID); err == nil {
			_ = h.notifSvc.NotifyEventJoin(e.CreatorID, e.ID, u.DisplayName(), e.Title)
		}
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *EventHandler) Leave(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.eventRepo.Leave(uint(id), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
