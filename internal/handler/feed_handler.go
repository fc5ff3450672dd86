package handler

import (
	"net/http"
	"strconv"

	"gamepal/internal/middleware"
	"gamepal/internal/models"
	"gamepal/internal/repository"
	"gamepal/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	postRepo    *repository.PostRepository
	commentRepo *repository.CommentRepository
	likeRepo    *repository.LikeRepository
	followRepo  *repository.FollowRepository
	userRepo    *repository.UserRepository
	notifSvc    *service.NotificationService
}

func NewFeedHandler(
	postRepo *repository.PostRepository,
	commentRepo *repository.CommentRepository,
	likeRepo *repository.LikeRepository,
	followRepo *repository.FollowRepository,
	userRepo *repository.UserRepository,
	notifSvc *service.NotificationService,
) *FeedHandler {
	return &FeedHandler{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		followRepo:  followRepo,
		userRepo:    userRepo,
		notifSvc:    notifSvc,
	}
}

func (h *FeedHandler) ListFeed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	posts, err := h.postRepo.ListFeed(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=2000"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

func (h *FeedHandler) CreatePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p := &models.Post{UserID: userID, Content: req.Content, ImageURL: req.ImageURL}
	if err := h.postRepo.Create(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *FeedHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.postRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *FeedHandler) DeletePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.postRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if p.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your post"})
		return
	}
	if err := h.postRepo.Delete(uint(id), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

func (h *FeedHandler) CreateComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.postRepo.GetByID(uint(postID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cm := &models.Comment{PostID: p.ID, UserID: userID, Content: req.Content}
	if err := h.commentRepo.Create(cm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.postRepo.IncrementComments(p.ID, 1); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if p.UserID != userID {
		if u, err := h.userRepo.GetByID(userID); err == nil {
			_ = h.notifSvc.NotifyComment(p.UserID, p.ID, u.DisplayName())
		}
	}
	c.JSON(http.StatusCreated, cm)
}

func (h *FeedHandler) ListComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.commentRepo.ListByPostID(uint(postID), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": list})
}

func (h *FeedHandler) DeleteComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	cm, err := h.commentRepo.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}
	if cm.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your comment"})
		return
	}
	if err := h.commentRepo.Delete(cm.ID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.postRepo.IncrementComments(cm.PostID, -1); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *FeedHandler) LikePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := h.postRepo.GetByID(uint(postID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	created, err := h.likeRepo.Add(p.ID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"success": true, "liked": true})
		return
	}
	if err := h.postRepo.IncrementLikes(p.ID, 1); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if p.UserID != userID {
		if u, err := h.userRepo.GetByID(userID); err == nil {
			_ = h.notifSvc.NotifyLike(p.UserID, p.ID, u.DisplayName())
		}
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "liked": true})
}

func (h *FeedHandler) UnlikePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	removed, err := h.likeRepo.Remove(uint(postID), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if removed {
		if err := h.postRepo.IncrementLikes(uint(postID), -1); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "liked": false})
}

func (h *FeedHandler) Follow(c *gin.Context) {
	userID := middleware.GetUserID(c)
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if uint(targetID) == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot follow yourself"})
		return
	}
	target, err := h.userRepo.GetByID(uint(targetID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	created, err := h.followRepo.Follow(userID, target.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if created {
		if u, err := h.userRepo.GetByID(userID); err == nil {
			_ = h.notifSvc.NotifyFollow(target.ID, userID, u.DisplayName())
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "following": true})
}

func (h *FeedHandler) Unfollow(c *gin.Context) {
	userID := middleware.GetUserID(c)
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.followRepo.Unfollow(userID, uint(targetID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "following": false})
}
