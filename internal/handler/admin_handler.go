package handler

import (
	"net/http"
	"strconv"

	"gamepal/internal/domain"
	"gamepal/internal/middleware"
	"gamepal/internal/repository"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminRepo *repository.AdminRepository
	userRepo  *repository.UserRepository
}

func NewAdminHandler(adminRepo *repository.AdminRepository, userRepo *repository.UserRepository) *AdminHandler {
	return &AdminHandler{adminRepo: adminRepo, userRepo: userRepo}
}

// canAssignRole reports whether a caller with callerRole may assign
// newRole to another user. Moderators can only manage the USER and
// COMPANION tiers; admins can assign anything.
func canAssignRole(callerRole, newRole string) bool {
	switch callerRole {
	case domain.RoleAdmin:
		return true
	case domain.RoleModerator:
		return newRole == domain.RoleUser || newRole == domain.RoleCompanion
	}
	return false
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	search := c.Query("search")
	role := c.Query("role")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	users, total, err := h.adminRepo.ListUsers(search, role, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total_count": total})
}

type UpdateRoleRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

func (h *AdminHandler) UpdateRole(c *gin.Context) {
	callerRole := middleware.GetRole(c)
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}
	if !canAssignRole(callerRole, req.Role) {
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient privileges for this role"})
		return
	}
	if _, err := h.userRepo.GetByID(req.UserID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err := h.userRepo.UpdateRole(req.UserID, req.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminRepo.GetDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
