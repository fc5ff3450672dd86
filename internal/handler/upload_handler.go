package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"gamepal/config"
	"gamepal/internal/middleware"
	"gamepal/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10 MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	storage config.StorageConfig
	client  cloudinary.Client
}

func NewUploadHandler(storage config.StorageConfig, client cloudinary.Client) *UploadHandler {
	return &UploadHandler{storage: storage, client: client}
}

// UploadImage accepts a multipart image and stores it under the caller's
// folder. Missing storage credentials surface here, not at startup.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if !h.storage.Configured() || h.client == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image storage is not configured"})
		return
	}
	userID := middleware.GetUserID(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds 10MB limit"})
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	folder := fmt.Sprintf("gamepal/users/%d", userID)
	publicID := uuid.New().String()
	url, thumbURL, err := h.client.UploadImage(c.Request.Context(), file, folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url":           url,
		"thumbnail_url": thumbURL,
		"public_id":     publicID,
	})
}
