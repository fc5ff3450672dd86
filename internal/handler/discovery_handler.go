package handler

import (
	"net/http"
	"strconv"
	"strings"

	"gamepal/internal/repository"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct {
	repo *repository.DiscoveryRepository
}

func NewDiscoveryHandler(repo *repository.DiscoveryRepository) *DiscoveryHandler {
	return &DiscoveryHandler{repo: repo}
}

// List returns the companion listing page for the supplied filters.
// total_count reflects the base query before the game/service
// post-filters narrow the page.
func (h *DiscoveryHandler) List(c *gin.Context) {
	var minPrice, maxPrice, minRating *float64
	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
			return
		}
		minPrice = &p
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
			return
		}
		maxPrice = &p
	}
	if v := c.Query("min_rating"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 || r > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_rating"})
			return
		}
		minRating = &r
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}

	f := repository.DiscoveryFilters{
		GameFilter:    strings.TrimSpace(c.Query("game")),
		ServiceFilter: strings.ToUpper(strings.TrimSpace(c.Query("service"))),
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		MinRating:     minRating,
		Language:      strings.TrimSpace(c.Query("language")),
		SortBy:        c.DefaultQuery("sort", "rating"),
		Limit:         limit,
		Offset:        offset,
	}
	views, total, err := h.repo.Discover(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load companions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"companions":  views,
		"total_count": total,
	})
}
