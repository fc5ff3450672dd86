package repository

import (
	"context"
	"strings"
	"time"

	"gamepal/internal/domain"
	"gamepal/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DiscoveryFilters narrows the companion listing. Price, rating and
// language are pushed into SQL; game and service matching depend on
// child rows and run in memory after assembly.
type DiscoveryFilters struct {
	GameFilter    string
	ServiceFilter string
	MinPrice      *float64
	MaxPrice      *float64
	MinRating     *float64
	Language      string
	SortBy        string // rating | price | sessions | recent
	Limit         int
	Offset        int
}

// ReviewView is a public review with reviewer identity.
type ReviewView struct {
	ID             uint      `json:"id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	ReviewerID     uint      `json:"reviewer_id"`
	ReviewerName   string    `json:"reviewer_name"`
	ReviewerAvatar string    `json:"reviewer_avatar"`
	CreatedAt      time.Time `json:"created_at"`
}

// CompanionView is the denormalized listing entry: base companion row
// merged with owner identity, services, games and recent reviews.
type CompanionView struct {
	ID              uint                      `json:"id"`
	UserID          uint                      `json:"user_id"`
	Name            string                    `json:"name"`
	Username        string                    `json:"username"`
	AvatarURL       string                    `json:"avatar_url"`
	Bio             string                    `json:"bio"`
	HourlyRate      float64                   `json:"hourly_rate"`
	AverageRating   float64                   `json:"average_rating"`
	TotalSessions   int                       `json:"total_sessions"`
	ResponseMinutes int                       `json:"response_minutes"`
	Languages       []string                  `json:"languages"`
	IsVerified      bool                      `json:"is_verified"`
	CreatedAt       time.Time                 `json:"created_at"`
	Services        []models.CompanionService `json:"services"`
	Games           []models.CompanionGame    `json:"games"`
	RecentReviews   []ReviewView              `json:"recent_reviews"`
}

type DiscoveryRepository struct {
	db *gorm.DB
}

func NewDiscoveryRepository(db *gorm.DB) *DiscoveryRepository {
	return &DiscoveryRepository{db: db}
}

// applyFilters adds the server-side-expressible predicates to q.
func applyFilters(q *gorm.DB, f DiscoveryFilters) *gorm.DB {
	q = q.Where("is_active = ? AND is_verified = ?", true, true)
	if f.MinPrice != nil {
		q = q.Where("hourly_rate >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("hourly_rate <= ?", *f.MaxPrice)
	}
	if f.MinRating != nil {
		q = q.Where("average_rating >= ?", *f.MinRating)
	}
	if f.Language != "" {
		q = q.Where("? = ANY(languages)", f.Language)
	}
	return q
}

// orderClause maps the sort key to exactly one ORDER BY expression.
func orderClause(sortBy string) string {
	switch sortBy {
	case domain.SortByPrice:
		return "hourly_rate ASC"
	case domain.SortBySessions:
		return "total_sessions DESC"
	case domain.SortByRecent:
		return "created_at DESC"
	case domain.SortByRating:
		fallthrough
	default:
		return "average_rating DESC"
	}
}

// Discover runs the base query, fans out per-row lookups for services,
// games and recent reviews, assembles one view per companion, and
// applies the game/service post-filters. The returned count is taken
// from the base query before post-filtering. Any lookup error aborts
// the whole operation; partial results are never returned.
func (r *DiscoveryRepository) Discover(ctx context.Context, f DiscoveryFilters) ([]CompanionView, int64, error) {
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 50 {
		f.Limit = 50
	}

	var total int64
	countQ := applyFilters(r.db.WithContext(ctx).Model(&models.Companion{}), f)
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companions []models.Companion
	pageQ := applyFilters(r.db.WithContext(ctx).Preload("User"), f).
		Order(orderClause(f.SortBy)).
		Limit(f.Limit).
		Offset(f.Offset)
	if err := pageQ.Find(&companions).Error; err != nil {
		return nil, 0, err
	}

	views := make([]CompanionView, len(companions))
	g, gctx := errgroup.WithContext(ctx)
	for i := range companions {
		i := i
		g.Go(func() error {
			comp := companions[i]

			var services []models.CompanionService
			if err := r.db.WithContext(gctx).
				Where("companion_id = ? AND is_active = ?", comp.ID, true).
				Find(&services).Error; err != nil {
				return err
			}

			gamesQ := r.db.WithContext(gctx).Where("companion_id = ?", comp.ID)
			if f.GameFilter != "" {
				gamesQ = gamesQ.Where("game_name ILIKE ?", "%"+f.GameFilter+"%")
			} else {
				gamesQ = gamesQ.Limit(5)
			}
			var games []models.CompanionGame
			if err := gamesQ.Find(&games).Error; err != nil {
				return err
			}

			var reviews []models.Review
			if err := r.db.WithContext(gctx).
				Where("companion_id = ? AND is_public = ?", comp.ID, true).
				Order("created_at DESC").
				Limit(3).
				Preload("Reviewer").
				Find(&reviews).Error; err != nil {
				return err
			}

			views[i] = assembleView(comp, services, games, reviews)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	out := make([]CompanionView, 0, len(views))
	for _, v := range views {
		if f.GameFilter != "" && !matchesGameFilter(v.Games, f.GameFilter) {
			continue
		}
		if f.ServiceFilter != "" && !matchesServiceFilter(v.Services, f.ServiceFilter) {
			continue
		}
		out = append(out, v)
	}
	return out, total, nil
}

func assembleView(comp models.Companion, services []models.CompanionService, games []models.CompanionGame, reviews []models.Review) CompanionView {
	rv := make([]ReviewView, 0, len(reviews))
	for _, rev := range reviews {
		rv = append(rv, ReviewView{
			ID:             rev.ID,
			Rating:         rev.Rating,
			Comment:        rev.Comment,
			ReviewerID:     rev.ReviewerID,
			ReviewerName:   rev.Reviewer.DisplayName(),
			ReviewerAvatar: rev.Reviewer.AvatarURL,
			CreatedAt:      rev.CreatedAt,
		})
	}
	if services == nil {
		services = []models.CompanionService{}
	}
	if games == nil {
		games = []models.CompanionGame{}
	}
	return CompanionView{
		ID:              comp.ID,
		UserID:          comp.UserID,
		Name:            comp.User.Name,
		Username:        comp.User.Username,
		AvatarURL:       comp.User.AvatarURL,
		Bio:             comp.User.Bio,
		HourlyRate:      comp.HourlyRate,
		AverageRating:   comp.AverageRating,
		TotalSessions:   comp.TotalSessions,
		ResponseMinutes: comp.ResponseMinutes,
		Languages:       comp.Languages,
		IsVerified:      comp.IsVerified,
		CreatedAt:       comp.CreatedAt,
		Services:        services,
		Games:           games,
		RecentReviews:   rv,
	}
}

// matchesGameFilter reports whether any game name contains filter
// case-insensitively.
func matchesGameFilter(games []models.CompanionGame, filter string) bool {
	needle := strings.ToLower(filter)
	for _, g := range games {
		if strings.Contains(strings.ToLower(g.GameName), needle) {
			return true
		}
	}
	return false
}

// matchesServiceFilter reports whether any service has the given type.
func matchesServiceFilter(services []models.CompanionService, serviceType string) bool {
	for _, s := range services {
		if s.ServiceType == serviceType {
			return true
		}
	}
	return false
}
