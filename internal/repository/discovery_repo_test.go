package repository

import (
	"testing"

	"gamepal/internal/models"
)

func TestOrderClause(t *testing.T) {
	cases := map[string]string{
		"rating":   "average_rating DESC",
		"price":    "hourly_rate ASC",
		"sessions": "total_sessions DESC",
		"recent":   "created_at DESC",
		"":         "average_rating DESC",
		"bogus":    "average_rating DESC",
	}
	for in, want := range cases {
		if got := orderClause(in); got != want {
			t.Errorf("orderClause(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchesGameFilter(t *testing.T) {
	games := []models.CompanionGame{
		{GameName: "League of Legends"},
		{GameName: "Valorant"},
	}
	if !matchesGameFilter(games, "valo") {
		t.Error("substring match should hit Valorant")
	}
	if !matchesGameFilter(games, "LEAGUE") {
		t.Error("match must be case-insensitive")
	}
	if matchesGameFilter(games, "dota") {
		t.Error("no game contains dota")
	}
	if matchesGameFilter(nil, "anything") {
		t.Error("empty games collection never matches")
	}
}

func TestMatchesServiceFilter(t *testing.T) {
	services := []models.CompanionService{
		{ServiceType: "GAMING"},
		{ServiceType: "COACHING"},
	}
	if !matchesServiceFilter(services, "COACHING") {
		t.Error("exact type should match")
	}
	if matchesServiceFilter(services, "STREAMING") {
		t.Error("absent type should not match")
	}
	if matchesServiceFilter(services, "gaming") {
		t.Error("service type match is exact, not case-folded")
	}
}

func TestAssembleViewDefaults(t *testing.T) {
	comp := models.Companion{
		ID:         7,
		UserID:     3,
		HourlyRate: 25,
		User:       models.User{Name: "Ada", Username: "ada", AvatarURL: "a.png"},
	}
	v := assembleView(comp, nil, nil, nil)
	if v.ID != 7 || v.UserID != 3 {
		t.Errorf("base fields not carried: %+v", v)
	}
	if v.Name != "Ada" || v.Username != "ada" {
		t.Errorf("owner identity not merged: %+v", v)
	}
	if v.Services == nil || v.Games == nil || v.RecentReviews == nil {
		t.Error("nested collections must be non-nil for JSON output")
	}
}

func TestAssembleViewReviewerFallback(t *testing.T) {
	comp := models.Companion{ID: 1, User: models.User{Username: "x"}}
	reviews := []models.Review{
		{ID: 9, Rating: 5, Comment: "great", ReviewerID: 2, Reviewer: models.User{Username: "bob"}},
	}
	v := assembleView(comp, nil, nil, reviews)
	if len(v.RecentReviews) != 1 {
		t.Fatalf("got %d reviews", len(v.RecentReviews))
	}
	if v.RecentReviews[0].ReviewerName != "bob" {
		t.Errorf("reviewer name = %q, want username fallback", v.RecentReviews[0].ReviewerName)
	}
}
