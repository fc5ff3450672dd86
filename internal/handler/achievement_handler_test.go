package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"gamepal/internal/models"
	"gamepal/internal/repository"
)

func TestBuildCatalogEntries(t *testing.T) {
	when := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	catalog := []models.Achievement{
		{ID: 1, Code: "FIRST_POST", Name: "First Post", XPReward: 100},
		{ID: 2, Code: "RISING_STAR", Name: "Rising Star", XPReward: 500},
	}
	earned := []models.UserAchievement{
		{UserID: 7, AchievementID: 1, EarnedAt: when},
	}

	entries := buildCatalogEntries(catalog, earned)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !entries[0].Earned {
		t.Error("FIRST_POST should be marked earned")
	}
	if entries[0].EarnedAt != "2026-03-14T09:30:00Z" {
		t.Errorf("EarnedAt = %q, want grant time in RFC3339", entries[0].EarnedAt)
	}
	if entries[1].Earned {
		t.Error("RISING_STAR should not be marked earned")
	}
	if entries[1].EarnedAt != "" {
		t.Errorf("unearned EarnedAt = %q, want empty", entries[1].EarnedAt)
	}
}

func TestBuildCatalogEntriesNothingEarned(t *testing.T) {
	catalog := []models.Achievement{{ID: 1, Code: "FIRST_POST"}}
	entries := buildCatalogEntries(catalog, nil)
	if len(entries) != 1 || entries[0].Earned {
		t.Fatalf("entries = %+v, want one unearned entry", entries)
	}
}

func TestGrantErrorStatus(t *testing.T) {
	status, msg := grantErrorStatus(repository.ErrAlreadyEarned)
	if status != http.StatusBadRequest {
		t.Errorf("duplicate grant status = %d, want 400", status)
	}
	if msg != "achievement already earned" {
		t.Errorf("duplicate grant message = %q", msg)
	}

	wrapped := fmt.Errorf("grant: %w", repository.ErrAlreadyEarned)
	if status, _ := grantErrorStatus(wrapped); status != http.StatusBadRequest {
		t.Errorf("wrapped duplicate grant status = %d, want 400", status)
	}

	status, msg = grantErrorStatus(errors.New("connection reset"))
	if status != http.StatusInternalServerError {
		t.Errorf("store failure status = %d, want 500", status)
	}
	if msg != "connection reset" {
		t.Errorf("store failure message = %q", msg)
	}
}
