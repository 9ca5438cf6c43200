package points

import (
	"testing"
	"time"

	"github.com/marcus/rd/internal/models"
)

func intPtr(n int) *int { return &n }

func TestHistoryMergesAndSortsNewestFirst(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)

	activities := []models.Activity{
		{ID: 1, UserID: 7, Description: "Task Completion", Points: 10, Timestamp: t1},
		{ID: 2, UserID: 7, Description: "Content Creation", Points: 20, Timestamp: t3},
	}
	adminActions := []models.AdminAction{
		{ID: 1, UserID: 7, Action: "Bonus adjustment", PointsChanged: intPtr(-5), Timestamp: t2},
	}

	entries := History(7, activities, adminActions)

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	wantOrder := []time.Time{t3, t2, t1}
	for i, want := range wantOrder {
		if !entries[i].Timestamp.Equal(want) {
			t.Errorf("entry %d: got %v, want %v", i, entries[i].Timestamp, want)
		}
	}
	if entries[1].Points != -5 || entries[1].Kind != "Bonus adjustment" {
		t.Errorf("admin entry mapped wrong: %+v", entries[1])
	}
}

func TestHistoryFiltersOtherUsers(t *testing.T) {
	now := time.Now()
	activities := []models.Activity{
		{ID: 1, UserID: 1, Points: 10, Timestamp: now},
		{ID: 2, UserID: 2, Points: 20, Timestamp: now},
	}
	adminActions := []models.AdminAction{
		{ID: 1, UserID: 2, PointsChanged: intPtr(5), Timestamp: now},
	}

	entries := History(1, activities, adminActions)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Points != 10 {
		t.Errorf("got %d points, want 10", entries[0].Points)
	}
}

func TestHistoryExcludesNilPointsChanged(t *testing.T) {
	now := time.Now()
	adminActions := []models.AdminAction{
		{ID: 1, UserID: 1, Action: "Role change", PointsChanged: nil, Timestamp: now},
		{ID: 2, UserID: 1, Action: "Penalty", PointsChanged: intPtr(-10), Timestamp: now},
	}

	entries := History(1, nil, adminActions)
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Kind != "Penalty" {
		t.Errorf("got %q, want Penalty", entries[0].Kind)
	}
}

func TestHistoryTieKeepsActivitiesFirst(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		{ID: 1, UserID: 1, Description: "activity", Points: 10, Timestamp: ts},
	}
	adminActions := []models.AdminAction{
		{ID: 1, UserID: 1, Action: "adjustment", PointsChanged: intPtr(5), Timestamp: ts},
	}

	entries := History(1, activities, adminActions)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Kind != "activity" || entries[1].Kind != "adjustment" {
		t.Errorf("tie order wrong: %q then %q", entries[0].Kind, entries[1].Kind)
	}
}

func TestHistoryEmpty(t *testing.T) {
	if entries := History(1, nil, nil); len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestLeaderboardTopN(t *testing.T) {
	users := []models.User{
		{ID: 1, Name: "A", Points: 50},
		{ID: 2, Name: "B", Points: 300},
		{ID: 3, Name: "C", Points: 100},
		{ID: 4, Name: "D", Points: 200},
		{ID: 5, Name: "E", Points: 10},
		{ID: 6, Name: "F", Points: 250},
	}

	top := Leaderboard(users, 5)
	if len(top) != 5 {
		t.Fatalf("got %d users, want 5", len(top))
	}
	wantIDs := []int{2, 6, 4, 3, 1}
	for i, want := range wantIDs {
		if top[i].ID != want {
			t.Errorf("rank %d: got user %d, want %d", i, top[i].ID, want)
		}
	}

	// Input order untouched
	if users[0].ID != 1 {
		t.Error("Leaderboard mutated its input")
	}
}

func TestLeaderboardTiesKeepSnapshotOrder(t *testing.T) {
	users := []models.User{
		{ID: 1, Points: 100},
		{ID: 2, Points: 100},
		{ID: 3, Points: 100},
	}
	top := Leaderboard(users, 5)
	for i, want := range []int{1, 2, 3} {
		if top[i].ID != want {
			t.Errorf("rank %d: got user %d, want %d", i, top[i].ID, want)
		}
	}
}

func TestLeaderboardFewerThanN(t *testing.T) {
	users := []models.User{{ID: 1, Points: 1}, {ID: 2, Points: 2}}
	if top := Leaderboard(users, 5); len(top) != 2 {
		t.Errorf("got %d users, want 2", len(top))
	}
}
