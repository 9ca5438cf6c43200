// Package points derives per-user views from the fetched collections: the
// point-history ledger and the leaderboard. Everything here is a pure
// function over snapshots, safe to call on every render.
package points

import (
	"sort"
	"time"

	"github.com/marcus/rd/internal/models"
)

// Entry is one line of a user's point history, mapped from either an
// activity or an admin adjustment.
type Entry struct {
	Points    int
	Kind      string
	Timestamp time.Time
}

// History merges a user's activities with the admin actions that changed
// their balance, newest first. Admin actions without a points delta are
// bookkeeping only and are excluded. Ties keep input order, activities
// before admin actions.
func History(userID int, activities []models.Activity, adminActions []models.AdminAction) []Entry {
	entries := make([]Entry, 0, len(activities)+len(adminActions))

	for _, a := range activities {
		if a.UserID != userID {
			continue
		}
		entries = append(entries, Entry{
			Points:    a.Points,
			Kind:      a.Description,
			Timestamp: a.Timestamp,
		})
	}

	for _, act := range adminActions {
		if act.UserID != userID || act.PointsChanged == nil {
			continue
		}
		entries = append(entries, Entry{
			Points:    *act.PointsChanged,
			Kind:      act.Action,
			Timestamp: act.Timestamp,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries
}

// Leaderboard returns the top n users by points, descending. Ties keep the
// snapshot's order. The input slice is not modified.
func Leaderboard(users []models.User, n int) []models.User {
	ranked := make([]models.User, len(users))
	copy(ranked, users)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Points > ranked[j].Points
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
