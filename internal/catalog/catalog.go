// Package catalog filters and orders the reward catalog for display.
package catalog

import (
	"sort"
	"strings"

	"github.com/marcus/rd/internal/models"
)

// SortMode orders the reward catalog
type SortMode string

const (
	SortPointsAsc  SortMode = "points-asc"
	SortPointsDesc SortMode = "points-desc"
	SortName       SortMode = "name"
)

// IsValidSortMode checks if a sort mode is valid
func IsValidSortMode(s SortMode) bool {
	switch s {
	case SortPointsAsc, SortPointsDesc, SortName:
		return true
	}
	return false
}

// Filter narrows rewards by category and case-insensitive name search, then
// orders them. An empty category means all categories; an empty search
// matches everything. The input slice is not modified.
func Filter(rewards []models.Reward, category models.Category, search string, mode SortMode) []models.Reward {
	search = strings.ToLower(search)

	out := make([]models.Reward, 0, len(rewards))
	for _, r := range rewards {
		if category != "" && r.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(r.Name), search) {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch mode {
		case SortPointsDesc:
			return out[i].PointsCost > out[j].PointsCost
		case SortName:
			return out[i].Name < out[j].Name
		default: // SortPointsAsc
			return out[i].PointsCost < out[j].PointsCost
		}
	})

	return out
}

// FilterUsers narrows users by case-insensitive name search and exact role.
// Empty arguments match everything.
func FilterUsers(users []models.User, search string, role models.Role) []models.User {
	search = strings.ToLower(search)

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if search != "" && !strings.Contains(strings.ToLower(u.Name), search) {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, u)
	}
	return out
}
