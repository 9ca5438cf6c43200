package dashboard

import (
	"fmt"
	"sort"

	"github.com/marcus/rd/internal/catalog"
	"github.com/marcus/rd/internal/models"
	"github.com/marcus/rd/internal/points"
)

// categoryCycle is the order the f key cycles category filters. The empty
// entry means no filter.
var categoryCycle = []models.Category{
	"",
	models.CategoryElectronics,
	models.CategoryGiftCards,
	models.CategoryMerchandise,
}

// sortCycle is the order the s key cycles reward sort modes
var sortCycle = []catalog.SortMode{
	catalog.SortPointsAsc,
	catalog.SortPointsDesc,
	catalog.SortName,
}

// visibleRewards returns the catalog narrowed by the current filter, search,
// and sort settings.
func (m Model) visibleRewards() []models.Reward {
	return catalog.Filter(m.Stores.Rewards.Items(), m.category(), m.SearchQuery, m.Sort)
}

// category returns the active category filter, or "" for all
func (m Model) category() models.Category {
	return categoryCycle[m.CategoryIdx%len(categoryCycle)]
}

// leaderboard returns the top earners for the users panel
func (m Model) leaderboard() []models.User {
	return points.Leaderboard(m.Stores.Users.Items(), leaderboardSize)
}

// userName resolves a user id to a display name, falling back to the id
func (m Model) userName(id int) string {
	for _, u := range m.Stores.Users.Items() {
		if u.ID == id {
			return u.Name
		}
	}
	return fmt.Sprintf("User %d", id)
}

// userHistory merges the selected user's activities and admin adjustments
func (m Model) userHistory(userID int) []points.Entry {
	return points.History(userID, m.Stores.Activities.Items(), m.Stores.AdminActions.Items())
}

// activityFeed returns all activities newest first
func (m Model) activityFeed() []models.Activity {
	items := m.Stores.Activities.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items
}

// plusPrefix formats a signed point delta with an explicit plus sign
func plusPrefix(points int) string {
	if points >= 0 {
		return fmt.Sprintf("+%d", points)
	}
	return fmt.Sprintf("%d", points)
}
