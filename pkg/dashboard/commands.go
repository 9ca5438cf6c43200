package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/rd/internal/cart"
	"github.com/marcus/rd/internal/models"
	"github.com/marcus/rd/internal/store"
)

// scheduleTick returns a command that sends a TickMsg after the refresh interval
func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.RefreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetchAll kicks off a fetch for every collection. Each store reports back
// independently; a store mid-fetch skips its turn.
func (m Model) fetchAll() tea.Cmd {
	return tea.Batch(
		fetchStore(models.CollectionUsers, m.Stores.Users),
		fetchStore(models.CollectionActivities, m.Stores.Activities),
		fetchStore(models.CollectionRewards, m.Stores.Rewards),
		fetchStore(models.CollectionAdminActions, m.Stores.AdminActions),
	)
}

// fetchStore returns a command that runs one store's fetch cycle
func fetchStore[T any](collection models.Collection, s *store.Store[T]) tea.Cmd {
	return func() tea.Msg {
		s.Fetch(context.Background())
		return StoreFetchedMsg{
			Collection: collection,
			OK:         s.Status() == store.StatusSucceeded,
			Timestamp:  time.Now(),
		}
	}
}

// settleAfter schedules settlement for a checked-out batch
func settleAfter(ids []int) tea.Cmd {
	return tea.Tick(cart.SettleDelay, func(t time.Time) tea.Msg {
		return SettleMsg{IDs: ids}
	})
}

// clearStatusAfter clears the status message after a short delay
func clearStatusAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// submitLogActivity posts or locally appends the activity described by the
// form state
func (m Model) submitLogActivity(fs *LogFormState) tea.Cmd {
	stores := m.Stores
	return func() tea.Msg {
		activity := fs.ToActivity(time.Now())
		if fs.Post {
			_, err := stores.Activities.Create(context.Background(), activity)
			return ActivityLoggedMsg{Description: activity.Description, Posted: true, Err: err}
		}
		stores.Activities.AddLocal(activity)
		return ActivityLoggedMsg{Description: activity.Description, Posted: false}
	}
}
