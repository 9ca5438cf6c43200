package dashboard

import (
	"time"

	"github.com/marcus/rd/internal/models"
)

// Panel represents which panel is active
type Panel int

const (
	PanelRewards Panel = iota
	PanelUsers
	PanelActivity
)

// Minimum dimensions for the dashboard
const (
	MinWidth  = 40
	MinHeight = 15
)

// leaderboardSize is how many top earners the users panel shows
const leaderboardSize = 5

// TickMsg triggers a data refresh
type TickMsg time.Time

// StoreFetchedMsg reports that a store finished a fetch cycle. The store
// itself already holds the outcome; the message only tells the model to
// re-read and re-render.
type StoreFetchedMsg struct {
	Collection models.Collection
	OK         bool
	Timestamp  time.Time
}

// SettleMsg resolves a batch of pending redemptions
type SettleMsg struct {
	IDs []int
}

// MarkdownRenderedMsg carries a pre-rendered reward description for the
// detail modal
type MarkdownRenderedMsg struct {
	RewardID int
	Render   string
}

// ClearStatusMsg clears the status message
type ClearStatusMsg struct{}

// ActivityLoggedMsg reports the outcome of posting a logged activity
type ActivityLoggedMsg struct {
	Description string
	Posted      bool
	Err         error
}
