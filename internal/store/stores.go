package store

import (
	"github.com/marcus/rd/internal/apiclient"
	"github.com/marcus/rd/internal/models"
)

// Stores bundles the per-collection stores for one session, all backed by the
// same API client. Rewards and admin actions are read-only from this client;
// admin editing goes through the raw collection client directly.
type Stores struct {
	Users        *Store[models.User]
	Activities   *Store[models.Activity]
	Rewards      *Store[models.Reward]
	AdminActions *Store[models.AdminAction]
}

// NewStores wires the four collection stores to a client.
func NewStores(c *apiclient.Client) *Stores {
	return &Stores{
		Users: New("users", Ops[models.User]{
			List:   c.ListUsers,
			Create: c.CreateUser,
			Update: c.UpdateUser,
			Delete: c.DeleteUser,
		}, func(u models.User) int { return u.ID }),

		Activities: New("activities", Ops[models.Activity]{
			List:   c.ListActivities,
			Create: c.CreateActivity,
			Update: c.UpdateActivity,
			Delete: c.DeleteActivity,
		}, func(a models.Activity) int { return a.ID }),

		Rewards: New("rewards", Ops[models.Reward]{
			List: c.ListRewards,
		}, func(r models.Reward) int { return r.ID }),

		AdminActions: New("adminActions", Ops[models.AdminAction]{
			List: c.ListAdminActions,
		}, func(a models.AdminAction) int { return a.ID }),
	}
}
