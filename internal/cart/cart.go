// Package cart holds the session's reward cart and simulates checkout. The
// backend has no redemption endpoint, so redemptions are created locally in
// Pending state and settled after a fixed delay with a weighted coin flip.
package cart

import (
	"math/rand"
	"sync"
	"time"

	"github.com/marcus/rd/internal/models"
)

// SettleDelay is how long a redemption stays Pending before settling.
const SettleDelay = 2 * time.Second

// completeProbability is the chance a redemption settles as Completed.
const completeProbability = 0.8

// Line is one cart entry. The same reward added twice makes two lines; each
// line carries its own id so duplicates stay distinguishable.
type Line struct {
	ID     int
	Reward models.Reward
}

// Cart tracks selected rewards and the session's redemption history.
// Safe for use from bubbletea command goroutines.
type Cart struct {
	mu      sync.Mutex
	rng     *rand.Rand
	nextID  int
	lines   []Line
	history []models.RedemptionRecord
}

// New creates an empty cart. The random source decides settlement outcomes;
// tests pass a seeded rand.
func New(rng *rand.Rand) *Cart {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Cart{rng: rng}
}

// Add appends a line for the reward. Always succeeds.
func (c *Cart) Add(reward models.Reward) Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	line := Line{ID: c.nextID, Reward: reward}
	c.lines = append(c.lines, line)
	return line
}

// Remove drops every line holding the given reward id.
func (c *Cart) Remove(rewardID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.Reward.ID != rewardID {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

// Lines returns a copy of the current cart lines, in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of cart lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Total sums the point cost of the current lines. Recomputed on every call,
// never cached.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lines {
		total += l.Reward.PointsCost
	}
	return total
}

// Checkout converts every cart line into a Pending redemption, appends them
// to the session history, and clears the cart. It returns the ids of the new
// batch; the caller schedules Settle for those ids after SettleDelay.
func (c *Cart) Checkout(now time.Time) []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int, 0, len(c.lines))
	for _, l := range c.lines {
		c.nextID++
		c.history = append(c.history, models.RedemptionRecord{
			ID:         c.nextID,
			Name:       l.Reward.Name,
			PointsCost: l.Reward.PointsCost,
			Date:       now,
			Status:     models.RedemptionPending,
		})
		ids = append(ids, c.nextID)
	}
	c.lines = nil
	return ids
}

// Settle resolves the given redemptions: each Pending record independently
// becomes Completed or Failed. Records that already settled are left alone,
// so a settled status never reverses.
func (c *Cart) Settle(ids []int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	batch := make(map[int]bool, len(ids))
	for _, id := range ids {
		batch[id] = true
	}

	for i := range c.history {
		rec := &c.history[i]
		if !batch[rec.ID] || rec.Status != models.RedemptionPending {
			continue
		}
		if c.rng.Float64() < completeProbability {
			rec.Status = models.RedemptionCompleted
		} else {
			rec.Status = models.RedemptionFailed
		}
	}
}

// History returns a copy of the session's redemption records, oldest first.
// Records are never removed within a session.
func (c *Cart) History() []models.RedemptionRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.RedemptionRecord, len(c.history))
	copy(out, c.history)
	return out
}
