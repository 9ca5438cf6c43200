package cart

import (
	"math/rand"
	"testing"
	"time"

	"github.com/marcus/rd/internal/models"
)

var (
	headphones = models.Reward{ID: 1, Name: "Wireless Headphones", Category: models.CategoryElectronics, PointsCost: 500}
	giftcard   = models.Reward{ID: 2, Name: "Coffee Gift Card", Category: models.CategoryGiftCards, PointsCost: 150}
	tshirt     = models.Reward{ID: 3, Name: "Logo T-Shirt", Category: models.CategoryMerchandise, PointsCost: 200}
)

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestAddAndTotal(t *testing.T) {
	c := New(seeded(1))

	c.Add(headphones)
	c.Add(giftcard)
	if got := c.Total(); got != 650 {
		t.Errorf("total: got %d, want 650", got)
	}

	// Duplicates are separate lines and both count
	c.Add(giftcard)
	if got := c.Total(); got != 800 {
		t.Errorf("total with duplicate: got %d, want 800", got)
	}
	if got := c.Len(); got != 3 {
		t.Errorf("len: got %d, want 3", got)
	}

	lines := c.Lines()
	if lines[1].ID == lines[2].ID {
		t.Error("duplicate lines share an id")
	}
}

func TestRemoveDropsAllLinesForReward(t *testing.T) {
	c := New(seeded(1))
	c.Add(headphones)
	c.Add(giftcard)
	c.Add(giftcard)

	c.Remove(giftcard.ID)

	if got := c.Len(); got != 1 {
		t.Fatalf("len after remove: got %d, want 1", got)
	}
	if got := c.Lines()[0].Reward.ID; got != headphones.ID {
		t.Errorf("remaining line: got reward %d, want %d", got, headphones.ID)
	}
	if got := c.Total(); got != 500 {
		t.Errorf("total after remove: got %d, want 500", got)
	}
}

func TestRemoveUnknownRewardIsNoOp(t *testing.T) {
	c := New(seeded(1))
	c.Add(headphones)
	c.Remove(42)
	if got := c.Len(); got != 1 {
		t.Errorf("len: got %d, want 1", got)
	}
}

func TestCheckoutCreatesPendingBatchAndClearsCart(t *testing.T) {
	c := New(seeded(1))
	c.Add(headphones)
	c.Add(tshirt)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ids := c.Checkout(now)

	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2", len(ids))
	}
	if c.Len() != 0 {
		t.Errorf("cart not cleared: %d lines", c.Len())
	}
	if c.Total() != 0 {
		t.Errorf("total after checkout: got %d, want 0", c.Total())
	}

	history := c.History()
	if len(history) != 2 {
		t.Fatalf("got %d records, want 2", len(history))
	}
	for _, rec := range history {
		if rec.Status != models.RedemptionPending {
			t.Errorf("record %d: got status %v, want Pending", rec.ID, rec.Status)
		}
		if !rec.Date.Equal(now) {
			t.Errorf("record %d: got date %v, want %v", rec.ID, rec.Date, now)
		}
	}
	if history[0].Name != headphones.Name || history[1].Name != tshirt.Name {
		t.Errorf("record order wrong: %q, %q", history[0].Name, history[1].Name)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	c := New(seeded(1))
	if ids := c.Checkout(time.Now()); len(ids) != 0 {
		t.Errorf("got %d ids, want 0", len(ids))
	}
	if len(c.History()) != 0 {
		t.Error("empty checkout created history records")
	}
}

func TestSettleResolvesEveryPendingRecord(t *testing.T) {
	c := New(seeded(7))
	for i := 0; i < 50; i++ {
		c.Add(giftcard)
	}
	ids := c.Checkout(time.Now())
	c.Settle(ids)

	completed, failed := 0, 0
	for _, rec := range c.History() {
		switch rec.Status {
		case models.RedemptionCompleted:
			completed++
		case models.RedemptionFailed:
			failed++
		default:
			t.Errorf("record %d still %v after settle", rec.ID, rec.Status)
		}
	}

	// With p=0.8 over 50 trials both outcomes occur for any reasonable seed
	if completed == 0 || failed == 0 {
		t.Errorf("expected a mix of outcomes, got %d completed / %d failed", completed, failed)
	}
	if completed < failed {
		t.Errorf("completion should dominate at p=0.8: %d completed / %d failed", completed, failed)
	}
}

func TestSettleNeverReversesAndOnlyTouchesBatch(t *testing.T) {
	c := New(seeded(3))
	c.Add(headphones)
	first := c.Checkout(time.Now())
	c.Settle(first)

	settled := c.History()[0].Status
	if settled == models.RedemptionPending {
		t.Fatal("first batch did not settle")
	}

	// Second batch stays pending until its own settle
	c.Add(tshirt)
	second := c.Checkout(time.Now())

	// Re-settling the first batch must not flip the settled record
	for i := 0; i < 20; i++ {
		c.Settle(first)
	}
	if got := c.History()[0].Status; got != settled {
		t.Errorf("settled status reversed: got %v, want %v", got, settled)
	}
	if got := c.History()[1].Status; got != models.RedemptionPending {
		t.Errorf("second batch settled early: got %v", got)
	}

	c.Settle(second)
	if got := c.History()[1].Status; got == models.RedemptionPending {
		t.Error("second batch did not settle")
	}
}

func TestHistoryAccumulatesAcrossCheckouts(t *testing.T) {
	c := New(seeded(1))
	c.Add(headphones)
	c.Checkout(time.Now())
	c.Add(giftcard)
	c.Checkout(time.Now())

	if got := len(c.History()); got != 2 {
		t.Errorf("got %d records, want 2", got)
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	c := New(seeded(1))
	c.Add(headphones)
	c.Checkout(time.Now())

	history := c.History()
	history[0].Status = models.RedemptionFailed

	if got := c.History()[0].Status; got != models.RedemptionPending {
		t.Errorf("cart mutated through returned slice: got %v", got)
	}
}
