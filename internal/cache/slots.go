package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/v322/healthsync/internal/domain/schedule"
)

const slotTTL = 5 * time.Minute

// SlotCache keeps generated free-slot lists in Redis, keyed by doctor and
// date. A nil client disables caching; every method degrades to a no-op, so
// callers never branch on whether Redis is configured.
type SlotCache struct {
	rdb *redis.Client
}

func NewSlotCache(rdb *redis.Client) *SlotCache {
	return &SlotCache{rdb: rdb}
}

func key(doctorID, date string) string {
	return "slots:" + doctorID + ":" + date
}

func (c *SlotCache) Get(ctx context.Context, doctorID, date string) ([]schedule.TimeSlot, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(doctorID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, doctorID, date string, slots []schedule.TimeSlot) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(doctorID, date), raw, slotTTL)
}

func (c *SlotCache) Invalidate(ctx context.Context, doctorID, date string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key(doctorID, date))
}

// InvalidateDoctor drops every cached slot list for the doctor. Availability
// windows recur weekly, so a window change touches all dates at once and a
// per-date Invalidate is not enough.
func (c *SlotCache) InvalidateDoctor(ctx context.Context, doctorID string) {
	if c == nil || c.rdb == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, key(doctorID, "*"), 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}
