package schedule

import (
	"context"

	"github.com/v322/healthsync/internal/cache"
	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/httperr"
)

type GetAvailableSlots struct {
	store  domain.Store
	policy domain.ConflictPolicy
	cache  *cache.SlotCache
}

func NewGetAvailableSlots(
	store domain.Store,
	policy domain.ConflictPolicy,
	slotCache *cache.SlotCache,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		store:  store,
		policy: policy,
		cache:  slotCache,
	}
}

// Execute enumerates the doctor's free 30-minute slots for one date. Slots
// come out in window order, chronological within each window. The result is a
// pure function of the stored windows and appointments; it has no side
// effects beyond the cache fill.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	doctorID string,
	date string,
) ([]domain.TimeSlot, error) {

	day, err := domain.DayOfWeek(date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	if slots, ok := uc.cache.Get(ctx, doctorID, date); ok {
		return slots, nil
	}

	windows, err := uc.store.FindAvailability(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	existing, err := uc.store.FindAppointments(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0)
	for _, w := range windows {
		slots = append(slots, domain.WindowSlots(w, date, existing, uc.policy)...)
	}

	uc.cache.Set(ctx, doctorID, date, slots)

	return slots, nil
}
