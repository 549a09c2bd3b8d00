package repository

import (
	"context"
	"sort"
	"sync"

	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/models"
)

// MemoryStore is an in-memory schedule.Store used by tests and local
// development. Transact serializes callers with a single mutex, which is a
// stronger guarantee than the per-doctor/date isolation the engine requires.
type MemoryStore struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	windows      map[string][]models.AvailabilityWindow
	appointments map[string]models.Appointment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		windows:      make(map[string][]models.AvailabilityWindow),
		appointments: make(map[string]models.Appointment),
	}
}

func windowKey(doctorID, dayOfWeek string) string {
	return doctorID + "|" + dayOfWeek
}

// AddAvailability registers a recurring window. Not part of the engine's
// store contract; it is the seeding side used by tests.
func (m *MemoryStore) AddAvailability(w models.AvailabilityWindow) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := windowKey(w.DoctorID, w.DayOfWeek)
	m.windows[k] = append(m.windows[k], w)
}

func (m *MemoryStore) FindAvailability(
	_ context.Context,
	doctorID string,
	dayOfWeek string,
) ([]models.AvailabilityWindow, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	src := m.windows[windowKey(doctorID, dayOfWeek)]
	out := make([]models.AvailabilityWindow, len(src))
	copy(out, src)
	return out, nil
}

func (m *MemoryStore) FindAppointments(
	_ context.Context,
	doctorID string,
	date string,
) ([]models.Appointment, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.DoctorID == doctorID && ap.Date == date {
			out = append(out, ap)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

func (m *MemoryStore) FindAppointmentByID(
	_ context.Context,
	id string,
) (*models.Appointment, error) {

	m.mu.RLock()
	defer m.mu.RUnlock()

	ap, ok := m.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (m *MemoryStore) SaveAppointment(
	_ context.Context,
	ap *models.Appointment,
) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	m.appointments[ap.ID] = *ap
	return nil
}

func (m *MemoryStore) Transact(
	_ context.Context,
	fn func(domain.Store) error,
) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(m)
}

// Compile-time check
var _ domain.Store = (*MemoryStore)(nil)
