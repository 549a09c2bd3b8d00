package schedule

import (
	"context"

	"github.com/v322/healthsync/internal/models"
)

// AvailabilityStore reads a doctor's recurring weekly windows.
type AvailabilityStore interface {
	FindAvailability(
		ctx context.Context,
		doctorID string,
		dayOfWeek string,
	) ([]models.AvailabilityWindow, error)
}

// BookingStore reads and persists appointment records. FindAppointmentByID
// returns ErrNotFound when the id is unknown.
type BookingStore interface {
	FindAppointments(
		ctx context.Context,
		doctorID string,
		date string,
	) ([]models.Appointment, error)

	FindAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}

// Store is the storage collaborator consumed by the scheduling engine.
//
// Transact runs fn against a store view with at-least-serializable isolation
// relative to concurrent bookings for the same doctor and date. The engine
// itself takes no locks; the booking check-then-write sequence is only
// race-free because it runs inside Transact.
type Store interface {
	AvailabilityStore
	BookingStore

	Transact(ctx context.Context, fn func(Store) error) error
}
