package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/v322/healthsync/internal/domain/schedule"
	"github.com/v322/healthsync/internal/models"
)

// ScheduleGormStore is the Postgres-backed storage collaborator of the
// scheduling engine. Inside Transact the appointment reads take row locks
// (SELECT ... FOR UPDATE) so two concurrent bookings for the same doctor and
// date serialize on the conflict check.
type ScheduleGormStore struct {
	db      *gorm.DB
	locking bool
}

func NewScheduleGormStore(db *gorm.DB) *ScheduleGormStore {
	return &ScheduleGormStore{db: db}
}

func (r *ScheduleGormStore) FindAvailability(
	ctx context.Context,
	doctorID string,
	dayOfWeek string,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).
		Order("start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *ScheduleGormStore) FindAppointments(
	ctx context.Context,
	doctorID string,
	date string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx)
	if r.locking {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var apps []models.Appointment
	if err := q.
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *ScheduleGormStore) FindAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &ap, nil
}

func (r *ScheduleGormStore) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *ScheduleGormStore) Transact(
	ctx context.Context,
	fn func(domain.Store) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ScheduleGormStore{db: tx, locking: true})
	})
}

// Compile-time check
var _ domain.Store = (*ScheduleGormStore)(nil)
