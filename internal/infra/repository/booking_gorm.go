package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/barbermap/booking-api/internal/domain/appointment"
	"github.com/barbermap/booking-api/internal/httperr"
	"github.com/barbermap/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *BookingGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *BookingGormRepository) BarbershopExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barbershop{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Client / Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Appointment (create / reschedule)
// --------------------------------------------------

// assertSlotFree conta, com lock de linha, agendamentos PENDING ou
// CONFIRMED da barbearia no mesmo horário exato de início. excludeID
// ignora o próprio agendamento em um reagendamento.
func assertSlotFree(
	tx *gorm.DB,
	barbershopID uint,
	start time.Time,
	excludeID uint,
) error {

	q := tx.
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"barbershop_id = ? AND start_time = ? AND status IN ?",
			barbershopID,
			start,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrConflict(
			"slot_taken",
			"Horário indisponível para esta barbearia.",
		)
	}

	return nil
}

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap.BarbershopID, ap.StartTime, 0); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}

func (r *BookingGormRepository) UpdateAppointmentSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap.BarbershopID, ap.StartTime, ap.ID); err != nil {
			return err
		}
		return tx.Save(ap).Error
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Barbershop").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Appointment (reads)
// --------------------------------------------------

func (r *BookingGormRepository) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Barbershop").
		Preload("Service").
		Where("client_id = ?", clientID).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListByBarbershop(
	ctx context.Context,
	barbershopID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Barbershop").
		Preload("Service").
		Where("barbershop_id = ?", barbershopID).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListForWindowWithStatuses(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
	statuses []domain.Status,
) ([]models.Appointment, error) {

	in := make([]string, 0, len(statuses))
	for _, s := range statuses {
		in = append(in, string(s))
	}

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time", "status").
		Where(
			"barbershop_id = ? AND start_time >= ? AND start_time < ? AND status IN ?",
			barbershopID, start, end, in,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
