package appointment

import (
	"context"
	"time"

	"github.com/barbermap/booking-api/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	BarbershopExists(
		ctx context.Context,
		id uint,
	) (bool, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Client / Barber --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Appointment (create / reschedule, guarded) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointmentSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (reads) --------
	ListByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListByBarbershop(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Appointment, error)

	// -------- Availability --------
	ListForWindowWithStatuses(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
		statuses []Status,
	) ([]models.Appointment, error)
}
