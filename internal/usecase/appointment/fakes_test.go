package appointment

import (
	"context"
	"time"

	domain "github.com/barbermap/booking-api/internal/domain/appointment"
	"github.com/barbermap/booking-api/internal/models"
)

// fakeRepo implementa domain.Repository com campos de função.
// Métodos não configurados entram em pânico para denunciar chamadas
// inesperadas no cenário.
type fakeRepo struct {
	getBarbershopByID func(ctx context.Context, id uint) (*models.Barbershop, error)
	barbershopExists  func(ctx context.Context, id uint) (bool, error)
	getService        func(ctx context.Context, id uint) (*models.Service, error)
	getClientByID     func(ctx context.Context, id uint) (*models.Client, error)
	getBarberByID     func(ctx context.Context, id uint) (*models.Barber, error)

	createAppointment     func(ctx context.Context, ap *models.Appointment) error
	updateAppointmentSlot func(ctx context.Context, ap *models.Appointment) error
	getAppointmentByID    func(ctx context.Context, id uint) (*models.Appointment, error)
	updateAppointment     func(ctx context.Context, ap *models.Appointment) error

	listByClient     func(ctx context.Context, clientID uint) ([]models.Appointment, error)
	listByBarbershop func(ctx context.Context, barbershopID uint) ([]models.Appointment, error)

	listForWindowWithStatuses func(
		ctx context.Context,
		barbershopID uint,
		start, end time.Time,
		statuses []domain.Status,
	) ([]models.Appointment, error)
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetBarbershopByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	if f.getBarbershopByID == nil {
		panic("fakeRepo.GetBarbershopByID não configurado")
	}
	return f.getBarbershopByID(ctx, id)
}

func (f *fakeRepo) BarbershopExists(ctx context.Context, id uint) (bool, error) {
	if f.barbershopExists == nil {
		panic("fakeRepo.BarbershopExists não configurado")
	}
	return f.barbershopExists(ctx, id)
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if f.getService == nil {
		panic("fakeRepo.GetService não configurado")
	}
	return f.getService(ctx, id)
}

func (f *fakeRepo) GetClientByID(ctx context.Context, id uint) (*models.Client, error) {
	if f.getClientByID == nil {
		panic("fakeRepo.GetClientByID não configurado")
	}
	return f.getClientByID(ctx, id)
}

func (f *fakeRepo) GetBarberByID(ctx context.Context, id uint) (*models.Barber, error) {
	if f.getBarberByID == nil {
		panic("fakeRepo.GetBarberByID não configurado")
	}
	return f.getBarberByID(ctx, id)
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createAppointment == nil {
		panic("fakeRepo.CreateAppointment não configurado")
	}
	return f.createAppointment(ctx, ap)
}

func (f *fakeRepo) UpdateAppointmentSlot(ctx context.Context, ap *models.Appointment) error {
	if f.updateAppointmentSlot == nil {
		panic("fakeRepo.UpdateAppointmentSlot não configurado")
	}
	return f.updateAppointmentSlot(ctx, ap)
}

func (f *fakeRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if f.getAppointmentByID == nil {
		panic("fakeRepo.GetAppointmentByID não configurado")
	}
	return f.getAppointmentByID(ctx, id)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateAppointment == nil {
		panic("fakeRepo.UpdateAppointment não configurado")
	}
	return f.updateAppointment(ctx, ap)
}

func (f *fakeRepo) ListByClient(ctx context.Context, clientID uint) ([]models.Appointment, error) {
	if f.listByClient == nil {
		panic("fakeRepo.ListByClient não configurado")
	}
	return f.listByClient(ctx, clientID)
}

func (f *fakeRepo) ListByBarbershop(ctx context.Context, barbershopID uint) ([]models.Appointment, error) {
	if f.listByBarbershop == nil {
		panic("fakeRepo.ListByBarbershop não configurado")
	}
	return f.listByBarbershop(ctx, barbershopID)
}

func (f *fakeRepo) ListForWindowWithStatuses(
	ctx context.Context,
	barbershopID uint,
	start, end time.Time,
	statuses []domain.Status,
) ([]models.Appointment, error) {
	if f.listForWindowWithStatuses == nil {
		panic("fakeRepo.ListForWindowWithStatuses não configurado")
	}
	return f.listForWindowWithStatuses(ctx, barbershopID, start, end, statuses)
}

// fakeCache guarda entradas em memória e conta operações.
type fakeCache struct {
	entries map[string][]byte
	sets    int
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := f.entries[key]
	return v, ok, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.entries[key] = value
	f.sets++
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	f.deletes = append(f.deletes, key)
	return nil
}
