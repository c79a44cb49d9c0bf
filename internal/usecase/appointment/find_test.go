package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/barbermap/booking-api/internal/httperr"
	"github.com/barbermap/booking-api/internal/models"
)

func TestFindByIDNotFound(t *testing.T) {
	repo := &fakeRepo{
		getAppointmentByID: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return nil, errors.New("record not found")
		},
	}

	uc := NewFindAppointments(repo)

	_, err := uc.FindByID(context.Background(), 42)
	be, ok := httperr.AsBusiness(err)
	if !ok || be.Kind != httperr.KindNotFound {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if be.Message != "Agendamento não encontrado com o ID: 42" {
		t.Errorf("message = %q", be.Message)
	}
}

func TestFindByID(t *testing.T) {
	start := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	repo := &fakeRepo{
		getAppointmentByID: func(ctx context.Context, id uint) (*models.Appointment, error) {
			return &models.Appointment{
				ID:        id,
				StartTime: start,
				Status:    "CONFIRMED",
				Price:     45.00,
				Client:    models.Client{Name: "João Silva"},
				Service:   models.Service{Name: "Corte", DurationMin: 30},
			}, nil
		},
	}

	got, err := NewFindAppointments(repo).FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 7 || got.Status != "CONFIRMED" || got.Time != "09:00" {
		t.Errorf("unexpected projection: %+v", got)
	}
}

func TestListByClientPassesThrough(t *testing.T) {
	repo := &fakeRepo{
		listByClient: func(ctx context.Context, clientID uint) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: 1, Status: "PENDING"},
				{ID: 2, Status: "CANCELLED"},
			}, nil
		},
	}

	got, err := NewFindAppointments(repo).ListByClient(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("unexpected list: %+v", got)
	}
}

func TestListByClientEmpty(t *testing.T) {
	repo := &fakeRepo{
		listByClient: func(ctx context.Context, clientID uint) ([]models.Appointment, error) {
			return nil, nil
		},
	}

	got, err := NewFindAppointments(repo).ListByClient(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestListByBarbershopRequiresExistingShop(t *testing.T) {
	repo := &fakeRepo{
		barbershopExists: func(ctx context.Context, id uint) (bool, error) {
			return false, nil
		},
	}

	_, err := NewFindAppointments(repo).ListByBarbershop(context.Background(), 5)
	be, ok := httperr.AsBusiness(err)
	if !ok || be.Kind != httperr.KindNotFound {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if be.Message != "Barbearia não encontrada com o ID: 5" {
		t.Errorf("message = %q", be.Message)
	}
}

func TestListByBarbershop(t *testing.T) {
	repo := &fakeRepo{
		barbershopExists: func(ctx context.Context, id uint) (bool, error) {
			return true, nil
		},
		listByBarbershop: func(ctx context.Context, barbershopID uint) ([]models.Appointment, error) {
			return []models.Appointment{{ID: 3}}, nil
		},
	}

	got, err := NewFindAppointments(repo).ListByBarbershop(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 3 {
		t.Errorf("unexpected list: %+v", got)
	}
}
