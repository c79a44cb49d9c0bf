package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/barbermap/booking-api/internal/domain/appointment"
	"github.com/barbermap/booking-api/internal/httperr"
	"github.com/barbermap/booking-api/internal/models"
)

func availabilityRepo(blocking []models.Appointment) *fakeRepo {
	return &fakeRepo{
		getBarbershopByID: func(ctx context.Context, id uint) (*models.Barbershop, error) {
			return &models.Barbershop{ID: id, Name: "Barbearia Central"}, nil
		},
		listForWindowWithStatuses: func(
			ctx context.Context,
			barbershopID uint,
			start, end time.Time,
			statuses []domain.Status,
		) ([]models.Appointment, error) {
			return blocking, nil
		},
	}
}

func TestAvailableSlotsShopNotFound(t *testing.T) {
	repo := &fakeRepo{
		getBarbershopByID: func(ctx context.Context, id uint) (*models.Barbershop, error) {
			return nil, errors.New("record not found")
		},
	}

	uc := NewGetAvailableSlots(repo, newFakeCache(), time.Minute)

	_, err := uc.Execute(context.Background(), 9, time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local))
	be, ok := httperr.AsBusiness(err)
	if !ok || be.Kind != httperr.KindNotFound {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
	if be.Message != "Barbearia não encontrada com o ID: 9" {
		t.Errorf("message = %q", be.Message)
	}
}

func TestAvailableSlotsExcludesBlocking(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	blocking := []models.Appointment{
		{StartTime: day.Add(9 * time.Hour), Status: "PENDING"},
		{StartTime: day.Add(14*time.Hour + 30*time.Minute), Status: "CONFIRMED"},
	}

	uc := NewGetAvailableSlots(availabilityRepo(blocking), newFakeCache(), time.Minute)

	got, err := uc.Execute(context.Background(), 2, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Date != "2024-06-10" {
		t.Errorf("date = %q", got.Date)
	}
	if len(got.AvailableSlots) != 18 {
		t.Errorf("slots = %d, want 18", len(got.AvailableSlots))
	}
	for _, s := range got.AvailableSlots {
		if s == "09:00" || s == "14:30" {
			t.Errorf("occupied slot %s still offered", s)
		}
	}
}

// Agendamentos cancelados não entram na listagem de bloqueio, então o
// horário volta a ficar disponível.
func TestAvailableSlotsAfterCancellation(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	uc := NewGetAvailableSlots(availabilityRepo(nil), newFakeCache(), time.Minute)

	got, err := uc.Execute(context.Background(), 2, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.AvailableSlots) != 20 {
		t.Errorf("slots = %d, want 20", len(got.AvailableSlots))
	}
	if got.AvailableSlots[0] != "08:00" || got.AvailableSlots[19] != "17:30" {
		t.Errorf("boundaries = %q / %q", got.AvailableSlots[0], got.AvailableSlots[19])
	}
}

func TestAvailableSlotsQueriesBlockingStatusesOnly(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	var gotStatuses []domain.Status
	repo := availabilityRepo(nil)
	base := repo.listForWindowWithStatuses
	repo.listForWindowWithStatuses = func(
		ctx context.Context,
		barbershopID uint,
		start, end time.Time,
		statuses []domain.Status,
	) ([]models.Appointment, error) {
		gotStatuses = statuses
		return base(ctx, barbershopID, start, end, statuses)
	}

	uc := NewGetAvailableSlots(repo, newFakeCache(), time.Minute)

	if _, err := uc.Execute(context.Background(), 2, day); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gotStatuses) != 2 || gotStatuses[0] != domain.StatusPending || gotStatuses[1] != domain.StatusConfirmed {
		t.Errorf("statuses = %v", gotStatuses)
	}
}

func TestAvailableSlotsCacheRoundtrip(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	store := newFakeCache()

	calls := 0
	repo := availabilityRepo(nil)
	base := repo.listForWindowWithStatuses
	repo.listForWindowWithStatuses = func(
		ctx context.Context,
		barbershopID uint,
		start, end time.Time,
		statuses []domain.Status,
	) ([]models.Appointment, error) {
		calls++
		return base(ctx, barbershopID, start, end, statuses)
	}

	uc := NewGetAvailableSlots(repo, store, time.Minute)

	first, err := uc.Execute(context.Background(), 2, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.sets != 1 {
		t.Fatalf("sets = %d, want 1", store.sets)
	}

	second, err := uc.Execute(context.Background(), 2, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("repository queried %d times, want 1", calls)
	}
	if len(second.AvailableSlots) != len(first.AvailableSlots) || second.Date != first.Date {
		t.Errorf("cached result differs: %+v vs %+v", second, first)
	}
}
