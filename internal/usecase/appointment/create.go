package appointment

import (
	"context"
	"time"

	"github.com/barbermap/booking-api/internal/audit"
	"github.com/barbermap/booking-api/internal/cache"
	domain "github.com/barbermap/booking-api/internal/domain/appointment"
	"github.com/barbermap/booking-api/internal/dto"
	"github.com/barbermap/booking-api/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID     uint
	BarbershopID uint
	BarberID     uint
	ServiceID    uint

	Date string
	Time string

	Actor Actor
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.Cache
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache cache.Cache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (dto.AppointmentDTO, error) {

	// Resolve as quatro entidades referenciadas; a primeira ausente
	// encerra a operação.
	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		return dto.AppointmentDTO{}, httperr.ErrNotFound(
			"client_not_found", "Cliente não encontrado",
		)
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return dto.AppointmentDTO{}, httperr.ErrNotFound(
			"barber_not_found", "Barbeiro não encontrado",
		)
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return dto.AppointmentDTO{}, httperr.ErrNotFound(
			"barbershop_not_found", "Barbearia não encontrada",
		)
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return dto.AppointmentDTO{}, httperr.ErrNotFound(
			"service_not_found", "Serviço não encontrado",
		)
	}

	start, err := time.ParseInLocation(dateTimeLayout, in.Date+" "+in.Time, time.Local)
	if err != nil {
		return dto.AppointmentDTO{}, httperr.ErrInvalid(
			"invalid_date_or_time", "Data ou hora inválida.",
		)
	}

	ap := domain.New(client.ID, barber.ID, shop.ID, service, start)

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.audit.Dispatch(audit.Event{
				BarbershopID: shop.ID,
				ActorID:      &in.Actor.ID,
				ActorType:    in.Actor.Type,
				Action:       audit.ActionAppointmentConflict,
				Entity:       "appointment",
				Metadata: map[string]any{
					"start": start,
				},
			})
		}
		return dto.AppointmentDTO{}, err
	}

	invalidateSlots(ctx, uc.cache, shop.ID, start)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		ActorID:      &in.Actor.ID,
		ActorType:    in.Actor.Type,
		Action:       audit.ActionAppointmentCreated,
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	ap.Client = *client
	ap.Barber = *barber
	ap.Barbershop = *shop
	ap.Service = *service

	return toDTO(ap), nil
}
