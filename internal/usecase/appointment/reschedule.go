package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/barbermap/booking-api/internal/audit"
	"github.com/barbermap/booking-api/internal/cache"
	domain "github.com/barbermap/booking-api/internal/domain/appointment"
	"github.com/barbermap/booking-api/internal/dto"
	"github.com/barbermap/booking-api/internal/httperr"
)

type RescheduleInput struct {
	AppointmentID uint

	Date string
	Time string

	Actor Actor
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.Cache
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache cache.Cache,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (dto.AppointmentDTO, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return dto.AppointmentDTO{}, httperr.ErrNotFound(
			"appointment_not_found",
			fmt.Sprintf("Agendamento não encontrado com o ID: %d", in.AppointmentID),
		)
	}

	newStart, err := time.ParseInLocation(dateTimeLayout, in.Date+" "+in.Time, time.Local)
	if err != nil {
		return dto.AppointmentDTO{}, httperr.ErrInvalid(
			"invalid_date_or_time", "Data ou hora inválida.",
		)
	}

	oldStart := ap.StartTime

	// A duração vem do serviço já associado; trocas de serviço não
	// fazem parte do reagendamento.
	domain.Reschedule(ap, newStart, ap.Service.DurationMin)

	if err := uc.repo.UpdateAppointmentSlot(ctx, ap); err != nil {
		return dto.AppointmentDTO{}, err
	}

	invalidateSlots(ctx, uc.cache, ap.BarbershopID, oldStart, newStart)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		ActorID:      &in.Actor.ID,
		ActorType:    in.Actor.Type,
		Action:       audit.ActionAppointmentRescheduled,
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return toDTO(ap), nil
}
