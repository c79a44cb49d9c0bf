package appointment

import (
	"context"
	"fmt"

	"github.com/barbermap/booking-api/internal/audit"
	"github.com/barbermap/booking-api/internal/cache"
	domain "github.com/barbermap/booking-api/internal/domain/appointment"
	"github.com/barbermap/booking-api/internal/dto"
	"github.com/barbermap/booking-api/internal/httperr"
	"github.com/barbermap/booking-api/internal/models"
)

// ChangeStatus cobre cancelar, confirmar e concluir: a mesma mecânica
// com ação de domínio e evento de auditoria diferentes.
type ChangeStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	cache  cache.Cache
	apply  func(*models.Appointment)
	action string
}

func NewCancelAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	cache cache.Cache,
) *ChangeStatus {
	return &ChangeStatus{
		repo:   repo,
		audit:  auditor,
		cache:  cache,
		apply:  domain.Cancel,
		action: audit.ActionAppointmentCancelled,
	}
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	cache cache.Cache,
) *ChangeStatus {
	return &ChangeStatus{
		repo:   repo,
		audit:  auditor,
		cache:  cache,
		apply:  domain.Confirm,
		action: audit.ActionAppointmentConfirmed,
	}
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	cache cache.Cache,
) *ChangeStatus {
	return &ChangeStatus{
		repo:   repo,
		audit:  auditor,
		cache:  cache,
		apply:  domain.Complete,
		action: audit.ActionAppointmentCompleted,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	actor Actor,
) (dto.AppointmentDTO, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return dto.AppointmentDTO{}, httperr.ErrNotFound(
			"appointment_not_found",
			fmt.Sprintf("Agendamento não encontrado com o ID: %d", appointmentID),
		)
	}

	uc.apply(ap)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return dto.AppointmentDTO{}, err
	}

	invalidateSlots(ctx, uc.cache, ap.BarbershopID, ap.StartTime)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		ActorID:      &actor.ID,
		ActorType:    actor.Type,
		Action:       uc.action,
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return toDTO(ap), nil
}
