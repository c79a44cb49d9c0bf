package appointment

import (
	"context"
	"fmt"

	domain "github.com/barbermap/booking-api/internal/domain/appointment"
	"github.com/barbermap/booking-api/internal/dto"
	"github.com/barbermap/booking-api/internal/httperr"
)

type FindAppointments struct {
	repo domain.Repository
}

func NewFindAppointments(repo domain.Repository) *FindAppointments {
	return &FindAppointments{repo: repo}
}

func (uc *FindAppointments) FindByID(
	ctx context.Context,
	id uint,
) (dto.AppointmentDTO, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return dto.AppointmentDTO{}, httperr.ErrNotFound(
			"appointment_not_found",
			fmt.Sprintf("Agendamento não encontrado com o ID: %d", id),
		)
	}

	return toDTO(ap), nil
}

func (uc *FindAppointments) ListByClient(
	ctx context.Context,
	clientID uint,
) ([]dto.AppointmentDTO, error) {

	aps, err := uc.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, toDTO(&aps[i]))
	}
	return out, nil
}

// ListByBarbershop falha com NotFound quando a barbearia não existe,
// mesmo que ela simplesmente não tenha agendamentos.
func (uc *FindAppointments) ListByBarbershop(
	ctx context.Context,
	barbershopID uint,
) ([]dto.AppointmentDTO, error) {

	exists, err := uc.repo.BarbershopExists(ctx, barbershopID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrNotFound(
			"barbershop_not_found",
			fmt.Sprintf("Barbearia não encontrada com o ID: %d", barbershopID),
		)
	}

	aps, err := uc.repo.ListByBarbershop(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, toDTO(&aps[i]))
	}
	return out, nil
}
