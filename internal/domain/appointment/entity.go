package appointment

import (
	"time"

	"github.com/barbermap/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// As transições de status são permissivas: qualquer operação pode ser
// aplicada a partir de qualquer status atual e sobrescreve o anterior.

func New(
	clientID uint,
	barberID uint,
	barbershopID uint,
	service *models.Service,
	start time.Time,
) *models.Appointment {
	return &models.Appointment{
		ClientID:     clientID,
		BarberID:     barberID,
		BarbershopID: barbershopID,
		ServiceID:    service.ID,
		StartTime:    start,
		EndTime:      start.Add(time.Duration(service.DurationMin) * time.Minute),
		Status:       string(InitialStatus()),
		Price:        service.Price,
	}
}

// Reschedule recalcula início e fim com a duração do serviço já
// associado ao agendamento e confirma o novo horário.
func Reschedule(ap *models.Appointment, newStart time.Time, durationMin int) {
	ap.StartTime = newStart
	ap.EndTime = newStart.Add(time.Duration(durationMin) * time.Minute)
	ap.Status = string(StatusConfirmed)
}

func Cancel(ap *models.Appointment) {
	ap.Status = string(StatusCancelled)
}

func Confirm(ap *models.Appointment) {
	ap.Status = string(StatusConfirmed)
}

func Complete(ap *models.Appointment) {
	ap.Status = string(StatusCompleted)
}
