package appointment

import (
	"time"

	"github.com/barbermap/booking-api/internal/models"
)

// Janela de funcionamento fixa da grade de slots. O campo Hours exibido
// no perfil da barbearia não participa deste cálculo.
const (
	OpeningHour  = 8
	ClosingHour  = 18
	SlotInterval = 30 * time.Minute
)

const slotLayout = "15:04"

// DayWindow retorna o intervalo [00:00 do dia, 00:00 do dia seguinte)
// usado para buscar os agendamentos da data.
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	return start, start.Add(24 * time.Hour)
}

// OccupiedSlots coleta os horários de início (somente hora do dia) dos
// agendamentos que bloqueiam a agenda.
func OccupiedSlots(appointments []models.Appointment) map[string]bool {
	occupied := make(map[string]bool, len(appointments))
	for _, ap := range appointments {
		occupied[ap.StartTime.Format(slotLayout)] = true
	}
	return occupied
}

// AvailableSlots gera, em ordem crescente, todos os limites de slot da
// janela de funcionamento que não estão ocupados. Cada slot tem 30
// minutos fixos, independente da duração do serviço escolhido depois.
func AvailableSlots(occupied map[string]bool) []string {
	slots := []string{}

	day := time.Date(2000, 1, 1, OpeningHour, 0, 0, 0, time.UTC)
	closing := time.Date(2000, 1, 1, ClosingHour, 0, 0, 0, time.UTC)

	for cur := day; cur.Before(closing); cur = cur.Add(SlotInterval) {
		hm := cur.Format(slotLayout)
		if !occupied[hm] {
			slots = append(slots, hm)
		}
	}

	return slots
}
