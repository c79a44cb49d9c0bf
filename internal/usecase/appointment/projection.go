package appointment

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/barbermap/booking-api/internal/cache"
	"github.com/barbermap/booking-api/internal/dto"
	"github.com/barbermap/booking-api/internal/models"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04"
)

// Actor identifica quem disparou a operação, para auditoria.
type Actor struct {
	ID   uint
	Type string
}

// toDTO monta a projeção de resposta a partir de um agendamento com as
// associações carregadas por consultas explícitas no repositório.
func toDTO(ap *models.Appointment) dto.AppointmentDTO {
	return dto.AppointmentDTO{
		ID: ap.ID,

		ClientID:   ap.ClientID,
		ClientName: ap.Client.Name,

		BarbershopID:      ap.BarbershopID,
		BarbershopName:    ap.Barbershop.Name,
		BarbershopAddress: ap.Barbershop.Address,
		BarbershopPhone:   ap.Barbershop.Phone,

		BarberID:   ap.BarberID,
		BarberName: ap.Barber.Name,

		ServiceID: ap.ServiceID,
		Service:   ap.Service.Name,

		Date: ap.StartTime.Format(dateLayout),
		Time: ap.StartTime.Format(timeLayout),

		Duration: ap.Service.DurationMin,
		Price:    ap.Price,
		Status:   ap.Status,
	}
}

func slotsCacheKey(barbershopID uint, day time.Time) string {
	return fmt.Sprintf("availability:%d:%s", barbershopID, day.Format(dateLayout))
}

// invalidateSlots descarta a grade de horários em cache das datas
// afetadas por uma escrita. Falha de cache não derruba a operação.
func invalidateSlots(ctx context.Context, c cache.Cache, barbershopID uint, days ...time.Time) {
	for _, day := range days {
		if err := c.Delete(ctx, slotsCacheKey(barbershopID, day)); err != nil {
			log.Println("cache invalidation error:", err)
		}
	}
}
