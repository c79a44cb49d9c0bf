package appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/barbermap/booking-api/internal/cache"
	domain "github.com/barbermap/booking-api/internal/domain/appointment"
	"github.com/barbermap/booking-api/internal/dto"
	"github.com/barbermap/booking-api/internal/httperr"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewGetAvailableSlots(
	repo domain.Repository,
	cache cache.Cache,
	ttl time.Duration,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	barbershopID uint,
	date time.Time,
) (dto.AvailableSlotsDTO, error) {

	if _, err := uc.repo.GetBarbershopByID(ctx, barbershopID); err != nil {
		return dto.AvailableSlotsDTO{}, httperr.ErrNotFound(
			"barbershop_not_found",
			fmt.Sprintf("Barbearia não encontrada com o ID: %d", barbershopID),
		)
	}

	key := slotsCacheKey(barbershopID, date)

	if raw, hit, err := uc.cache.Get(ctx, key); err == nil && hit {
		var cached dto.AvailableSlotsDTO
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	} else if err != nil {
		log.Println("availability cache error:", err)
	}

	start, end := domain.DayWindow(date)

	blocking, err := uc.repo.ListForWindowWithStatuses(
		ctx,
		barbershopID,
		start,
		end,
		domain.BlockingStatuses(),
	)
	if err != nil {
		return dto.AvailableSlotsDTO{}, err
	}

	result := dto.AvailableSlotsDTO{
		Date:           date.Format(dateLayout),
		AvailableSlots: domain.AvailableSlots(domain.OccupiedSlots(blocking)),
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := uc.cache.Set(ctx, key, raw, uc.ttl); err != nil {
			log.Println("availability cache error:", err)
		}
	}

	return result, nil
}
