package handlers

import (
	"github.com/barbermap/booking-api/internal/dto"
	"github.com/barbermap/booking-api/internal/models"
)

func mapClientToUser(client *models.Client) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:       client.ID,
		Name:     client.Name,
		Email:    client.Email,
		Phone:    client.Phone,
		UserType: dto.UserTypeClient,
	}
}

func mapBarberToUser(barber *models.Barber) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:        barber.ID,
		Name:      barber.Name,
		Email:     barber.Email,
		Phone:     barber.Phone,
		CPF:       barber.CPF,
		BirthDate: barber.BirthDate.Format(dateLayout),
		UserType:  dto.UserTypeBarber,
	}
}
