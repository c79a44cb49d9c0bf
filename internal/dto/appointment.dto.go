package dto

type AppointmentDTO struct {
	ID uint `json:"id"`

	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`

	BarbershopID      uint   `json:"barbershop_id"`
	BarbershopName    string `json:"barbershop_name"`
	BarbershopAddress string `json:"barbershop_address"`
	BarbershopPhone   string `json:"barbershop_phone"`

	BarberID   uint   `json:"barber_id"`
	BarberName string `json:"barber_name"`

	ServiceID uint   `json:"service_id"`
	Service   string `json:"service"`

	Date string `json:"date"`
	Time string `json:"time"`

	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}
