package models

import "time"

type Barbershop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Address string `gorm:"size:255;not null" json:"address"`
	CEP     string `gorm:"size:9" json:"cep"`
	Phone   string `gorm:"size:20" json:"phone"`

	// Horário exibido no perfil. A grade de slots não lê este campo.
	Hours string `gorm:"size:100" json:"hours"`

	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	Services []Service `gorm:"constraint:OnDelete:CASCADE;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
