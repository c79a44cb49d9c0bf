package models

import "time"

type Service struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"not null" json:"barbershop_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	DurationMin int     `gorm:"not null" json:"duration"`
	Price       float64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
