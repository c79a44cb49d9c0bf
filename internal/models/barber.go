package models

import "time"

type Barber struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	BarbershopID uint       `gorm:"not null" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name      string    `gorm:"size:100;not null" json:"name"`
	CPF       string    `gorm:"size:14;uniqueIndex;not null" json:"cpf"`
	BirthDate time.Time `gorm:"not null" json:"birth_date"`
	Phone     string    `gorm:"size:20" json:"phone"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
