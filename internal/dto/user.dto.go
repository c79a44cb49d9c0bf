package dto

const (
	UserTypeClient = "CLIENT"
	UserTypeBarber = "BARBER"
)

// UserResponseDTO é a projeção sanitizada de cliente ou barbeiro.
// Nunca carrega a credencial.
type UserResponseDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	CPF       string `json:"cpf,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	UserType  string `json:"user_type"`
}
