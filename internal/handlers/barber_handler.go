package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbermap/booking-api/internal/httperr"
	"github.com/barbermap/booking-api/internal/httpresp"
	"github.com/barbermap/booking-api/internal/models"
	"github.com/barbermap/booking-api/internal/validators"
)

type BarberHandler struct {
	db *gorm.DB

	// Checagens injetáveis nos testes.
	emailDomainValid func(email string) bool
	emailInUse       func(email string) (bool, error)
	cpfInUse         func(cpf string) (bool, error)
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{
		db:               db,
		emailDomainValid: validators.IsEmailDomainValid,
		emailInUse: func(email string) (bool, error) {
			return emailInUse(db, email)
		},
		cpfInUse: func(cpf string) (bool, error) {
			return cpfInUse(db, cpf)
		},
	}
}

type BarberRegistrationRequest struct {
	Name         string `json:"name" binding:"required"`
	CPF          string `json:"cpf" binding:"required"`
	BirthDate    string `json:"birth_date" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	BarbershopID uint   `json:"barbershop_id" binding:"required"`
}

func (h *BarberHandler) Register(c *gin.Context) {
	var req BarberRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	cpf := validators.NormalizeCPF(req.CPF)

	if !validators.IsCPFFormatValid(cpf) {
		httperr.BadRequest(c, "invalid_cpf", "CPF inválido.")
		return
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	if !h.emailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	emailTaken, err := h.emailInUse(email)
	if err != nil {
		httperr.Internal(c, "failed_to_check_email", "Erro ao registrar barbeiro.")
		return
	}
	if emailTaken {
		httperr.Conflict(c, "email_in_use", "E-mail já cadastrado")
		return
	}

	cpfTaken, err := h.cpfInUse(cpf)
	if err != nil {
		httperr.Internal(c, "failed_to_check_cpf", "Erro ao registrar barbeiro.")
		return
	}
	if cpfTaken {
		httperr.Conflict(c, "cpf_in_use", "CPF já cadastrado")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, req.BarbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found",
			fmt.Sprintf("Barbearia não encontrada: id=%d", req.BarbershopID))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao registrar barbeiro.")
		return
	}

	barber := models.Barber{
		BarbershopID: shop.ID,
		Name:         req.Name,
		CPF:          cpf,
		BirthDate:    birthDate,
		Phone:        req.Phone,
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao registrar barbeiro.")
		return
	}

	httpresp.Created(c, mapBarberToUser(&barber))
}

func cpfInUse(db *gorm.DB, cpf string) (bool, error) {
	var count int64
	if err := db.Model(&models.Barber{}).Where("cpf = ?", cpf).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByID retorna o barbeiro com os dados da barbearia buscados em uma
// consulta explícita.
func (h *BarberHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado")
		return
	}

	resp := gin.H{
		"id":         barber.ID,
		"name":       barber.Name,
		"email":      barber.Email,
		"cpf":        barber.CPF,
		"birth_date": barber.BirthDate.Format(dateLayout),
		"phone":      barber.Phone,
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barber.BarbershopID).Error; err == nil {
		resp["barbershop_id"] = shop.ID
		resp["barbershop_name"] = shop.Name
		resp["barbershop_address"] = shop.Address
		resp["barbershop_phone"] = shop.Phone
	}

	httpresp.OK(c, resp)
}
