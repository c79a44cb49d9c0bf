package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbermap/booking-api/internal/httperr"
	"github.com/barbermap/booking-api/internal/httpresp"
	"github.com/barbermap/booking-api/internal/models"
	"github.com/barbermap/booking-api/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB

	// Checagens injetáveis nos testes.
	emailDomainValid func(email string) bool
	emailInUse       func(email string) (bool, error)
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{
		db:               db,
		emailDomainValid: validators.IsEmailDomainValid,
		emailInUse: func(email string) (bool, error) {
			return emailInUse(db, email)
		},
	}
}

type ClientRegistrationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

func (h *ClientHandler) Register(c *gin.Context) {
	var req ClientRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if !h.emailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	// E-mails de clientes e barbeiros compartilham um único namespace.
	inUse, err := h.emailInUse(email)
	if err != nil {
		httperr.Internal(c, "failed_to_check_email", "Erro ao registrar cliente.")
		return
	}
	if inUse {
		httperr.Conflict(c, "email_in_use", "Email já cadastrado")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao registrar cliente.")
		return
	}

	client := models.Client{
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao registrar cliente.")
		return
	}

	httpresp.Created(c, mapClientToUser(&client))
}

// emailInUse consulta clientes e barbeiros; os dois compartilham o
// namespace de e-mails.
func emailInUse(db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.Model(&models.Client{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	if err := db.Model(&models.Barber{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
