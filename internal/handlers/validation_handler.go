package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbermap/booking-api/internal/httperr"
	"github.com/barbermap/booking-api/internal/httpresp"
	"github.com/barbermap/booking-api/internal/validators"
)

// ValidationHandler expõe as mesmas checagens de unicidade do registro,
// sem efeito colateral, para validação antes do envio do formulário.
type ValidationHandler struct {
	db *gorm.DB
}

func NewValidationHandler(db *gorm.DB) *ValidationHandler {
	return &ValidationHandler{db: db}
}

type ValidationRequest struct {
	Value string `json:"value" binding:"required"`
}

type ValidationResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func (h *ValidationHandler) ValidateEmail(c *gin.Context) {
	var req ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := validators.NormalizeEmail(req.Value)

	inUse, err := emailInUse(h.db, email)
	if err != nil {
		httperr.Internal(c, "failed_to_check_email", "Erro ao validar e-mail.")
		return
	}
	if inUse {
		httpresp.OK(c, ValidationResponse{Valid: false, Message: "Email já está em uso"})
		return
	}

	httpresp.OK(c, ValidationResponse{Valid: true, Message: "Email disponível"})
}

func (h *ValidationHandler) ValidateCPF(c *gin.Context) {
	var req ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cpf := validators.NormalizeCPF(req.Value)

	inUse, err := cpfInUse(h.db, cpf)
	if err != nil {
		httperr.Internal(c, "failed_to_check_cpf", "Erro ao validar CPF.")
		return
	}
	if inUse {
		httpresp.OK(c, ValidationResponse{Valid: false, Message: "CPF já está em uso"})
		return
	}

	httpresp.OK(c, ValidationResponse{Valid: true, Message: "CPF disponível"})
}
