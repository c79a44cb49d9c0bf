package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbermap/booking-api/internal/dto"
	"github.com/barbermap/booking-api/internal/httperr"
	"github.com/barbermap/booking-api/internal/httpresp"
	"github.com/barbermap/booking-api/internal/middleware"
	"github.com/barbermap/booking-api/internal/models"
	"github.com/barbermap/booking-api/internal/validators"
)

type UserHandler struct {
	db *gorm.DB

	// Checagem injetável nos testes.
	barberHasAppointments func(barberID uint) (bool, error)
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		db: db,
		barberHasAppointments: func(barberID uint) (bool, error) {
			var count int64
			err := db.Model(&models.Appointment{}).
				Where("barber_id = ?", barberID).
				Count(&count).Error
			return count > 0, err
		},
	}
}

type UserUpdateRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date"`

	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// resolveUserType extrai CLIENT ou BARBER do papel gravado no token.
func resolveUserType(c *gin.Context) (string, bool) {
	role, ok := c.Get(middleware.ContextUserRole)
	if !ok {
		httperr.Unauthorized(c, "missing_role", "Tipo de usuário não encontrado")
		return "", false
	}

	r := role.(string)
	switch {
	case strings.Contains(r, dto.UserTypeBarber):
		return dto.UserTypeBarber, true
	case strings.Contains(r, dto.UserTypeClient):
		return dto.UserTypeClient, true
	}

	httperr.Unauthorized(c, "unknown_role", "Tipo de usuário não identificado")
	return "", false
}

// ======================================================
// LIST
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	var barbers []models.Barber
	if err := h.db.Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	out := make([]dto.UserResponseDTO, 0, len(clients)+len(barbers))
	for i := range clients {
		out = append(out, mapClientToUser(&clients[i]))
	}
	for i := range barbers {
		out = append(out, mapBarberToUser(&barbers[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// GET
// ======================================================

func (h *UserHandler) Get(c *gin.Context) {
	userType, ok := resolveUserType(c)
	if !ok {
		return
	}

	id := c.Param("id")

	if userType == dto.UserTypeClient {
		var client models.Client
		if err := h.db.First(&client, id).Error; err != nil {
			httperr.NotFound(c, "client_not_found",
				fmt.Sprintf("Cliente não encontrado com ID: %s", id))
			return
		}
		httpresp.OK(c, mapClientToUser(&client))
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found",
			fmt.Sprintf("Barbeiro não encontrado com ID: %s", id))
		return
	}
	httpresp.OK(c, mapBarberToUser(&barber))
}

// ======================================================
// UPDATE
// ======================================================

func (h *UserHandler) Update(c *gin.Context) {
	userType, ok := resolveUserType(c)
	if !ok {
		return
	}

	id := c.Param("id")

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if userType == dto.UserTypeClient {
		h.updateClient(c, id, &req)
		return
	}
	h.updateBarber(c, id, &req)
}

func (h *UserHandler) updateClient(c *gin.Context, id string, req *UserUpdateRequest) {
	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.NotFound(c, "client_not_found",
			fmt.Sprintf("Cliente não encontrado com ID: %s", id))
		return
	}

	if req.Name != "" {
		client.Name = req.Name
	}
	if req.Email != "" {
		client.Email = validators.NormalizeEmail(req.Email)
	}
	if req.Phone != "" {
		client.Phone = req.Phone
	}

	if !h.applyPasswordChange(c, req, client.PasswordHash, func(hash string) {
		client.PasswordHash = hash
	}) {
		return
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	httpresp.OK(c, mapClientToUser(&client))
}

func (h *UserHandler) updateBarber(c *gin.Context, id string, req *UserUpdateRequest) {
	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found",
			fmt.Sprintf("Barbeiro não encontrado com ID: %s", id))
		return
	}

	if req.Name != "" {
		barber.Name = req.Name
	}
	if req.Email != "" {
		barber.Email = validators.NormalizeEmail(req.Email)
	}
	if req.Phone != "" {
		barber.Phone = req.Phone
	}
	if req.CPF != "" {
		barber.CPF = validators.NormalizeCPF(req.CPF)
	}
	if req.BirthDate != "" {
		birthDate, err := parseDate(req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		barber.BirthDate = birthDate
	}

	if !h.applyPasswordChange(c, req, barber.PasswordHash, func(hash string) {
		barber.PasswordHash = hash
	}) {
		return
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	httpresp.OK(c, mapBarberToUser(&barber))
}

// applyPasswordChange troca a senha quando new_password vem preenchido,
// exigindo a senha atual. Retorna false se já respondeu com erro.
func (h *UserHandler) applyPasswordChange(
	c *gin.Context,
	req *UserUpdateRequest,
	currentHash string,
	set func(string),
) bool {

	if strings.TrimSpace(req.NewPassword) == "" {
		return true
	}

	if strings.TrimSpace(req.CurrentPassword) == "" {
		httperr.BadRequest(c, "current_password_required",
			"Senha atual é obrigatória para definir uma nova senha")
		return false
	}

	if bcrypt.CompareHashAndPassword([]byte(currentHash), []byte(req.CurrentPassword)) != nil {
		httperr.BadRequest(c, "wrong_current_password", "Senha atual incorreta")
		return false
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar usuário.")
		return false
	}

	set(string(hashed))
	return true
}

// ======================================================
// DELETE
// ======================================================

func (h *UserHandler) Delete(c *gin.Context) {
	userType, ok := resolveUserType(c)
	if !ok {
		return
	}

	id := c.Param("id")

	if userType == dto.UserTypeClient {
		var client models.Client
		if err := h.db.First(&client, id).Error; err != nil {
			httperr.NotFound(c, "client_not_found",
				fmt.Sprintf("Cliente não encontrado com ID: %s", id))
			return
		}

		if err := h.db.Delete(&client).Error; err != nil {
			httperr.Internal(c, "failed_to_delete_user", "Erro inesperado ao deletar usuário")
			return
		}

		httpresp.OK(c, gin.H{"message": "Usuário deletado com sucesso"})
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found",
			fmt.Sprintf("Barbeiro não encontrado com ID: %s", id))
		return
	}

	h.deleteBarber(c, &barber)
}

// deleteBarber bloqueia a exclusão enquanto existir qualquer
// agendamento associado, independente do status.
func (h *UserHandler) deleteBarber(c *gin.Context, barber *models.Barber) {
	blocked, err := h.barberHasAppointments(barber.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Erro inesperado ao deletar usuário")
		return
	}
	if blocked {
		httperr.Conflict(c, "barber_has_appointments",
			"Não é possível deletar o barbeiro pois ele possui agendamentos associados.")
		return
	}

	if err := h.db.Delete(barber).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Erro inesperado ao deletar usuário")
		return
	}

	httpresp.OK(c, gin.H{"message": "Usuário deletado com sucesso"})
}
