package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barbermap/booking-api/internal/config"
	"github.com/barbermap/booking-api/internal/dto"
	"github.com/barbermap/booking-api/internal/models"
	"github.com/barbermap/booking-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token    string              `json:"token"`
	UserType string              `json:"user_type"`
	UserData dto.UserResponseDTO `json:"user_data"`
}

// --------- Handlers ---------

// Login resolve o e-mail primeiro entre clientes e depois entre
// barbeiros; os dois compartilham o mesmo namespace de e-mail.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var client models.Client
	if err := h.db.Where("email = ?", email).First(&client).Error; err == nil {
		if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials", "message": "Credenciais inválidas"})
			return
		}

		token, err := h.generateToken(client.ID, dto.UserTypeClient)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Token:    token,
			UserType: dto.UserTypeClient,
			UserData: mapClientToUser(&client),
		})
		return
	}

	var barber models.Barber
	if err := h.db.Where("email = ?", email).First(&barber).Error; err == nil {
		if bcrypt.CompareHashAndPassword([]byte(barber.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials", "message": "Credenciais inválidas"})
			return
		}

		token, err := h.generateToken(barber.ID, dto.UserTypeBarber)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Token:    token,
			UserType: dto.UserTypeBarber,
			UserData: mapBarberToUser(&barber),
		})
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials", "message": "Credenciais inválidas"})
}

// Logout é apenas o reconhecimento; o token é stateless.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
