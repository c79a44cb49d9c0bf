package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbermap/booking-api/internal/httperr"
	"github.com/barbermap/booking-api/internal/httpresp"
	"github.com/barbermap/booking-api/internal/models"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarbershopRequest struct {
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address" binding:"required"`
	CEP       string   `json:"cep"`
	Phone     string   `json:"phone"`
	Hours     string   `json:"hours"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type AddServiceRequest struct {
	Name     string  `json:"name" binding:"required"`
	Duration int     `json:"duration" binding:"required"`
	Price    float64 `json:"price"`
}

type BarbershopSummary struct {
	ID       uint     `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	CEP      string   `json:"cep"`
	Rating   float64  `json:"rating"`
	Reviews  int      `json:"reviews"`
	Services []string `json:"services"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BarbershopHandler) List(c *gin.Context) {
	var shops []models.Barbershop
	if err := h.db.Preload("Services").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Erro ao listar barbearias.")
		return
	}

	out := make([]BarbershopSummary, 0, len(shops))
	for _, shop := range shops {
		names := make([]string, 0, len(shop.Services))
		for _, svc := range shop.Services {
			names = append(names, svc.Name)
		}

		out = append(out, BarbershopSummary{
			ID:       shop.ID,
			Name:     shop.Name,
			Address:  shop.Address,
			CEP:      shop.CEP,
			Rating:   shop.Rating,
			Reviews:  shop.Reviews,
			Services: names,
		})
	}

	httpresp.List(c, out)
}

func (h *BarbershopHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	var shop models.Barbershop
	if err := h.db.Preload("Services").First(&shop, id).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) Create(c *gin.Context) {
	var req CreateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Barbershop{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barbershop", "Erro ao criar barbearia.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "barbershop_name_in_use", "Nome de barbearia já cadastrado")
		return
	}

	shop := models.Barbershop{
		Name:      req.Name,
		Address:   req.Address,
		CEP:       req.CEP,
		Phone:     req.Phone,
		Hours:     req.Hours,
		Rating:    0,
		Reviews:   0,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barbershop", "Erro ao criar barbearia.")
		return
	}

	httpresp.Created(c, shop)
}

func (h *BarbershopHandler) AddService(c *gin.Context) {
	id := c.Param("id")

	var shop models.Barbershop
	if err := h.db.First(&shop, id).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada")
		return
	}

	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Duration <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração deve ser maior que zero.")
		return
	}

	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
		return
	}

	service := models.Service{
		BarbershopID: shop.ID,
		Name:         req.Name,
		DurationMin:  req.Duration,
		Price:        req.Price,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, service)
}
