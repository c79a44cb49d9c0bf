package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barbermap/booking-api/internal/httperr"
	"github.com/barbermap/booking-api/internal/httpresp"
	"github.com/barbermap/booking-api/internal/middleware"
	ucAppointment "github.com/barbermap/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	cancelUC     *ucAppointment.ChangeStatus
	confirmUC    *ucAppointment.ChangeStatus
	completeUC   *ucAppointment.ChangeStatus
	findUC       *ucAppointment.FindAppointments
	slotsUC      *ucAppointment.GetAvailableSlots
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	cancelUC *ucAppointment.ChangeStatus,
	confirmUC *ucAppointment.ChangeStatus,
	completeUC *ucAppointment.ChangeStatus,
	findUC *ucAppointment.FindAppointments,
	slotsUC *ucAppointment.GetAvailableSlots,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		confirmUC:    confirmUC,
		completeUC:   completeUC,
		findUC:       findUC,
		slotsUC:      slotsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID     uint   `json:"client_id" binding:"required"`
	BarbershopID uint   `json:"barbershop_id" binding:"required"`
	BarberID     uint   `json:"barber_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func actorFromContext(c *gin.Context) ucAppointment.Actor {
	return ucAppointment.Actor{
		ID:   c.MustGet(middleware.ContextUserID).(uint),
		Type: c.MustGet(middleware.ContextUserRole).(string),
	}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(v), true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:     req.ClientID,
		BarbershopID: req.BarbershopID,
		BarberID:     req.BarberID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Actor:        actorFromContext(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// READS
// ======================================================

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.findUC.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseUintParam(c, "clientId")
	if !ok {
		return
	}

	list, err := h.findUC.ListByClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByBarbershop(c *gin.Context) {
	barbershopID, ok := parseUintParam(c, "barbershopId")
	if !ok {
		return
	}

	list, err := h.findUC.ListByBarbershop(c.Request.Context(), barbershopID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.rescheduleUC.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
		Actor:         actorFromContext(c),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Agendamento reagendado com sucesso",
		"appointment": updated,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, h.cancelUC, "Agendamento cancelado com sucesso")
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, h.confirmUC, "Agendamento confirmado")
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.changeStatus(c, h.completeUC, "Agendamento marcado como concluído")
}

func (h *AppointmentHandler) changeStatus(
	c *gin.Context,
	uc *ucAppointment.ChangeStatus,
	message string,
) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	updated, err := uc.Execute(c.Request.Context(), id, actorFromContext(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":     message,
		"appointment": updated,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	barbershopIDStr := c.Query("barbershop_id")
	dateStr := c.Query("date")

	if barbershopIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Barbearia e data são obrigatórios.")
		return
	}

	barbershopID, err := strconv.ParseUint(barbershopIDStr, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), uint(barbershopID), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, slots)
}
