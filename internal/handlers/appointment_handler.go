package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitalcare/clinic-api/internal/httperr"
	"github.com/vitalcare/clinic-api/internal/middleware"
	ucAppointment "github.com/vitalcare/clinic-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	cancelUC *ucAppointment.CancelAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DoctorID        uint   `json:"doctor_id" binding:"required"`
	PatientID       *uint  `json:"patient_id"`
	CenterID        *uint  `json:"center_id"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate *string `json:"appointment_date,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "doctor_id y appointment_date son requeridos para pedir cita.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		CenterID:        req.CenterID,
		AppointmentDate: req.AppointmentDate,
		RequestID:       middleware.RequestID(c),
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_appointment_date") {
			httperr.BadRequest(c, "invalid_appointment_date", "Formato de fecha inválido (DD-MM-YYYY HH:MM).")
			return
		}
		if httperr.IsBusiness(err, "doctor_not_found") {
			httperr.BadRequest(c, "doctor_not_found", "Médico no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Error al crear la cita.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID:   id,
		AppointmentDate: req.AppointmentDate,
		Status:          req.Status,
		RequestID:       middleware.RequestID(c),
	})
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
			return
		}
		if httperr.IsBusiness(err, "invalid_appointment_date") {
			httperr.BadRequest(c, "invalid_appointment_date", "Formato de fecha inválido (DD-MM-YYYY HH:MM).")
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Error al actualizar la cita.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, middleware.RequestID(c))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Error al cancelar la cita.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
