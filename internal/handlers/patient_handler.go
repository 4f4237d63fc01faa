package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vitalcare/clinic-api/internal/audit"
	"github.com/vitalcare/clinic-api/internal/httperr"
	"github.com/vitalcare/clinic-api/internal/httpresp"
	"github.com/vitalcare/clinic-api/internal/middleware"
	"github.com/vitalcare/clinic-api/internal/models"
	"github.com/vitalcare/clinic-api/internal/validators"
)

type PatientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPatientHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *PatientHandler {
	return &PatientHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type UpdatePatientRequest struct {
	Password     *string `json:"password,omitempty"`
	Email        *string `json:"email,omitempty"`
	AssignDoctor *uint   `json:"assign_doctor,omitempty"`
}

// --------- Handlers ---------

func (h *PatientHandler) List(c *gin.Context) {
	var patients []models.Patient
	if err := h.db.Order("id ASC").Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Error al listar pacientes.")
		return
	}

	httpresp.OK(c, patients)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.First(&patient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "patient_not_found", "Paciente no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", "Error al buscar paciente.")
		return
	}

	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Error al actualizar.")
			return
		}
		patient.PasswordHash = string(hashed)
	}
	if req.Email != nil {
		patient.Email = validators.NormalizeEmail(*req.Email)
	}
	if req.AssignDoctor != nil {
		patient.AssignDoctorID = req.AssignDoctor
	}

	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Error al actualizar paciente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorType: audit.ActorPatient,
		ActorID:   &patient.ID,
		Action:    "patient_updated",
		Entity:    "patient",
		EntityID:  &patient.ID,
		RequestID: middleware.RequestID(c),
	})

	c.JSON(http.StatusOK, patient)
}

// SetInactive es la baja del paciente: la fila nunca se borra, solo se apaga
// el flag. Las citas existentes no se tocan.
func (h *PatientHandler) SetInactive(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.First(&patient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "patient_not_found", "Paciente no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", "Error al buscar paciente.")
		return
	}

	patient.Active = false

	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Error al dar de baja.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorType: audit.ActorPatient,
		ActorID:   &patient.ID,
		Action:    "patient_deactivated",
		Entity:    "patient",
		EntityID:  &patient.ID,
		RequestID: middleware.RequestID(c),
	})

	c.JSON(http.StatusOK, patient)
}

// Dashboard conserva el comportamiento heredado: con id
// desconocido responde 404 y con id válido no devuelve cuerpo. Pendiente de
// confirmar con el equipo del front qué debería devolver.
func (h *PatientHandler) Dashboard(c *gin.Context) {
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.First(&patient, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "patient_not_found", "Paciente no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_patient", "Error al buscar paciente.")
		return
	}

	c.Status(http.StatusNoContent)
}
