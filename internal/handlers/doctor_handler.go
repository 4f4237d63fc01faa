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

type DoctorHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewDoctorHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *DoctorHandler {
	return &DoctorHandler{db: db, audit: dispatcher}
}

// --------- Requests ---------

type UpdateDoctorRequest struct {
	Password *string `json:"password,omitempty"`
	Email    *string `json:"email,omitempty"`
	WorkDays *string `json:"work_days,omitempty"`
	CenterID *uint   `json:"center_id,omitempty"`
}

// --------- Handlers ---------

func (h *DoctorHandler) List(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.Order("id ASC").Find(&doctors).Error; err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Error al listar médicos.")
		return
	}

	httpresp.OK(c, doctors)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var doctor models.Doctor
	if err := h.db.First(&doctor, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "doctor_not_found", "Médico no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_doctor", "Error al buscar médico.")
		return
	}

	var req UpdateDoctorRequest
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
		doctor.PasswordHash = string(hashed)
	}
	if req.Email != nil {
		doctor.Email = validators.NormalizeEmail(*req.Email)
	}
	if req.WorkDays != nil {
		doctor.WorkDays = *req.WorkDays
	}
	if req.CenterID != nil {
		doctor.CenterID = req.CenterID
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Error al actualizar médico.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorType: audit.ActorDoctor,
		ActorID:   &doctor.ID,
		Action:    "doctor_updated",
		Entity:    "doctor",
		EntityID:  &doctor.ID,
		RequestID: middleware.RequestID(c),
	})

	c.JSON(http.StatusOK, doctor)
}
