package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vitalcare/clinic-api/internal/httperr"
	"github.com/vitalcare/clinic-api/internal/middleware"
	"github.com/vitalcare/clinic-api/internal/models"
)

// ProfileHandler resuelve el "self lookup" de las rutas /protected/*: el id
// sale del token, nunca de la URL.
type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

func (h *ProfileHandler) GetDoctor(c *gin.Context) {
	doctorID := c.MustGet(middleware.ContextUserID).(uint)

	var doctor models.Doctor
	if err := h.db.First(&doctor, doctorID).Error; err != nil {
		httperr.Unauthorized(c, "unknown_account", "Cuenta no encontrada.")
		return
	}

	c.JSON(http.StatusOK, doctor)
}

func (h *ProfileHandler) GetPatient(c *gin.Context) {
	patientID := c.MustGet(middleware.ContextUserID).(uint)

	var patient models.Patient
	if err := h.db.First(&patient, patientID).Error; err != nil {
		httperr.Unauthorized(c, "unknown_account", "Cuenta no encontrada.")
		return
	}

	c.JSON(http.StatusOK, patient)
}
