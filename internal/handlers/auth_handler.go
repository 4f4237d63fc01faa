package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vitalcare/clinic-api/internal/audit"
	"github.com/vitalcare/clinic-api/internal/config"
	"github.com/vitalcare/clinic-api/internal/httperr"
	"github.com/vitalcare/clinic-api/internal/middleware"
	"github.com/vitalcare/clinic-api/internal/models"
	"github.com/vitalcare/clinic-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, audit: dispatcher}
}

// --------- Requests ---------

type RegisterDoctorRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`

	Specialty string `json:"specialty"`
	CenterID  *uint  `json:"center_id"`
	WorkDays  string `json:"work_days"`
}

type RegisterPatientRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`

	AssignDoctor *uint `json:"assign_doctor"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Register ---------

func (h *AuthHandler) RegisterDoctor(c *gin.Context) {
	var req RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "email, password, nombre y apellido son requeridos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var count int64
	if err := h.db.Model(&models.Doctor{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Error al registrar.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "This user already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error al registrar.")
		return
	}

	doctor := models.Doctor{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Specialty:    req.Specialty,
		CenterID:     req.CenterID,
		WorkDays:     req.WorkDays,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Error al registrar.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorType: audit.ActorDoctor,
		ActorID:   &doctor.ID,
		Action:    "doctor_registered",
		Entity:    "doctor",
		EntityID:  &doctor.ID,
		RequestID: middleware.RequestID(c),
	})

	c.JSON(http.StatusCreated, doctor)
}

func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Todos los campos principales (email, password, nombre, apellido, fecha) son requeridos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var count int64
	if err := h.db.Model(&models.Patient{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Error al registrar.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_registered", "This user already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error al registrar.")
		return
	}

	patient := models.Patient{
		Email:          email,
		PasswordHash:   string(hashed),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		BirthDate:      req.BirthDate,
		AssignDoctorID: req.AssignDoctor,
		Active:         true,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Error al registrar.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorType: audit.ActorPatient,
		ActorID:   &patient.ID,
		Action:    "patient_registered",
		Entity:    "patient",
		EntityID:  &patient.ID,
		RequestID: middleware.RequestID(c),
	})

	c.JSON(http.StatusCreated, patient)
}

// --------- Login ---------

// El 401 es idéntico para email desconocido y contraseña errónea; no se
// revela cuál de los dos falló.

func (h *AuthHandler) LoginDoctor(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "email y password son requeridos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var doctor models.Doctor
	if err := h.db.Where("email = ?", email).First(&doctor).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Bad username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Bad username or password")
		return
	}

	token, err := h.generateToken(doctor.ID, middleware.RoleDoctor)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error al iniciar sesión.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorType: audit.ActorDoctor,
		ActorID:   &doctor.ID,
		Action:    "doctor_logged_in",
		Entity:    "doctor",
		EntityID:  &doctor.ID,
		RequestID: middleware.RequestID(c),
	})

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user_id": doctor.ID,
	})
}

func (h *AuthHandler) LoginPatient(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "email y password son requeridos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var patient models.Patient
	if err := h.db.Where("email = ?", email).First(&patient).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Bad username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Bad username or password")
		return
	}

	token, err := h.generateToken(patient.ID, middleware.RolePatient)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error al iniciar sesión.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorType: audit.ActorPatient,
		ActorID:   &patient.ID,
		Action:    "patient_logged_in",
		Entity:    "patient",
		EntityID:  &patient.ID,
		RequestID: middleware.RequestID(c),
	})

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user_id": patient.ID,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(id uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  id,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
