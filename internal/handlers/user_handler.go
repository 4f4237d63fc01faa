package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vitalcare/clinic-api/internal/httperr"
	"github.com/vitalcare/clinic-api/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetUser ignora cualquier parámetro y devuelve el primer usuario de la
// tabla, igual que el endpoint heredado. Nadie ha confirmado todavía para
// qué lo usa el front.
func (h *UserHandler) GetUser(c *gin.Context) {
	var user models.User
	if err := h.db.Order("id ASC").First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}
