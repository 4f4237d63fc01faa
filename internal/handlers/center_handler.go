package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vitalcare/clinic-api/internal/cache"
	"github.com/vitalcare/clinic-api/internal/config"
	"github.com/vitalcare/clinic-api/internal/httperr"
	"github.com/vitalcare/clinic-api/internal/httpresp"
	"github.com/vitalcare/clinic-api/internal/middleware"
	"github.com/vitalcare/clinic-api/internal/models"
	ucCenter "github.com/vitalcare/clinic-api/internal/usecase/center"
)

const centersCacheKey = "centers:all"

type CenterHandler struct {
	db     *gorm.DB
	cache  *cache.Cache
	seedUC *ucCenter.SeedCenters
	config *config.Config
}

func NewCenterHandler(
	db *gorm.DB,
	cch *cache.Cache,
	seedUC *ucCenter.SeedCenters,
	cfg *config.Config,
) *CenterHandler {
	return &CenterHandler{
		db:     db,
		cache:  cch,
		seedUC: seedUC,
		config: cfg,
	}
}

// --------- Requests ---------

type CreateCenterRequest struct {
	Name       string `json:"name" binding:"required"`
	Address    string `json:"address"`
	ZipCode    string `json:"zip_code"`
	Phone      string `json:"phone"`
	TypeCenter string `json:"type_center"`
}

type SeedCentersRequest struct {
	URL string `json:"url"`
}

// --------- Handlers ---------

func (h *CenterHandler) List(c *gin.Context) {
	var centers []models.Center

	if h.cache.GetJSON(c.Request.Context(), centersCacheKey, &centers) {
		httpresp.OK(c, centers)
		return
	}

	if err := h.db.Order("id ASC").Find(&centers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_centers", "Error al listar centros.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), centersCacheKey, centers)

	httpresp.OK(c, centers)
}

// Create inserta sin mirar duplicados. El seed sí deduplica por
// (name, address); la asimetría es heredada y se mantiene
// hasta que se decida unificar.
func (h *CenterHandler) Create(c *gin.Context) {
	var req CreateCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "name es requerido.")
		return
	}

	center := models.Center{
		Name:       req.Name,
		Address:    req.Address,
		ZipCode:    req.ZipCode,
		Phone:      req.Phone,
		TypeCenter: req.TypeCenter,
	}

	if err := h.db.Create(&center).Error; err != nil {
		httperr.Internal(c, "failed_to_create_center", "Error al crear centro.")
		return
	}

	h.cache.Delete(c.Request.Context(), centersCacheKey)

	httpresp.Created(c, center)
}

func (h *CenterHandler) SeedNavarra(c *gin.Context) {
	var req SeedCentersRequest
	// El cuerpo es opcional; sin url se usa el feed por defecto.
	_ = c.ShouldBindJSON(&req)

	url := req.URL
	if url == "" {
		url = h.config.NavarraFeedURL
	}

	created, err := h.seedUC.Execute(c.Request.Context(), url, middleware.RequestID(c))
	if err != nil {
		httperr.Internal(c, "seed_failed", "Error al seedear centros: "+err.Error())
		return
	}

	h.cache.Delete(c.Request.Context(), centersCacheKey)

	httpresp.Created(c, gin.H{
		"inserted": len(created),
		"items":    created,
	})
}
