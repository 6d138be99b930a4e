package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/walker-cleaning/site-api/internal/application"
	"github.com/walker-cleaning/site-api/internal/platform/auth"
	"github.com/walker-cleaning/site-api/internal/platform/middleware"
	"github.com/walker-cleaning/site-api/internal/platform/response"
)

// SettingsHandler handles HTTP requests for the site appearance settings.
type SettingsHandler struct {
	service *application.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service *application.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// RegisterRoutes registers the public settings read and the admin write.
func (h *SettingsHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	r.GET("/api/v1/settings", h.GetSettings)

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.RequireAdmin(jwtManager))
	{
		admin.PUT("/settings", h.UpdateSettings)
	}
}

// GetSettings handles GET /api/v1/settings. Always answers 200 so the public
// site can render with defaults even when the store is down.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	response.Success(c, h.service.GetSettings(c.Request.Context()))
}

// UpdateSettings handles PUT /api/v1/admin/settings. Omitted fields stay
// untouched; fields present but empty are cleared.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req application.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
