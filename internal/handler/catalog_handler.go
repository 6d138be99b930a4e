package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/walker-cleaning/site-api/internal/application"
	"github.com/walker-cleaning/site-api/internal/platform/auth"
	"github.com/walker-cleaning/site-api/internal/platform/middleware"
	"github.com/walker-cleaning/site-api/internal/platform/response"
)

// CatalogHandler handles HTTP requests for the cleaning services and
// packages catalog.
type CatalogHandler struct {
	service *application.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *application.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers the public catalog reads and the admin CRUD.
func (h *CatalogHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	public := r.Group("/api/v1")
	{
		public.GET("/services", h.ListServices)
		public.GET("/services/:id", h.GetService)
		public.GET("/packages", h.ListPackages)
		public.GET("/packages/:id", h.GetPackage)
	}

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.RequireAdmin(jwtManager))
	{
		admin.POST("/services", h.CreateService)
		admin.PUT("/services/:id", h.UpdateService)
		admin.DELETE("/services/:id", h.DeleteService)
		admin.POST("/packages", h.CreatePackage)
		admin.PUT("/packages/:id", h.UpdatePackage)
		admin.DELETE("/packages/:id", h.DeletePackage)
	}
}

// ListServices handles GET /api/v1/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	result, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetService handles GET /api/v1/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateService handles POST /api/v1/admin/services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var input application.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateService(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateService handles PUT /api/v1/admin/services/:id.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input application.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateService(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteService handles DELETE /api/v1/admin/services/:id.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}

// ListPackages handles GET /api/v1/packages.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	result, err := h.service.ListPackages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetPackage handles GET /api/v1/packages/:id.
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.service.GetPackage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreatePackage handles POST /api/v1/admin/packages.
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var input application.PackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreatePackage(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdatePackage handles PUT /api/v1/admin/packages/:id.
func (h *CatalogHandler) UpdatePackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input application.PackageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdatePackage(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeletePackage handles DELETE /api/v1/admin/packages/:id.
func (h *CatalogHandler) DeletePackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePackage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}
