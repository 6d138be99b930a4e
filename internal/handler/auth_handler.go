package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/walker-cleaning/site-api/internal/application"
	"github.com/walker-cleaning/site-api/internal/platform/response"
)

// AuthHandler handles the admin login endpoint.
type AuthHandler struct {
	service *application.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *application.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes registers the admin login route.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/v1/admin/login", h.Login)
}

// Login handles POST /api/v1/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req application.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, err := h.service.Login(req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, session)
}
