package handlers

import (
	"net/http"

	"ycsmatch_backend/internal/middleware"
	"ycsmatch_backend/internal/models"
	"ycsmatch_backend/internal/services"
	"ycsmatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

// RegisterRoutes wires the admin-only mail template configuration endpoints.
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/notification-settings", h.GetSettings)
		admin.POST("/notification-settings", h.SaveSettings)
	}
}

func (h *NotificationHandler) GetSettings(c *gin.Context) {
	response, err := h.notificationService.GetSettings()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *NotificationHandler) SaveSettings(c *gin.Context) {
	var req dto.SaveSettingsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.notificationService.SaveSettings(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
