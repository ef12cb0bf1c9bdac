package handlers

import (
	"net/http"

	"ycsmatch_backend/internal/middleware"
	"ycsmatch_backend/internal/models"
	"ycsmatch_backend/internal/search"
	"ycsmatch_backend/internal/services"
	"ycsmatch_backend/internal/services/dto"
	"ycsmatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes wires the member directory and the admin user management
// endpoints. Everything here requires a valid token; the admin group also
// requires the admin role.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authed := rg.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/me", h.GetCurrentUser)
		authed.GET("/members", h.ListMembers)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/users", h.AdminListUsers)
		admin.PUT("/users/:userId/role", h.AdminUpdateRole)
		admin.DELETE("/users/:userId", h.AdminDeleteUser)
	}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ListMembers returns the directory, narrowed by industry/region/skill/interest
// query filters when present.
func (h *UserHandler) ListMembers(c *gin.Context) {
	var filters search.Filters
	if !h.BindAndValidate_Query(c, &filters) {
		return
	}

	response, err := h.userService.ListMembers(filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) AdminListUsers(c *gin.Context) {
	var filters search.Filters
	if !h.BindAndValidate_Query(c, &filters) {
		return
	}

	response, err := h.userService.ListMembers(filters)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *UserHandler) AdminUpdateRole(c *gin.Context) {
	actingUserID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	targetUserID, err := ParseParamUint(c, "userId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	var req dto.UpdateRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.userService.UpdateRole(actingUserID, targetUserID, req.Role); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *UserHandler) AdminDeleteUser(c *gin.Context) {
	actingUserID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	targetUserID, err := ParseParamUint(c, "userId")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	if err := h.userService.Delete(actingUserID, targetUserID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
