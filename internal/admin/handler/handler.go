package handler

import (
	"net/http"

	"engage-server/internal/actor"
	"engage-server/internal/admin/processor"
	"engage-server/internal/apierrors"
	"engage-server/internal/observability"
	"engage-server/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AdminProcessor
	logger    *observability.Logger
}

func New(processor processor.AdminProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateUserRequest struct {
	Email           string `json:"email" binding:"required,email"`
	FullName        string `json:"full_name" binding:"required,max=120"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
	Role            string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	FullName        *string `json:"full_name,omitempty" binding:"omitempty,max=120"`
	Role            *string `json:"role,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
	Password        *string `json:"password,omitempty" binding:"omitempty,min=8"`
	ConfirmPassword *string `json:"confirm_password,omitempty"`
}

func (h *Handler) HandleCreateUser(c *gin.Context) {
	a, ok := h.getActor(c)
	if !ok {
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	user, err := h.processor.CreateUser(c.Request.Context(), a, processor.CreateUserRequest{
		Email:           req.Email,
		FullName:        req.FullName,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) HandleListUsers(c *gin.Context) {
	page := pagination.FromQuery(c)
	result, err := h.processor.ListUsers(c.Request.Context(), processor.ListUsersRequest{
		Page:     page.Page,
		PageSize: page.PageSize,
		Search:   c.Query("search"),
		Role:     c.Query("role"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) HandleGetUser(c *gin.Context) {
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	user, err := h.processor.GetUser(c.Request.Context(), userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) HandleUpdateUser(c *gin.Context) {
	a, ok := h.getActor(c)
	if !ok {
		return
	}
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	user, err := h.processor.UpdateUser(c.Request.Context(), a, userID, processor.UpdateUserRequest{
		FullName:        req.FullName,
		Role:            req.Role,
		IsActive:        req.IsActive,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) HandleDeleteUser(c *gin.Context) {
	a, ok := h.getActor(c)
	if !ok {
		return
	}
	userID, ok := h.getUserID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteUser(c.Request.Context(), a, userID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) HandleListRoles(c *gin.Context) {
	roles, err := h.processor.ListRoles(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roles": roles})
}

func (h *Handler) HandleGetPermissions(c *gin.Context) {
	matrix, err := h.processor.GetPermissionMatrix(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, matrix)
}

// HandleListAuditLogs lists audit rows filtered by resource and actor
func (h *Handler) HandleListAuditLogs(c *gin.Context) {
	page := pagination.FromQuery(c)
	req := processor.ListAuditLogsRequest{
		Page:         page.Page,
		PageSize:     page.PageSize,
		ResourceType: c.Query("resource_type"),
		ResourceID:   c.Query("resource_id"),
	}
	if raw := c.Query("actor_id"); raw != "" {
		actorID, err := uuid.Parse(raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid actor ID format"))
			return
		}
		req.ActorID = &actorID
	}

	result, err := h.processor.ListAuditLogs(c.Request.Context(), req)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) getActor(c *gin.Context) (actor.Actor, bool) {
	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return actor.Actor{}, false
	}
	return a, true
}

func (h *Handler) getUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return uuid.UUID{}, false
	}
	return userID, true
}
