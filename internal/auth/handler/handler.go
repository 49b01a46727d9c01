package handler

import (
	"net/http"
	"strings"

	"engage-server/internal/actor"
	"engage-server/internal/apierrors"
	"engage-server/internal/auth/processor"
	"engage-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

type EmailLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleEmailLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req EmailLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleForgotPassword always answers 202 so callers cannot probe which
// emails have accounts.
func (h *Handler) HandleForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	h.authProcessor.ForgotPassword(c.Request.Context(), req.Email)
	c.JSON(http.StatusAccepted, gin.H{"message": "If an account exists for that email, a reset link has been sent."})
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")
	a, err := h.authProcessor.Authenticate(ctx, tokenString)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	actor.Set(c, a)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "actor_id", Value: a.ID.String()},
		observability.Field{Key: "actor_role", Value: a.Role},
	))
	c.Next()
}

// RequireRole lets the request through only when the authenticated actor
// holds one of roles. It must run after HandleJWTMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		a, ok := actor.FromGin(c)
		if !ok {
			apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
			return
		}
		if !allowed[a.Role] {
			apierrors.RespondWithError(c, apierrors.Forbidden(apierrors.CodeForbidden, "You do not have permission to perform this action"))
			return
		}
		c.Next()
	}
}

func (h *Handler) GetUserInfo(c *gin.Context) {
	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	user, err := h.authProcessor.GetUser(c.Request.Context(), a.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
