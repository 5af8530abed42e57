package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/services"
	"github.com/oubasys/portfolio/internal/utils"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "email and password are required", err))
		return
	}

	out, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) Register(c *gin.Context) {
	writeError(c, h.svc.Register(c.Request.Context()))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID, _ := c.Get("token_id")
	expiresAt, _ := c.Get("token_expires_at")

	id, _ := tokenID.(string)
	exp, _ := expiresAt.(time.Time)

	if err := h.svc.Logout(c.Request.Context(), id, exp); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// CurrentUser answers the auth probe the dashboard runs on startup.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	email, _ := c.Get("user_email")
	role, _ := c.Get("role")

	emailStr, _ := email.(string)
	roleStr, _ := role.(string)
	if emailStr == "" {
		writeError(c, utils.E(utils.CodeUnauthorized, "AuthHandler.CurrentUser", "unauthorized", nil))
		return
	}

	c.JSON(http.StatusOK, models.User{Email: emailStr, Role: models.UserRole(roleStr)})
}
