package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yemenhybrid/workshop-go/internal/api/middleware"
	"github.com/yemenhybrid/workshop-go/internal/application"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/pkg/response"
)

const tokenDuration = 7 * 24 * time.Hour

type AuthHandler struct {
	svc *application.UserService
}

func NewAuthHandler(svc *application.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.svc.Register(input)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := middleware.GenerateToken(u, tokenDuration)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, response.TokenResponse{
		Token:             token,
		UserID:            u.ID,
		Username:          u.Username,
		FullName:          u.FullName,
		Role:              string(u.Role),
		PreferredLanguage: string(u.PreferredLanguage),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	u, token, err := h.svc.Login(input)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid username or password"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:             token,
		UserID:            u.ID,
		Username:          u.Username,
		FullName:          u.FullName,
		Role:              string(u.Role),
		PreferredLanguage: string(u.PreferredLanguage),
	})
}

// ForgotPassword always answers the same way so callers cannot probe
// which emails have accounts. The issued token is logged for the
// operator to deliver out of band.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input user.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.svc.ForgotPassword(input); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to process request"})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{
		Message: "If the email is registered, a reset token has been issued",
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input user.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.ResetPassword(input); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password reset successfully"})
}
