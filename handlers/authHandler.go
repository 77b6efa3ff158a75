package handlers

import (
	"MediDesk/middlewares"
	"MediDesk/services"
	"MediDesk/utils"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	AuthService    services.AuthService
	PatientService services.PatientService
}

func NewAuthHandler(authService services.AuthService, patientService services.PatientService) *AuthHandler {
	return &AuthHandler{
		AuthService:    authService,
		PatientService: patientService,
	}
}

// Register handles public patient self-registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var input services.RegisterPatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	patient, err := h.PatientService.Register(c.Request.Context(), input)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}

	middlewares.RespondMessage(c, http.StatusCreated, "registration successful, please log in", "success", patient)
}

// Login authenticates the user and returns tokens along with the role so the
// client can route to the right dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.AuthService.Authenticate(c.Request.Context(), credentials.Username, credentials.Password)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(user.ID, user.Role)
	if err != nil {
		middlewares.HttpError(c, "Failed to generate tokens", http.StatusInternalServerError, err)
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)
	c.JSON(http.StatusOK, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"role":         user.Role,
		"message":      fmt.Sprintf("welcome, %s", user.Username),
		"category":     "success",
	})
}

// RefreshToken issues a fresh access token from a still-valid token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(principal.UserID, principal.Role)
	if err != nil {
		middlewares.HttpError(c, "Failed to generate access token", http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

// Logoff logs the user out by clearing cookies.
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	middlewares.RespondMessage(c, http.StatusOK, "logged out", "success", nil)
}

// GetProfile returns the authenticated user's account record.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	principal, err := principalFrom(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	user, err := h.AuthService.GetProfile(c.Request.Context(), principal)
	if err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SendResetCode emails a password reset code. The response is the same
// whether or not the email is registered.
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.AuthService.SendResetCode(c.Request.Context(), data.Email); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "if the email is registered, a reset code has been sent", "info", nil)
}

// ResetPassword sets a new password given a valid reset code.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.AuthService.ResetPassword(c.Request.Context(), data.Email, data.Code, data.NewPassword); err != nil {
		middlewares.RespondDomainError(c, err)
		return
	}
	middlewares.RespondMessage(c, http.StatusOK, "password updated, please log in", "success", nil)
}
