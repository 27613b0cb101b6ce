package handlers

import (
	"errors"
	"net/http"

	"github.com/go-authgate/loginapi/internal/services"

	"github.com/gin-gonic/gin"
)

// Response messages returned in the "message" field
const (
	msgLoginSuccessful = "Login Successful"
	msgPasswordChanged = "Your password has been changed successfully!"
	msgUserNotFound    = "User not found"
	msgWrongPassword   = "Wrong Password"
	msgInvalidBody     = "Invalid request body"
	msgPasswordTooLong = "Password is too long"
	msgInternalError   = "Internal server error"
)

// CredentialRequest is the body of both /api/login and /api/forgot.
// Pointer fields let empty strings through while rejecting missing keys.
type CredentialRequest struct {
	Username *string `json:"username" binding:"required" example:"admin"`
	Password *string `json:"password" binding:"required" example:"12345678"`
}

// MessageResponse is the body of every /api response
type MessageResponse struct {
	Message string `json:"message" example:"Login Successful"`
}

type AuthHandler struct {
	credentialService *services.CredentialService
}

func NewAuthHandler(cs *services.CredentialService) *AuthHandler {
	return &AuthHandler{credentialService: cs}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Verify a username and password against the credential store. No token or session is issued.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CredentialRequest	true	"Credentials"
//	@Success		200		{object}	MessageResponse		"Login Successful"
//	@Failure		400		{object}	MessageResponse		"User not found, Wrong Password or Invalid request body"
//	@Failure		500		{object}	MessageResponse		"Internal server error"
//	@Router			/api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.credentialService.Verify(c.Request.Context(), *req.Username, *req.Password)
	switch {
	case err == nil:
		respond(c, http.StatusOK, msgLoginSuccessful)
	case errors.Is(err, services.ErrUserNotFound):
		respond(c, http.StatusBadRequest, msgUserNotFound)
	case errors.Is(err, services.ErrWrongPassword):
		respond(c, http.StatusBadRequest, msgWrongPassword)
	default:
		respond(c, http.StatusInternalServerError, msgInternalError)
	}
}

// Forgot godoc
//
//	@Summary		Reset password
//	@Description	Replace the password of an existing user. The current password is not required.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CredentialRequest	true	"Username and new password"
//	@Success		200		{object}	MessageResponse		"Your password has been changed successfully!"
//	@Failure		400		{object}	MessageResponse		"User not found, Password is too long or Invalid request body"
//	@Failure		500		{object}	MessageResponse		"Internal server error"
//	@Router			/api/forgot [post]
func (h *AuthHandler) Forgot(c *gin.Context) {
	var req CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, msgInvalidBody)
		return
	}

	err := h.credentialService.Rotate(c.Request.Context(), *req.Username, *req.Password)
	switch {
	case err == nil:
		respond(c, http.StatusOK, msgPasswordChanged)
	case errors.Is(err, services.ErrUserNotFound):
		respond(c, http.StatusBadRequest, msgUserNotFound)
	case errors.Is(err, services.ErrPasswordTooLong):
		respond(c, http.StatusBadRequest, msgPasswordTooLong)
	default:
		respond(c, http.StatusInternalServerError, msgInternalError)
	}
}

func respond(c *gin.Context, status int, message string) {
	c.JSON(status, MessageResponse{Message: message})
}
