package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/services"
)

// AuthController handles registration, login and password resets
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles creating a new account
func (ac *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendInvalid(w, "Invalid JSON: "+err.Error())
		return
	}

	user, err := ac.authService.Register(input)
	if err != nil {
		sendError(w, err, "User not found")
		return
	}
	sendJSON(w, http.StatusCreated, envelope{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles credential verification and token issuance
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendInvalid(w, "Invalid JSON: "+err.Error())
		return
	}

	token, user, err := ac.authService.Login(input.Email, input.Password)
	if err != nil {
		sendError(w, err, "User not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// ForgotPassword generates a reset token for the account
func (ac *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendInvalid(w, "Invalid JSON: "+err.Error())
		return
	}

	token, err := ac.authService.ForgotPassword(input.Email)
	if err != nil {
		sendError(w, err, "User not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success":    true,
		"message":    "Reset token generated",
		"resetToken": token,
	})
}

// ResetPassword sets a new password using a reset token
func (ac *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendInvalid(w, "Invalid JSON: "+err.Error())
		return
	}

	if err := ac.authService.ResetPassword(input.Token, input.Password); err != nil {
		sendError(w, err, "User not found")
		return
	}
	sendJSON(w, http.StatusOK, envelope{
		"success": true,
		"message": "Password reset successfully",
	})
}
