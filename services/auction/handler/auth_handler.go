package handler

import (
	"fmt"
	"net/http"
	"time"

	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type AuthServiceInterface interface {
	Register(username, password string) (model.User, error)
	Login(username, password string) (model.Session, error)
	Authenticate(token string) (string, error)
	Logout(token string) error
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterHandler handles POST /register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterHandler: failed to register user", map[string]any{
			"handler":  "RegisterHandler",
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	resp := gin.H{
		"user_id":  user.UserID,
		"username": user.Username,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}

// LoginHandler handles POST /login. Failures use one uniform message so the
// response does not reveal whether the username exists.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	session, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{
			"handler": "LoginHandler",
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"username": session.Username,
	})
}

// LogoutHandler handles POST /logout
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if err := h.service.Logout(token); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LogoutHandler: logout failed", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "logged out successfully")
	helpers.LogSuccess("LogoutHandler", "logged out successfully", map[string]any{})
}
