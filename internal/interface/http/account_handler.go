package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/coinfollow/coinfollow-api/internal/application"
	"github.com/coinfollow/coinfollow-api/pkg/response"
	"github.com/coinfollow/coinfollow-api/pkg/validation"
)

type AccountHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /api/signup
func (h *AccountHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)))
		return
	}

	view, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrDuplicateIdentity):
			response.JSON(c, response.Error[any](c, http.StatusConflict, "email or username already exists", nil))
		case errors.Is(err, application.ErrInvalidArgument):
			response.JSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", nil))
		default:
			response.JSON(c, response.Error[any](c, http.StatusInternalServerError, "error creating user", nil))
		}
		return
	}

	response.JSON(c, response.Success(c, http.StatusCreated, gin.H{"user": view}, "user created", nil))
}

// Login POST /api/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)))
		return
	}

	view, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidCredentials):
			response.JSON(c, response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil))
		case errors.Is(err, application.ErrInvalidArgument):
			response.JSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", nil))
		default:
			response.JSON(c, response.Error[any](c, http.StatusInternalServerError, "error logging in", nil))
		}
		return
	}

	response.JSON(c, response.Success(c, http.StatusOK, gin.H{"user": view}, "login successful", nil))
}
