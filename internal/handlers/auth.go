package handlers

import (
	"errors"
	"net/http"

	"github.com/Monishapmj/book-review-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errCredentialsRequired = "Username and password required"
	errUserExists          = "Username already exists"
	errInvalidCredentials  = "Invalid credentials"

	msgUserRegistered = "User registered"

	// Stated token lifetime, returned verbatim alongside the token.
	tokenLifetime = "24h"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Credentials"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /users/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	user, err := h.services.Register(req.Username, req.Password, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			respondError(c, http.StatusBadRequest, errCredentialsRequired)
		case errors.Is(err, service.ErrUserExists):
			respondError(c, http.StatusConflict, errUserExists)
		default:
			if h.log != nil {
				h.log.Errorw("user_register_failed", "username", req.Username, "err", err)
			}
			respondError(c, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}
	respondDataMsg(c, http.StatusCreated, user, msgUserRegistered)
}

// @Summary      Log in
// @Description  Returns a bearer token valid for 24 hours.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "token, expiresIn"
// @Failure      401  {object}  map[string]interface{}
// @Router       /users/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}

	token, err := h.services.GenerateToken(req.Username, req.Password)
	if err != nil {
		// Uniform message: no hint whether the user exists.
		if h.log != nil {
			h.log.Infow("user_login_failed", "username", req.Username)
		}
		respondError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     token,
		"expiresIn": tokenLifetime,
	})
}
