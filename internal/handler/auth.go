package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/middleware"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/service"
)

type AuthHandler struct {
	Auth         *service.AuthService
	CookieMaxAge int
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and sets the session cookie. Unknown email and
// wrong password produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		writeError(c, err, "Failed to log in")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, h.CookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
