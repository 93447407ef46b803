package httpserver

import (
	"errors"
	"net/http"

	"guppyreal/internal/domain"
	authsvc "guppyreal/internal/service/auth"
	ordersvc "guppyreal/internal/service/order"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionResponse struct {
	User      domain.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn"`
}

func registerHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req authsvc.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		u, token, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, sessionResponse{User: *u, Token: token, ExpiresIn: svc.SessionTTLSeconds()})
	}
}

func loginHandler(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		u, token, err := svc.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, sessionResponse{User: *u, Token: token, ExpiresIn: svc.SessionTTLSeconds()})
	}
}

// logoutHandler revokes the session and discards its cart.
func logoutHandler(svc AuthService, orders *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if err := svc.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		orders.Drop(token)
		c.Status(http.StatusNoContent)
	}
}

func meHandler(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	c.JSON(http.StatusOK, u)
}
