package httpserver

import (
	"errors"
	"net/http"

	"guppyreal/internal/domain"
	"github.com/gin-gonic/gin"
)

func getSettingsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := svc.Settings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// saveSettingsHandler creates the settings record on first save and updates it
// afterwards; the branch is taken on the presence of an id in the payload.
func saveSettingsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.Settings
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		saved, err := svc.SaveSettings(c.Request.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "settings not found"})
			case errors.Is(err, domain.ErrAlreadyExists):
				c.JSON(http.StatusConflict, gin.H{"error": "settings already exist"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}
