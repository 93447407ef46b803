package httpserver

import (
	"errors"
	"net/http"

	"guppyreal/internal/domain"
	catalogsvc "guppyreal/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func listBreedsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		breeds, err := svc.ListBreeds(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if breeds == nil {
			breeds = []domain.Breed{}
		}
		c.JSON(http.StatusOK, breeds)
	}
}

func createBreedHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalogsvc.BreedInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		b, err := svc.CreateBreed(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "breed name already exists"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

func updateBreedHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalogsvc.BreedInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		b, err := svc.UpdateBreed(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "breed not found"})
			case errors.Is(err, domain.ErrAlreadyExists):
				c.JSON(http.StatusConflict, gin.H{"error": "breed name already exists"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

func deleteBreedHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteBreed(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "breed not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
