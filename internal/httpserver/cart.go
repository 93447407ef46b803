package httpserver

import (
	"errors"
	"net/http"

	"guppyreal/internal/domain"
	ordersvc "guppyreal/internal/service/order"
	"guppyreal/internal/share"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type cartResponse struct {
	Lines        []domain.CartLine `json:"lines"`
	FishSubtotal decimal.Decimal   `json:"fishSubtotal"`
	ShippingFee  decimal.Decimal   `json:"shippingFee"`
	GrandTotal   decimal.Decimal   `json:"grandTotal"`
}

type addCartItemRequest struct {
	BreedID string `json:"breedId" binding:"required"`
	Unit    string `json:"unit" binding:"required"`
}

type summaryResponse struct {
	Text  string      `json:"text"`
	Links share.Links `json:"links"`
}

func toCartResponse(cart ordersvc.Cart, settings domain.Settings) cartResponse {
	lines := cart.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return cartResponse{
		Lines:        lines,
		FishSubtotal: cart.FishSubtotal(),
		ShippingFee:  settings.ShippingFee,
		GrandTotal:   cart.GrandTotal(settings.ShippingFee),
	}
}

func getCartHandler(orders *ordersvc.Service, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := catalog.Settings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(orders.View(sessionToken(c)), settings))
	}
}

// addCartItemHandler resolves the breed and captures its current price for the
// chosen unit; the price stays frozen on the line from then on.
func addCartItemHandler(orders *ordersvc.Service, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		unit, err := domain.ParseUnitKind(req.Unit)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		b, err := catalog.GetBreed(c.Request.Context(), req.BreedID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "breed not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		token := sessionToken(c)
		orders.AddItem(token, b.Name, unit, b.PriceFor(unit))

		settings, err := catalog.Settings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(orders.View(token), settings))
	}
}

func removeCartLineHandler(orders *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders.RemoveLine(sessionToken(c), c.Param("lineId"))
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(orders *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders.Clear(sessionToken(c))
		c.Status(http.StatusNoContent)
	}
}

// cartSummaryHandler renders the order message. An empty cart yields empty
// text and no links; that is the defined empty case, not an error.
func cartSummaryHandler(orders *ordersvc.Service, catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := catalog.Settings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		text := orders.View(sessionToken(c)).Summary(settings)
		c.JSON(http.StatusOK, summaryResponse{Text: text, Links: share.ForText(text)})
	}
}
