package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"guppyreal/internal/domain"
	authsvc "guppyreal/internal/service/auth"
	catalogsvc "guppyreal/internal/service/catalog"
	ordersvc "guppyreal/internal/service/order"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	SessionTTLSeconds() int
}

// CatalogService is the slice of the catalog service the handlers need.
type CatalogService interface {
	ListBreeds(ctx context.Context) ([]domain.Breed, error)
	GetBreed(ctx context.Context, id string) (*domain.Breed, error)
	CreateBreed(ctx context.Context, in catalogsvc.BreedInput) (*domain.Breed, error)
	UpdateBreed(ctx context.Context, id string, in catalogsvc.BreedInput) (*domain.Breed, error)
	DeleteBreed(ctx context.Context, id string) error
	Settings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, in domain.Settings) (*domain.Settings, error)
}

// Deps carries the services the router wires handlers to. OrderSvc is the
// concrete in-memory cart registry; it has no I/O to stub.
type Deps struct {
	AuthSvc    AuthService
	CatalogSvc CatalogService
	OrderSvc   *ordersvc.Service
}

type ctxKey string

const (
	userCtxKey    ctxKey = "currentUser"
	sessionCtxKey ctxKey = "sessionToken"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.AuthSvc == nil || deps.CatalogSvc == nil || deps.OrderSvc == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/register", registerHandler(deps.AuthSvc))
	router.POST("/auth/login", loginHandler(deps.AuthSvc))

	authed := router.Group("/", authMiddleware(deps.AuthSvc))
	authed.POST("/auth/logout", logoutHandler(deps.AuthSvc, deps.OrderSvc))
	authed.GET("/me", meHandler)

	authed.GET("/breeds", listBreedsHandler(deps.CatalogSvc))
	authed.POST("/breeds", createBreedHandler(deps.CatalogSvc))
	authed.PUT("/breeds/:id", updateBreedHandler(deps.CatalogSvc))
	authed.DELETE("/breeds/:id", deleteBreedHandler(deps.CatalogSvc))

	authed.GET("/settings", getSettingsHandler(deps.CatalogSvc))
	authed.PUT("/settings", saveSettingsHandler(deps.CatalogSvc))

	authed.GET("/cart", getCartHandler(deps.OrderSvc, deps.CatalogSvc))
	authed.POST("/cart/items", addCartItemHandler(deps.OrderSvc, deps.CatalogSvc))
	authed.DELETE("/cart/items/:lineId", removeCartLineHandler(deps.OrderSvc))
	authed.DELETE("/cart", clearCartHandler(deps.OrderSvc))
	authed.GET("/cart/summary", cartSummaryHandler(deps.OrderSvc, deps.CatalogSvc))

	return router, nil
}

// authMiddleware resolves the bearer token and stores the user and token on
// the request context.
func authMiddleware(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		u, err := svc.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		ctx := context.WithValue(c.Request.Context(), userCtxKey, u)
		ctx = context.WithValue(ctx, sessionCtxKey, token)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func currentUser(c *gin.Context) *domain.User {
	u, _ := c.Request.Context().Value(userCtxKey).(*domain.User)
	return u
}

func sessionToken(c *gin.Context) string {
	t, _ := c.Request.Context().Value(sessionCtxKey).(string)
	return t
}
