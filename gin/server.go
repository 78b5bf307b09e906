package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bobinette/notenet/jwt"
	"github.com/bobinette/notenet/log"
	"github.com/bobinette/notenet/mock"
)

// New returns the handler of the notes API, served under /api. logger may
// be nil.
func New(backend *mock.Backend, encoder *jwt.EncodeDecoder, logger log.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if logger != nil {
		router.Use(Logger(logger))
	}
	router.Use(CORS())

	// Unknown route
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authenticated := Authenticated(backend, encoder)

	authHandler := AuthHandler{Backend: backend, Encoder: encoder}
	authHandler.RegisterRoutes(api, authenticated)

	tenantHandler := TenantHandler{Backend: backend}
	tenantHandler.RegisterRoutes(api, authenticated)

	noteHandler := NoteHandler{Backend: backend}
	noteHandler.RegisterRoutes(api, authenticated)

	return router
}
