package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bobinette/notenet/mock"
)

type TenantHandler struct {
	Backend *mock.Backend
}

func (h *TenantHandler) RegisterRoutes(router gin.IRouter, authenticated gin.HandlerFunc) {
	router.POST("/tenants/:slug/upgrade", authenticated, JSONFormatter(http.StatusOK, h.Upgrade))
}

func (h *TenantHandler) Upgrade(c *gin.Context) (interface{}, error) {
	tenant, err := h.Backend.Upgrade(currentUser(c), c.Param("slug"))
	if err != nil {
		return nil, err
	}

	return gin.H{"tenant": tenant}, nil
}
