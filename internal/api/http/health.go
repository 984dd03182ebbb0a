package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Augmentor string    `json:"augmentor,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	augmentor   string
}

func NewHealthHandler(serviceName, version, augmentor string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		augmentor:   augmentor,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Augmentor: h.augmentor,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
