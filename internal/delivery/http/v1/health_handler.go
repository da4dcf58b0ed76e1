package v1

import (
	"net/http"
	"time"

	"go-landing-mailer/internal/delivery/http/response"
	"go-landing-mailer/internal/domain"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC domain.HealthUsecase
}

// ProbeResponse is returned by the readiness and liveness probes
type ProbeResponse struct {
	Status string `json:"status"`
}

type MetricsValues struct {
	CPU    float64 `json:"cpu"`
	Memory float64 `json:"memory"`
	Disk   float64 `json:"disk"`
}

type MetricsResponse struct {
	Metrics   MetricsValues `json:"metrics"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewHealthHandler registers the probe and observability routes. None of them
// touch the mail pipeline.
func NewHealthHandler(r gin.IRoutes, healthUC domain.HealthUsecase) {
	handler := &HealthHandler{
		healthUC: healthUC,
	}

	r.GET("/health", handler.Health)
	r.GET("/ready", handler.Ready)
	r.GET("/live", handler.Live)
	r.GET("/status", handler.Status)
	r.GET("/info", handler.Info)
	r.GET("/metrics", handler.Metrics)
}

func (h *HealthHandler) Health(c *gin.Context) {
	report := h.healthUC.Check(c.Request.Context())

	code := http.StatusOK
	if !report.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}

func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, ProbeResponse{Status: "ready"})
}

func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, ProbeResponse{Status: "alive"})
}

func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Status(c.Request.Context()))
}

func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Info(c.Request.Context()))
}

func (h *HealthHandler) Metrics(c *gin.Context) {
	snap, err := h.healthUC.Metrics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to collect system metrics", err.Error())
		return
	}

	c.JSON(http.StatusOK, MetricsResponse{
		Metrics: MetricsValues{
			CPU:    snap.CPUPercent,
			Memory: snap.MemoryPercent,
			Disk:   snap.DiskPercent,
		},
		Timestamp: time.Now().UTC(),
	})
}
