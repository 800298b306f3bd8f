package handlers

import (
	"mcc-scheduler/internal/service"
	"mcc-scheduler/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	monitorService *service.MonitorService
}

func NewMetricsHandler(monitorService *service.MonitorService) *MetricsHandler {
	return &MetricsHandler{
		monitorService: monitorService,
	}
}

// GetMetrics godoc
// @Summary      Host metrics
// @Description  CPU, memory and goroutine counters for the process host, unrelated to any scheduling run
// @Tags         metrics
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200 {object} utils.Response{data=models.SystemMetrics}
// @Router       /metrics [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.monitorService.GetSystemMetrics()
	if err != nil {
		utils.Error(c, utils.ERROR, "failed to collect metrics")
		return
	}

	utils.Success(c, metrics)
}
