package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckController struct{}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthcheck", c.Healthcheck)
}

// Healthcheck
// @Summary Service health
// @Description Liveness probe with host CPU and memory usage
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Router /healthcheck [get]
func (c *HealthcheckController) Healthcheck(ctx *gin.Context) {
	response := gin.H{"status": "ok"}

	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		response["cpuUsagePercent"] = percentages[0]
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		response["memoryUsagePercent"] = vm.UsedPercent
	}

	ctx.JSON(http.StatusOK, response)
}
