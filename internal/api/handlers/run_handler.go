package handlers

import (
	"errors"
	"io"
	"strconv"

	"mcc-scheduler/internal/service"
	"mcc-scheduler/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RunHandler struct {
	schedulerService *service.SchedulerService
}

func NewRunHandler(schedulerService *service.SchedulerService) *RunHandler {
	return &RunHandler{
		schedulerService: schedulerService,
	}
}

// CreateRun godoc
// @Summary      Run the scheduler over a graph
// @Description  Computes priority ranking, the greedy initial schedule and the migration-optimized final schedule, merging any request-body platform override with the graph's stored defaults, and persists the result
// @Tags         runs
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "graph id"
// @Param        override body service.PlatformOverride false "per-run platform override"
// @Success      200 {object} utils.Response{data=models.RunRecord}
// @Failure      400 {object} utils.Response
// @Router       /graphs/{id}/runs [post]
func (h *RunHandler) CreateRun(c *gin.Context) {
	graphID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "invalid graph id")
		return
	}

	var override *service.PlatformOverride
	if c.Request.ContentLength != 0 {
		override = &service.PlatformOverride{}
		if err := c.ShouldBindJSON(override); err != nil && !errors.Is(err, io.EOF) {
			utils.Error(c, utils.VALIDATION_ERROR, err.Error())
			return
		}
	}

	run, err := h.schedulerService.RunSchedule(uint(graphID), override)
	if err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.SuccessWithMessage(c, run, "run complete")
}

// ListRuns godoc
// @Summary      List runs for a graph
// @Tags         runs
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "graph id"
// @Param        current query int false "page number" default(1)
// @Param        size query int false "page size" default(10)
// @Success      200 {object} utils.Response{data=[]models.RunRecord}
// @Router       /graphs/{id}/runs [get]
func (h *RunHandler) ListRuns(c *gin.Context) {
	graphID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "invalid graph id")
		return
	}

	current, _ := strconv.Atoi(c.DefaultQuery("current", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	runs, total, err := h.schedulerService.ListRuns(uint(graphID), current, size)
	if err != nil {
		utils.Error(c, utils.ERROR, "failed to list runs")
		return
	}

	utils.SuccessWithPage(c, runs, current, size, total)
}

// GetRun godoc
// @Summary      Fetch a run
// @Tags         runs
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "run id"
// @Success      200 {object} utils.Response{data=models.RunRecord}
// @Failure      404 {object} utils.Response
// @Router       /runs/{id} [get]
func (h *RunHandler) GetRun(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "invalid run id")
		return
	}

	run, err := h.schedulerService.GetRun(uint(id))
	if err != nil {
		utils.Error(c, utils.NOT_FOUND, "run not found")
		return
	}

	utils.Success(c, run)
}
