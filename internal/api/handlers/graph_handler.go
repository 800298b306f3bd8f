package handlers

import (
	"strconv"

	"mcc-scheduler/internal/models"
	"mcc-scheduler/internal/service"
	"mcc-scheduler/pkg/utils"

	"github.com/gin-gonic/gin"
)

type GraphHandler struct {
	graphService *service.GraphService
}

func NewGraphHandler(graphService *service.GraphService) *GraphHandler {
	return &GraphHandler{
		graphService: graphService,
	}
}

// CreateGraph godoc
// @Summary      Create a task graph
// @Description  Stores a task graph's platform constants, nodes and edges
// @Tags         graphs
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        graph body models.TaskGraphRecord true "task graph"
// @Success      200 {object} utils.Response{data=models.TaskGraphRecord}
// @Failure      400 {object} utils.Response
// @Router       /graphs [post]
func (h *GraphHandler) CreateGraph(c *gin.Context) {
	var graph models.TaskGraphRecord
	if err := c.ShouldBindJSON(&graph); err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, err.Error())
		return
	}

	if ownerID, ok := c.Get("userID"); ok {
		graph.OwnerID = ownerID.(uint)
	}

	if err := h.graphService.CreateGraph(&graph); err != nil {
		utils.Error(c, utils.ERROR, err.Error())
		return
	}

	utils.SuccessWithMessage(c, graph, "graph created")
}

// GetGraph godoc
// @Summary      Fetch a task graph
// @Tags         graphs
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "graph id"
// @Success      200 {object} utils.Response{data=models.TaskGraphRecord}
// @Failure      404 {object} utils.Response
// @Router       /graphs/{id} [get]
func (h *GraphHandler) GetGraph(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "invalid graph id")
		return
	}

	graph, err := h.graphService.GetGraph(uint(id))
	if err != nil {
		utils.Error(c, utils.NOT_FOUND, "graph not found")
		return
	}

	utils.Success(c, graph)
}

// ListGraphs godoc
// @Summary      List task graphs
// @Tags         graphs
// @Produce      json
// @Security     ApiKeyAuth
// @Param        current query int false "page number" default(1)
// @Param        size query int false "page size" default(10)
// @Success      200 {object} utils.Response{data=[]models.TaskGraphRecord}
// @Router       /graphs [get]
func (h *GraphHandler) ListGraphs(c *gin.Context) {
	current, _ := strconv.Atoi(c.DefaultQuery("current", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	var ownerID uint
	if v, ok := c.Get("userID"); ok {
		ownerID = v.(uint)
	}

	graphs, total, err := h.graphService.ListGraphs(ownerID, current, size)
	if err != nil {
		utils.Error(c, utils.ERROR, "failed to list graphs")
		return
	}

	utils.SuccessWithPage(c, graphs, current, size, total)
}

// DeleteGraph godoc
// @Summary      Delete a task graph
// @Tags         graphs
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "graph id"
// @Success      200 {object} utils.Response
// @Router       /graphs/{id} [delete]
func (h *GraphHandler) DeleteGraph(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, utils.VALIDATION_ERROR, "invalid graph id")
		return
	}

	if err := h.graphService.DeleteGraph(uint(id)); err != nil {
		utils.Error(c, utils.ERROR, "failed to delete graph")
		return
	}

	utils.SuccessWithMessage(c, nil, "graph deleted")
}
