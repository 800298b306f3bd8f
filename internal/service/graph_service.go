package service

import (
	"errors"

	"mcc-scheduler/internal/config"
	"mcc-scheduler/internal/models"
	"mcc-scheduler/internal/repository"
	"mcc-scheduler/internal/scheduling"
	"mcc-scheduler/pkg/utils"
)

type GraphService struct {
	graphRepo       *repository.GraphRepository
	defaultPlatform config.PlatformDefaults
}

func NewGraphService(graphRepo *repository.GraphRepository, defaultPlatform config.PlatformDefaults) *GraphService {
	return &GraphService{
		graphRepo:       graphRepo,
		defaultPlatform: defaultPlatform,
	}
}

func (s *GraphService) CreateGraph(graph *models.TaskGraphRecord) error {
	if graph == nil {
		return errors.New("graph cannot be nil")
	}
	if utils.IsEmpty(graph.Name) {
		return errors.New("graph name cannot be empty")
	}
	if len(graph.Nodes) == 0 {
		return errors.New("graph must have at least one task")
	}
	s.applyDefaultPlatform(graph)
	return s.graphRepo.CreateGraph(graph)
}

// applyDefaultPlatform fills any zero-valued platform field on graph with
// the service's configured default, so a submitted graph only needs to
// override the constants it actually cares about. The three core powers
// are treated as one group: they are filled only when all three are zero.
func (s *GraphService) applyDefaultPlatform(graph *models.TaskGraphRecord) {
	d := s.defaultPlatform
	if graph.CorePower0 == 0 && graph.CorePower1 == 0 && graph.CorePower2 == 0 {
		graph.CorePower0, graph.CorePower1, graph.CorePower2 = d.CorePower[0], d.CorePower[1], d.CorePower[2]
	}
	if graph.RFPower == 0 {
		graph.RFPower = d.RFPower
	}
	if graph.SendTime == 0 {
		graph.SendTime = d.SendTime
	}
	if graph.CloudTime == 0 {
		graph.CloudTime = d.CloudTime
	}
	if graph.ReceiveTime == 0 {
		graph.ReceiveTime = d.ReceiveTime
	}
	if graph.Deadline == 0 {
		graph.Deadline = d.Deadline
	}
}

func (s *GraphService) GetGraph(id uint) (*models.TaskGraphRecord, error) {
	return s.graphRepo.FindByID(id)
}

func (s *GraphService) ListGraphs(ownerID uint, current, size int) ([]models.TaskGraphRecord, int64, error) {
	offset := (current - 1) * size
	return s.graphRepo.List(ownerID, offset, size)
}

func (s *GraphService) DeleteGraph(id uint) error {
	return s.graphRepo.Delete(id)
}

// ToPlatform builds the pure scheduling.Platform for a persisted graph.
func (s *GraphService) ToPlatform(graph *models.TaskGraphRecord) (*scheduling.Platform, error) {
	execTable := make(map[int][3]int, len(graph.Nodes))
	for _, n := range graph.Nodes {
		execTable[n.TaskID] = [3]int{n.ExecCore0, n.ExecCore1, n.ExecCore2}
	}

	return scheduling.NewPlatform(
		execTable,
		[3]float64{graph.CorePower0, graph.CorePower1, graph.CorePower2},
		graph.RFPower,
		graph.SendTime,
		graph.CloudTime,
		graph.ReceiveTime,
		graph.Deadline,
	)
}

// ToEdges converts a persisted graph's edge rows into the [][2]int form
// scheduling.NewTaskGraph expects.
func (s *GraphService) ToEdges(graph *models.TaskGraphRecord) [][2]int {
	edges := make([][2]int, 0, len(graph.Edges))
	for _, e := range graph.Edges {
		edges = append(edges, [2]int{e.FromTaskID, e.ToTaskID})
	}
	return edges
}
