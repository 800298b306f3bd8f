package service

import (
	"encoding/json"
	"errors"

	"mcc-scheduler/internal/models"
	"mcc-scheduler/internal/repository"
	"mcc-scheduler/internal/scheduling"
)

type SchedulerService struct {
	graphRepo *repository.GraphRepository
	runRepo   *repository.RunRepository
	graphSvc  *GraphService
}

func NewSchedulerService(graphRepo *repository.GraphRepository, runRepo *repository.RunRepository, graphSvc *GraphService) *SchedulerService {
	return &SchedulerService{
		graphRepo: graphRepo,
		runRepo:   runRepo,
		graphSvc:  graphSvc,
	}
}

// PlatformOverride carries a per-run request-body override of a graph's
// stored platform constants. Nil fields fall back to the graph's own
// value; this is merged on top of the graph, which is itself already
// merged with the service-wide default platform at graph-creation time.
type PlatformOverride struct {
	CorePower   *[3]float64 `json:"core_power,omitempty"`
	RFPower     *float64    `json:"rf_power,omitempty"`
	SendTime    *int        `json:"send_time,omitempty"`
	CloudTime   *int        `json:"cloud_time,omitempty"`
	ReceiveTime *int        `json:"receive_time,omitempty"`
	Deadline    *int        `json:"deadline,omitempty"`
}

// RunSchedule loads graphID, merges any request-body platform override
// onto the graph's stored defaults, executes the priority-ranking,
// initial placement and migration pipeline, and persists the result as a
// RunRecord with one ScheduleEntryRecord per task for each of the initial
// and optimized schedules, plus the optimizer's decision log.
func (s *SchedulerService) RunSchedule(graphID uint, override *PlatformOverride) (*models.RunRecord, error) {
	graph, err := s.graphRepo.FindByID(graphID)
	if err != nil {
		return nil, err
	}

	applyPlatformOverride(graph, override)

	platform, err := s.graphSvc.ToPlatform(graph)
	if err != nil {
		return nil, err
	}
	edges := s.graphSvc.ToEdges(graph)

	result, err := scheduling.Run(edges, platform)
	if err != nil {
		return nil, err
	}

	entries := entriesFromSchedule("initial", result.InitialSchedule)
	entries = append(entries, entriesFromSchedule("optimized", result.FinalSchedule)...)

	decisionLog, err := json.Marshal(result.Decisions)
	if err != nil {
		return nil, err
	}

	run := &models.RunRecord{
		GraphID:         graphID,
		InitialMakespan: result.InitialSchedule.Makespan(),
		InitialEnergy:   result.InitialEnergy.Total,
		FinalMakespan:   result.FinalSchedule.Makespan(),
		FinalEnergy:     result.FinalEnergy.Total,
		DeadlineMet:     result.DeadlineMet(),
		DecisionLog:     string(decisionLog),
		Entries:         entries,
	}

	if err := s.runRepo.CreateRun(run); err != nil {
		return nil, err
	}
	return run, nil
}

// applyPlatformOverride mutates graph in place with any non-nil override
// field. graph is the in-memory record loaded for this run only; the
// override is never persisted back to the stored graph.
func applyPlatformOverride(graph *models.TaskGraphRecord, override *PlatformOverride) {
	if override == nil {
		return
	}
	if override.CorePower != nil {
		graph.CorePower0, graph.CorePower1, graph.CorePower2 = override.CorePower[0], override.CorePower[1], override.CorePower[2]
	}
	if override.RFPower != nil {
		graph.RFPower = *override.RFPower
	}
	if override.SendTime != nil {
		graph.SendTime = *override.SendTime
	}
	if override.CloudTime != nil {
		graph.CloudTime = *override.CloudTime
	}
	if override.ReceiveTime != nil {
		graph.ReceiveTime = *override.ReceiveTime
	}
	if override.Deadline != nil {
		graph.Deadline = *override.Deadline
	}
}

func (s *SchedulerService) GetRun(id uint) (*models.RunRecord, error) {
	return s.runRepo.FindByID(id)
}

func (s *SchedulerService) ListRuns(graphID uint, current, size int) ([]models.RunRecord, int64, error) {
	if current < 1 {
		return nil, 0, errors.New("current page must be >= 1")
	}
	offset := (current - 1) * size
	return s.runRepo.ListByGraph(graphID, offset, size)
}

func entriesFromSchedule(phase string, sched *scheduling.Schedule) []models.ScheduleEntryRecord {
	entries := make([]models.ScheduleEntryRecord, 0, len(sched.Tasks))
	for id, ts := range sched.Tasks {
		entries = append(entries, models.ScheduleEntryRecord{
			Phase:         phase,
			TaskID:        id,
			Location:      ts.Location.String(),
			StartTime:     ts.StartTime,
			FinishTime:    ts.FinishTime,
			SendStart:     ts.SendStart,
			CloudStart:    ts.CloudStart,
			CloudFinish:   ts.CloudFinish,
			ReceiveFinish: ts.ReceiveFinish,
		})
	}
	return entries
}
