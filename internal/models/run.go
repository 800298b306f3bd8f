package models

import "time"

// RunRecord is one scheduling run over a graph: the computed makespan and
// energy totals for both the greedy initial schedule and the
// migration-optimized final schedule.
type RunRecord struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	GraphID uint `json:"graph_id" gorm:"index;not null"`

	InitialMakespan int     `json:"initial_makespan"`
	InitialEnergy   float64 `json:"initial_energy"`
	FinalMakespan   int     `json:"final_makespan"`
	FinalEnergy     float64 `json:"final_energy"`
	DeadlineMet     bool    `json:"deadline_met"`

	// DecisionLog is the migration optimizer's per-task decision trace,
	// serialized as a JSON array (one element per task in ascending task id).
	DecisionLog string `json:"decision_log" gorm:"type:text"`

	Entries []ScheduleEntryRecord `json:"entries,omitempty" gorm:"foreignKey:RunID"`
}

// ScheduleEntryRecord is one task's placement and timeline within a run,
// flattened for storage. Phase is "initial" or "optimized", so a run keeps
// both the greedy starting point and the migration-optimized result.
// Location is "core1", "core2", "core3" or "cloud"; the cloud-only fields
// are zero for core placements.
type ScheduleEntryRecord struct {
	ID    uint `json:"id" gorm:"primarykey"`
	RunID uint `json:"run_id" gorm:"index;not null"`

	Phase      string `json:"phase" gorm:"size:20;not null"`
	TaskID     int    `json:"task_id" gorm:"not null"`
	Location   string `json:"location"`
	StartTime  int    `json:"start_time"`
	FinishTime int    `json:"finish_time"`

	SendStart     int `json:"send_start,omitempty"`
	CloudStart    int `json:"cloud_start,omitempty"`
	CloudFinish   int `json:"cloud_finish,omitempty"`
	ReceiveFinish int `json:"receive_finish,omitempty"`
}
