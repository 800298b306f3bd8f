package models

import "time"

// TaskGraphRecord is the persisted form of a task graph: its platform
// constants plus the owning user. Nodes and edges live in their own
// tables so a graph can be loaded without materializing every field at
// once.
type TaskGraphRecord struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	OwnerID uint   `json:"owner_id" gorm:"index"`
	Name    string `json:"name" gorm:"size:100;not null"`

	CorePower0 float64 `json:"core_power_0"`
	CorePower1 float64 `json:"core_power_1"`
	CorePower2 float64 `json:"core_power_2"`
	RFPower    float64 `json:"rf_power"`
	SendTime   int     `json:"send_time"`
	CloudTime  int     `json:"cloud_time"`
	ReceiveTime int    `json:"receive_time"`
	Deadline   int     `json:"deadline"`

	Nodes []TaskNodeRecord `json:"nodes,omitempty" gorm:"foreignKey:GraphID"`
	Edges []TaskEdgeRecord `json:"edges,omitempty" gorm:"foreignKey:GraphID"`
}

// TaskNodeRecord is one task id's execution-time row within a graph.
type TaskNodeRecord struct {
	ID      uint `json:"id" gorm:"primarykey"`
	GraphID uint `json:"graph_id" gorm:"index;not null"`

	TaskID    int `json:"task_id" gorm:"not null"`
	ExecCore0 int `json:"exec_core_0"`
	ExecCore1 int `json:"exec_core_1"`
	ExecCore2 int `json:"exec_core_2"`
}

// TaskEdgeRecord is one precedence edge within a graph, from FromTaskID to
// ToTaskID.
type TaskEdgeRecord struct {
	ID      uint `json:"id" gorm:"primarykey"`
	GraphID uint `json:"graph_id" gorm:"index;not null"`

	FromTaskID int `json:"from_task_id" gorm:"not null"`
	ToTaskID   int `json:"to_task_id" gorm:"not null"`
}
