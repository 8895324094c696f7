package entity

import "github.com/cofund-lab/backend/pkg/enum"

type ProjectStatus string

// Any status may follow any other one; the workflow never enforces a
// transition graph, only membership in this enum.
var (
	ProjectPending  = enum.New(ProjectStatus("PENDING"))
	ProjectProgress = enum.New(ProjectStatus("PROGRESS"))
	ProjectStopped  = enum.New(ProjectStatus("STOPPED"))
	ProjectSuccess  = enum.New(ProjectStatus("SUCCESS"))
	ProjectFail     = enum.New(ProjectStatus("FAIL"))
	ProjectEnd      = enum.New(ProjectStatus("END"))
)

type Project struct {
	Base
	CreatedBy     string `gorm:"not null"`
	CreatedByUser User   `gorm:"foreignKey:CreatedBy"`
	Title         string
	Summary       []byte `gorm:"type:longtext"`
	Thumbnail     string
	TargetAmount  int64

	// CollectedAmount is bumped inside the funding transaction.
	CollectedAmount int64

	Status ProjectStatus
}
