package domain

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a project. Transitions are
// one-directional: OPEN -> COMPLETED, never back.
type Status string

const (
	StatusOpen      Status = "OPEN"
	StatusCompleted Status = "COMPLETED"
)

// Project is the local aggregate managed by this service. It is unique
// by Code while active; soft-deleted rows keep their history under a
// renamed code (see DeletedCode).
type Project struct {
	ID              int64      `json:"id"`
	Code            string     `json:"project_code"`
	Name            string     `json:"project_name"`
	Detail          string     `json:"detail"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Status          Status     `json:"status"`
	AssignedManager string     `json:"assigned_manager"`
	Deleted         bool       `json:"is_deleted"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// DeletedCode is the code a project is renamed to on soft-delete,
// freeing the original code for reuse while keeping the row.
func (p *Project) DeletedCode() string {
	return fmt.Sprintf("%s-%d", p.Code, p.ID)
}

// TaskCounts holds the completed / non-completed task tallies owned by
// the remote task service, keyed by project code. Never stored locally.
type TaskCounts struct {
	Completed    int `json:"completed_task_count"`
	NonCompleted int `json:"non_completed_task_count"`
}

// ProjectDetails is a project enriched with its task counts, used by
// the manager listing.
type ProjectDetails struct {
	Project
	TaskCounts
}
