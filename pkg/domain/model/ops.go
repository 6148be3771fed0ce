package model

import "github.com/nexus-lab/frontdesk/pkg/domain/types"

// Task represents a follow-up task on the operations board
type Task struct {
	ID      types.RecordID `json:"id"`
	Title   string         `json:"title"`
	DueDate string         `json:"due_date"`
	Done    bool           `json:"done"`
}

// Job represents a dispatchable field-operations job
type Job struct {
	ID            types.RecordID `json:"id"`
	Title         string         `json:"title"`
	Address       string         `json:"address"`
	ScheduledDate string         `json:"scheduled_date"`
	Status        string         `json:"status"`
	WorkerID      types.RecordID `json:"worker_id,omitempty"`
}

// Worker represents a field worker available for job dispatch
type Worker struct {
	ID     types.RecordID `json:"id"`
	Name   string         `json:"name"`
	Phone  string         `json:"phone"`
	Skills []string       `json:"skills,omitempty"`
	Active bool           `json:"active"`
}
