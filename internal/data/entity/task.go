package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in progress"
	TaskCompleted  TaskStatus = "completed"
	TaskBlocked    TaskStatus = "blocked"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskBlocked:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	Base
	ProjectID   uuid.UUID    `db:"project_id"`
	Name        string       `db:"name"`
	Description *string      `db:"description"`
	AssigneeID  *uuid.UUID   `db:"assignee_id"`
	Status      TaskStatus   `db:"status"`
	Priority    TaskPriority `db:"priority"`
	DueDate     time.Time    `db:"due_date"`
}
