package models

import "time"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// Task is a single to-do item. A task with GroupID set is a group task and
// UserID denotes the assignee, not necessarily the creator. Private tasks
// are hidden from friend-comparison views.
type Task struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"userId"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	DueDate     time.Time    `json:"dueDate"`
	DueTime     string       `json:"dueTime,omitempty"` // free-text "HH:MM"
	Priority    TaskPriority `json:"priority"`
	Completed   bool         `json:"completed"`
	Private     bool         `json:"private"`
	GroupID     *int64       `json:"groupId,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// TaskUpdate carries a partial update; nil fields are left untouched.
// Updates are deliberately not validated (observed product behavior).
type TaskUpdate struct {
	UserID      *int64
	Title       *string
	Description *string
	DueDate     *time.Time
	DueTime     *string
	Priority    *TaskPriority
	Completed   *bool
	Private     *bool
	GroupID     *int64
}
