package housekeeping

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidTaskType = errors.New("invalid task type")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusVerified   Status = "verified"
	StatusFailed     Status = "failed"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusVerified, StatusFailed:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusVerified || s == StatusFailed
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

type TaskType string

const (
	TaskTypeCleaning     TaskType = "cleaning"
	TaskTypeMaintenance  TaskType = "maintenance"
	TaskTypeInspection   TaskType = "inspection"
	TaskTypeDeepCleaning TaskType = "deep_cleaning"
	TaskTypeTurndown     TaskType = "turndown"
)

func (t TaskType) String() string { return string(t) }

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeCleaning, TaskTypeMaintenance, TaskTypeInspection, TaskTypeDeepCleaning, TaskTypeTurndown:
		return true
	default:
		return false
	}
}

func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(s)
	if !t.IsValid() {
		return "", ErrInvalidTaskType
	}
	return t, nil
}
