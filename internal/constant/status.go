package constant

// Task statuses
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

// TaskStatuses lists every allowed task status.
var TaskStatuses = []string{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled}

// IsValidTaskStatus reports whether status is one of the allowed transitions.
func IsValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

// Task priorities (ordering: high before medium before low)
const (
	TaskPriorityHigh   = "high"
	TaskPriorityMedium = "medium"
	TaskPriorityLow    = "low"
)

// TaskPriorities lists every allowed task priority.
var TaskPriorities = []string{TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow}

func IsValidTaskPriority(priority string) bool {
	switch priority {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// Goal statuses
const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusAbandoned = "abandoned"
)

// Learning progress statuses, derived from the progress percentage.
const (
	LearningStatusNotStarted = "not_started"
	LearningStatusInProgress = "in_progress"
	LearningStatusCompleted  = "completed"
)
