package jobs

import (
	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskDashboardRefresh rebuilds the dashboard snapshot in the
	// background so the landing page can serve a warm copy.
	TaskDashboardRefresh = "dashboard:refresh"
)

// SnapshotKey is where the warmed dashboard view is persisted.
const SnapshotKey = "dashboard:snapshot"

// NewDashboardRefreshTask constructs the refresh task. The task carries no
// payload; the handler reads everything it needs from live state.
func NewDashboardRefreshTask() *asynq.Task {
	return asynq.NewTask(TaskDashboardRefresh, nil)
}
