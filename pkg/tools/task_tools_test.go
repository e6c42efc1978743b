package tools_test

import (
	"context"
	"testing"

	"personal-assistant-be/pkg/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskRegistry(t *testing.T) (*tools.Registry, *fakeUow) {
	t.Helper()
	uow := newFakeUow()
	r := tools.NewRegistry()
	r.MustRegister(tools.NewTaskTools(uow)...)
	return r, uow
}

func TestCreateTaskDefaultsToMediumPriority(t *testing.T) {
	r, uow := newTaskRegistry(t)

	res := r.Invoke(context.Background(), "create_task", map[string]interface{}{
		"title": "Buy groceries",
	})

	require.True(t, res.Success(), res.Error())
	assert.Equal(t, int64(1), res.Payload()["task_id"])
	assert.Equal(t, "Task 'Buy groceries' created", res.Payload()["message"])

	stored := uow.tasks.byId[1]
	require.NotNil(t, stored)
	assert.Equal(t, "medium", stored.Priority)
	assert.Equal(t, "pending", stored.Status)
}

func TestCreateTaskRejectsBadDueDate(t *testing.T) {
	r, _ := newTaskRegistry(t)

	res := r.Invoke(context.Background(), "create_task", map[string]interface{}{
		"title":    "File taxes",
		"due_date": "next tuesday",
	})

	assert.False(t, res.Success())
	assert.Contains(t, res.Error(), "invalid due_date")
}

func TestUpdateTaskStatusNotFound(t *testing.T) {
	r, _ := newTaskRegistry(t)

	res := r.Invoke(context.Background(), "update_task_status", map[string]interface{}{
		"task_id": float64(999),
		"status":  "completed",
	})

	assert.False(t, res.Success())
	assert.Equal(t, "Task 999 not found", res.Error())
}

func TestUpdateTaskStatusCompletedSetsTimestamp(t *testing.T) {
	r, uow := newTaskRegistry(t)

	created := r.Invoke(context.Background(), "create_task", map[string]interface{}{
		"title": "Write report",
	})
	require.True(t, created.Success())

	res := r.Invoke(context.Background(), "update_task_status", map[string]interface{}{
		"task_id": float64(1),
		"status":  "completed",
	})

	require.True(t, res.Success(), res.Error())
	stored := uow.tasks.byId[1]
	assert.Equal(t, "completed", stored.Status)
	assert.NotNil(t, stored.CompletedAt)
}

func TestUpdateTaskStatusReopeningClearsTimestamp(t *testing.T) {
	r, uow := newTaskRegistry(t)
	ctx := context.Background()

	require.True(t, r.Invoke(ctx, "create_task", map[string]interface{}{"title": "Ship release"}).Success())
	require.True(t, r.Invoke(ctx, "update_task_status", map[string]interface{}{
		"task_id": float64(1), "status": "completed",
	}).Success())
	require.NotNil(t, uow.tasks.byId[1].CompletedAt)

	res := r.Invoke(ctx, "update_task_status", map[string]interface{}{
		"task_id": float64(1), "status": "pending",
	})

	require.True(t, res.Success(), res.Error())
	stored := uow.tasks.byId[1]
	assert.Equal(t, "pending", stored.Status)
	assert.Nil(t, stored.CompletedAt)
}

func TestGetPendingTasksExcludesCompleted(t *testing.T) {
	r, _ := newTaskRegistry(t)
	ctx := context.Background()

	require.True(t, r.Invoke(ctx, "create_task", map[string]interface{}{"title": "one"}).Success())
	require.True(t, r.Invoke(ctx, "create_task", map[string]interface{}{"title": "two"}).Success())
	require.True(t, r.Invoke(ctx, "update_task_status", map[string]interface{}{
		"task_id": float64(2), "status": "completed",
	}).Success())

	res := r.Invoke(ctx, "get_pending_tasks", nil)

	require.True(t, res.Success(), res.Error())
	assert.Equal(t, 1, res.Payload()["count"])
}
